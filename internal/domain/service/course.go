package service

import (
	"context"
	"fmt"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
	"github.com/Badsnus/golf-stats/internal/domain/entity"
	"github.com/Badsnus/golf-stats/internal/domain/utils/validator"
)

type CourseStorage interface {
	Create(ctx context.Context, course *entity.Course) (*entity.Course, error)
	Get(ctx context.Context, id uint) (*entity.Course, error)
	GetAll(ctx context.Context) ([]entity.Course, error)
}

type CourseService struct {
	storage CourseStorage
}

func NewCourseService(storage CourseStorage) *CourseService {
	return &CourseService{
		storage: storage,
	}
}

// Add registers a course and returns the generated id. No cached view depends on a course
// that no round references yet, so nothing is invalidated.
func (s *CourseService) Add(ctx context.Context, name string, par, holes *int) (uint, error) {
	if !validator.Name(name) {
		return 0, fmt.Errorf("%w: course name is required", errorz.ErrInvalidInput)
	}

	course, err := s.storage.Create(ctx, &entity.Course{
		Name:      name,
		Par:       par,
		HoleCount: holes,
	})
	if err != nil {
		return 0, err
	}
	return course.ID, nil
}

func (s *CourseService) Get(ctx context.Context, id uint) (*entity.Course, error) {
	return s.storage.Get(ctx, id)
}

func (s *CourseService) GetAll(ctx context.Context) ([]entity.Course, error) {
	return s.storage.GetAll(ctx)
}
