package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Badsnus/golf-stats/internal/domain/entity"
)

type CourseStorage struct {
	db *gorm.DB
}

func NewCourseStorage(db *gorm.DB) *CourseStorage {
	return &CourseStorage{
		db: db,
	}
}

func (s *CourseStorage) Create(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	err := s.db.WithContext(ctx).Create(course).Error
	return course, translate(err)
}

func (s *CourseStorage) Get(ctx context.Context, id uint) (*entity.Course, error) {
	var course entity.Course
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (s *CourseStorage) GetAll(ctx context.Context) ([]entity.Course, error) {
	var courses []entity.Course
	err := s.db.WithContext(ctx).Order("id").Find(&courses).Error
	return courses, err
}
