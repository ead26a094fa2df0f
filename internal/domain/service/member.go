package service

import (
	"context"
	"fmt"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
	"github.com/Badsnus/golf-stats/internal/domain/entity"
	"github.com/Badsnus/golf-stats/internal/domain/utils/validator"
	"github.com/Badsnus/golf-stats/pkg/logger/types"
)

type MemberStorage interface {
	Create(ctx context.Context, member *entity.Member) (*entity.Member, error)
	Get(ctx context.Context, id uint) (*entity.Member, error)
	GetAll(ctx context.Context) ([]entity.Member, error)
	Count(ctx context.Context) (int64, error)
}

type MemberService struct {
	logger  *types.Logger
	storage MemberStorage
	cache   StatsCache
}

func NewMemberService(logger *types.Logger, storage MemberStorage, cache StatsCache) *MemberService {
	return &MemberService{
		logger:  logger,
		storage: storage,
		cache:   cache,
	}
}

// Add registers a member and returns the generated id.
func (s *MemberService) Add(ctx context.Context, firstName string, lastName, email *string) (uint, error) {
	if !validator.Name(firstName) {
		return 0, fmt.Errorf("%w: first name is required", errorz.ErrInvalidInput)
	}
	if email != nil && !validator.Email(*email) {
		return 0, fmt.Errorf("%w: malformed email %q", errorz.ErrInvalidInput, *email)
	}

	member, err := s.storage.Create(ctx, &entity.Member{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debugf("member %d (%s) added", member.ID, member.FullName())
	invalidate(ctx, s.cache, s.logger, member.ID, AllMembers)
	return member.ID, nil
}

func (s *MemberService) Get(ctx context.Context, id uint) (*entity.Member, error) {
	return s.storage.Get(ctx, id)
}

func (s *MemberService) GetAll(ctx context.Context) ([]entity.Member, error) {
	return s.storage.GetAll(ctx)
}

func (s *MemberService) Count(ctx context.Context) (int64, error) {
	return s.storage.Count(ctx)
}
