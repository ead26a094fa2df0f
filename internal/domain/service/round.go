package service

import (
	"context"
	"fmt"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
	"github.com/Badsnus/golf-stats/internal/domain/dto"
	"github.com/Badsnus/golf-stats/internal/domain/entity"
	"github.com/Badsnus/golf-stats/internal/domain/utils/validator"
	"github.com/Badsnus/golf-stats/pkg/logger/types"
)

type RoundStorage interface {
	Create(ctx context.Context, round *entity.Round) (*entity.Round, error)
	Get(ctx context.Context, id uint) (*entity.Round, error)
	Recent(ctx context.Context, limit int) ([]dto.RoundListing, error)
}

type HoleStorage interface {
	Create(ctx context.Context, hole *entity.Hole) (*entity.Hole, error)
	GetByRoundID(ctx context.Context, roundID uint) ([]entity.Hole, error)
}

// RoundService appends rounds and their holes. Each call is one independent insert;
// a round followed by its holes is several writes, and a partial set of holes is valid.
type RoundService struct {
	logger       *types.Logger
	roundStorage RoundStorage
	holeStorage  HoleStorage
	cache        StatsCache
}

func NewRoundService(logger *types.Logger, roundStorage RoundStorage, holeStorage HoleStorage, cache StatsCache) *RoundService {
	return &RoundService{
		logger:       logger,
		roundStorage: roundStorage,
		holeStorage:  holeStorage,
		cache:        cache,
	}
}

// AddRound stores a round and returns the generated id.
// It fails with errorz.ErrIntegrityViolation when the member or the course does not exist.
// Numeric fields are stored as given.
func (s *RoundService) AddRound(ctx context.Context, round entity.Round) (uint, error) {
	if !validator.DatePlayed(round.DatePlayed) {
		return 0, fmt.Errorf("%w: date played is required", errorz.ErrInvalidInput)
	}
	round.ID = 0
	created, err := s.roundStorage.Create(ctx, &round)
	if err != nil {
		return 0, err
	}

	s.logger.Debugf("round %d added for member %d", created.ID, created.MemberID)
	invalidate(ctx, s.cache, s.logger, created.MemberID, AllMembers)
	return created.ID, nil
}

// AddHole stores one hole of a round and returns the generated id.
// It fails with errorz.ErrIntegrityViolation when the round does not exist.
func (s *RoundService) AddHole(ctx context.Context, hole entity.Hole) (uint, error) {
	hole.ID = 0
	created, err := s.holeStorage.Create(ctx, &hole)
	if err != nil {
		return 0, err
	}

	round, err := s.roundStorage.Get(ctx, created.RoundID)
	if err != nil {
		s.logger.Errorf("failed to resolve member of round %d, cached stats expire by TTL: %v", created.RoundID, err)
		return created.ID, nil
	}
	invalidate(ctx, s.cache, s.logger, round.MemberID)
	return created.ID, nil
}

func (s *RoundService) Get(ctx context.Context, id uint) (*entity.Round, error) {
	return s.roundStorage.Get(ctx, id)
}

func (s *RoundService) Holes(ctx context.Context, roundID uint) ([]entity.Hole, error) {
	return s.holeStorage.GetByRoundID(ctx, roundID)
}

// Recent lists the newest rounds across all members. A limit <= 0 lists every round.
func (s *RoundService) Recent(ctx context.Context, limit int) ([]dto.RoundListing, error) {
	return s.roundStorage.Recent(ctx, limit)
}
