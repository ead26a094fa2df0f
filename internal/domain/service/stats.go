package service

import (
	"context"
	"fmt"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
	"github.com/Badsnus/golf-stats/internal/domain/dto"
	"github.com/Badsnus/golf-stats/pkg/logger/types"
)

type StatsStorage interface {
	Summaries(ctx context.Context) ([]dto.PlayerSummary, error)
	Summary(ctx context.Context, memberID uint) (*dto.PlayerSummary, error)
	HoleAverages(ctx context.Context, memberID uint) ([]dto.HoleAverage, error)
	RecentRounds(ctx context.Context, memberID uint, limit int) ([]dto.RecentRound, error)
	PerformanceByCourse(ctx context.Context, memberID uint) ([]dto.CoursePerformance, error)
	Differentials(ctx context.Context, memberID uint) ([]dto.Differential, error)
}

// Cache field names, one per view.
const (
	viewSummaries    = "summaries"
	viewSummary      = "summary"
	viewHoleAverages = "hole_averages"
	viewRecentRounds = "recent_rounds"
	viewCoursePerf   = "performance_by_course"
	viewHandicap     = "handicap"
)

// StatsService computes the derived views on read. Nothing is persisted; the optional cache
// is invalidated by every ingestion write.
type StatsService struct {
	logger   *types.Logger
	storage  StatsStorage
	cache    StatsCache
	handicap HandicapConfig
}

func NewStatsService(logger *types.Logger, storage StatsStorage, cache StatsCache, handicap HandicapConfig) *StatsService {
	return &StatsService{
		logger:   logger,
		storage:  storage,
		cache:    cache,
		handicap: handicap.Normalized(),
	}
}

func (s *StatsService) HandicapConfig() HandicapConfig {
	return s.handicap
}

// Summaries lists every player by ascending average score, players without rounds last.
func (s *StatsService) Summaries(ctx context.Context) ([]dto.PlayerSummary, error) {
	return cached(ctx, s, AllMembers, viewSummaries, func() ([]dto.PlayerSummary, error) {
		return s.storage.Summaries(ctx)
	})
}

// Summary returns nil without an error when the member does not exist.
func (s *StatsService) Summary(ctx context.Context, memberID uint) (*dto.PlayerSummary, error) {
	return cached(ctx, s, memberID, viewSummary, func() (*dto.PlayerSummary, error) {
		return s.storage.Summary(ctx, memberID)
	})
}

func (s *StatsService) HoleAverages(ctx context.Context, memberID uint) ([]dto.HoleAverage, error) {
	return cached(ctx, s, memberID, viewHoleAverages, func() ([]dto.HoleAverage, error) {
		return s.storage.HoleAverages(ctx, memberID)
	})
}

// RecentRounds lists the member's rounds newest first. A limit <= 0 lists every round.
func (s *StatsService) RecentRounds(ctx context.Context, memberID uint, limit int) ([]dto.RecentRound, error) {
	if limit < 0 {
		limit = 0
	}
	view := fmt.Sprintf("%s:%d", viewRecentRounds, limit)
	return cached(ctx, s, memberID, view, func() ([]dto.RecentRound, error) {
		return s.storage.RecentRounds(ctx, memberID, limit)
	})
}

func (s *StatsService) PerformanceByCourse(ctx context.Context, memberID uint) ([]dto.CoursePerformance, error) {
	return cached(ctx, s, memberID, viewCoursePerf, func() ([]dto.CoursePerformance, error) {
		return s.storage.PerformanceByCourse(ctx, memberID)
	})
}

// Handicap estimates the member's handicap index; see EstimateHandicap.
func (s *StatsService) Handicap(ctx context.Context, memberID uint) (dto.HandicapEstimate, error) {
	return cached(ctx, s, memberID, viewHandicap, func() (dto.HandicapEstimate, error) {
		diffs, err := s.storage.Differentials(ctx, memberID)
		if err != nil {
			return dto.HandicapEstimate{}, err
		}
		return EstimateHandicap(memberID, diffs, s.handicap), nil
	})
}

// Report combines every view of one member. It fails with errorz.ErrNotFound when the member
// does not exist.
func (s *StatsService) Report(ctx context.Context, memberID uint) (*dto.PlayerReport, error) {
	summary, err := s.Summary(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, fmt.Errorf("%w: member %d", errorz.ErrNotFound, memberID)
	}

	report := &dto.PlayerReport{Summary: *summary}
	if report.Holes, err = s.HoleAverages(ctx, memberID); err != nil {
		return nil, err
	}
	if report.Rounds, err = s.RecentRounds(ctx, memberID, 0); err != nil {
		return nil, err
	}
	if report.Courses, err = s.PerformanceByCourse(ctx, memberID); err != nil {
		return nil, err
	}
	if report.Handicap, err = s.Handicap(ctx, memberID); err != nil {
		return nil, err
	}
	return report, nil
}

func cached[T any](ctx context.Context, s *StatsService, memberID uint, view string, compute func() (T, error)) (T, error) {
	var value T
	generation, found, loadErr := s.cache.Load(ctx, memberID, view, &value)
	if loadErr != nil {
		s.logger.Warnf("failed to load cached %s for member %d: %v", view, memberID, loadErr)
	} else if found {
		return value, nil
	}

	value, err := compute()
	if err != nil || loadErr != nil {
		return value, err
	}
	if err = s.cache.Store(ctx, memberID, view, generation, value); err != nil {
		s.logger.Warnf("failed to cache %s for member %d: %v", view, memberID, err)
	}
	return value, nil
}
