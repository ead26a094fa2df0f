package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Badsnus/golf-stats/internal/domain/dto"
)

// StatsStorage reads the derived views. Every call is a fresh query, so results always
// reflect the rows committed so far.
type StatsStorage struct {
	db *gorm.DB
}

func NewStatsStorage(db *gorm.DB) *StatsStorage {
	return &StatsStorage{
		db: db,
	}
}

// Summaries lists every player by ascending average score; players without an average come last.
func (s *StatsStorage) Summaries(ctx context.Context) ([]dto.PlayerSummary, error) {
	var summaries []dto.PlayerSummary
	err := s.db.WithContext(ctx).
		Table(ViewPlayerSummary).
		Order("avg_score IS NULL, avg_score ASC, member_id ASC").
		Find(&summaries).Error
	return summaries, err
}

// Summary returns nil without an error when the member does not exist.
func (s *StatsStorage) Summary(ctx context.Context, memberID uint) (*dto.PlayerSummary, error) {
	var summary dto.PlayerSummary
	err := s.db.WithContext(ctx).
		Table(ViewPlayerSummary).
		Where("member_id = ?", memberID).
		Take(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *StatsStorage) HoleAverages(ctx context.Context, memberID uint) ([]dto.HoleAverage, error) {
	var holes []dto.HoleAverage
	err := s.db.WithContext(ctx).
		Table(ViewPlayerHoleAverages).
		Where("member_id = ?", memberID).
		Order("hole_number ASC").
		Find(&holes).Error
	return holes, err
}

// RecentRounds lists rounds newest first, higher round id first on equal dates.
// A limit <= 0 lists every round.
func (s *StatsStorage) RecentRounds(ctx context.Context, memberID uint, limit int) ([]dto.RecentRound, error) {
	var rounds []dto.RecentRound
	query := s.db.WithContext(ctx).
		Table(ViewPlayerRecentRounds).
		Where("member_id = ?", memberID).
		Order("date_played DESC, round_id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&rounds).Error
	return rounds, err
}

func (s *StatsStorage) PerformanceByCourse(ctx context.Context, memberID uint) ([]dto.CoursePerformance, error) {
	var courses []dto.CoursePerformance
	err := s.db.WithContext(ctx).
		Table(ViewPlayerPerformanceByCourse).
		Where("member_id = ?", memberID).
		Order("avg_score IS NULL, avg_score ASC, course_id ASC").
		Find(&courses).Error
	return courses, err
}

// Differentials lists the member's eligible rounds, most recent first.
func (s *StatsStorage) Differentials(ctx context.Context, memberID uint) ([]dto.Differential, error) {
	var diffs []dto.Differential
	err := s.db.WithContext(ctx).
		Table(ViewPlayerDifferentials).
		Where("member_id = ?", memberID).
		Order("date_played DESC, round_id DESC").
		Find(&diffs).Error
	return diffs, err
}

// HandicapEstimate reads the handicap view rendered from the ViewOptions given at migration.
// It returns nil without an error when the member has no eligible round.
func (s *StatsStorage) HandicapEstimate(ctx context.Context, memberID uint) (*dto.HandicapEstimate, error) {
	var estimate dto.HandicapEstimate
	err := s.db.WithContext(ctx).
		Table(ViewPlayerHandicapEstimate).
		Where("member_id = ?", memberID).
		Take(&estimate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &estimate, nil
}
