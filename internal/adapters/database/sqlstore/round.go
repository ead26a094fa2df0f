package sqlstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Badsnus/golf-stats/internal/domain/dto"
	"github.com/Badsnus/golf-stats/internal/domain/entity"
)

type RoundStorage struct {
	db *gorm.DB
}

func NewRoundStorage(db *gorm.DB) *RoundStorage {
	return &RoundStorage{
		db: db,
	}
}

// Create inserts a round after checking that its member and, when set, its course exist.
// The checks and the insert share one transaction.
func (s *RoundStorage) Create(ctx context.Context, round *entity.Round) (*entity.Round, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &entity.Member{}, round.MemberID, "member"); err != nil {
			return err
		}
		if round.CourseID != nil {
			if err := requireRow(tx, &entity.Course{}, *round.CourseID, "course"); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Create(round).Error
	})
	return round, translate(err)
}

func (s *RoundStorage) Get(ctx context.Context, id uint) (*entity.Round, error) {
	var round entity.Round
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&round).Error
	if err != nil {
		return nil, translate(err)
	}
	return &round, nil
}

// Recent lists the newest rounds of every member together with the player's name.
// A limit <= 0 lists every round.
func (s *RoundStorage) Recent(ctx context.Context, limit int) ([]dto.RoundListing, error) {
	var rows []struct {
		ID           uint
		DatePlayed   entity.Date
		TotalStrokes *int
		FirstName    string
		LastName     *string
	}
	query := s.db.WithContext(ctx).
		Table("rounds").
		Select("rounds.id, rounds.date_played, rounds.total_strokes, members.first_name, members.last_name").
		Joins("JOIN members ON members.id = rounds.member_id").
		Order("rounds.date_played DESC, rounds.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]dto.RoundListing, 0, len(rows))
	for _, row := range rows {
		member := entity.Member{FirstName: row.FirstName, LastName: row.LastName}
		result = append(result, dto.RoundListing{
			ID:           row.ID,
			DatePlayed:   row.DatePlayed,
			TotalStrokes: row.TotalStrokes,
			Player:       member.FullName(),
		})
	}
	return result, nil
}
