package sqlstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Badsnus/golf-stats/internal/domain/entity"
)

type HoleStorage struct {
	db *gorm.DB
}

func NewHoleStorage(db *gorm.DB) *HoleStorage {
	return &HoleStorage{
		db: db,
	}
}

// Create inserts a hole after checking that its round exists.
func (s *HoleStorage) Create(ctx context.Context, hole *entity.Hole) (*entity.Hole, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &entity.Round{}, hole.RoundID, "round"); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(hole).Error
	})
	return hole, translate(err)
}

// GetByRoundID lists the holes of a round in hole order.
func (s *HoleStorage) GetByRoundID(ctx context.Context, roundID uint) ([]entity.Hole, error) {
	var holes []entity.Hole
	err := s.db.WithContext(ctx).Where("round_id = ?", roundID).Order("hole_number, id").Find(&holes).Error
	return holes, err
}
