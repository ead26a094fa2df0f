package sqlstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
	"github.com/Badsnus/golf-stats/internal/domain/entity"
)

type MemberStorage struct {
	db *gorm.DB
}

func NewMemberStorage(db *gorm.DB) *MemberStorage {
	return &MemberStorage{
		db: db,
	}
}

// Create is a function that creates a new member in the database.
// A non-empty email already taken by another member fails with ErrDuplicate.
func (s *MemberStorage) Create(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if member.Email != nil {
			var count int64
			if err := tx.Model(&entity.Member{}).Where("email = ?", *member.Email).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%w: email %s is already registered", errorz.ErrDuplicate, *member.Email)
			}
		}
		return tx.Create(member).Error
	})
	return member, translate(err)
}

// Get is a function that gets a member from the database by id.
func (s *MemberStorage) Get(ctx context.Context, id uint) (*entity.Member, error) {
	var member entity.Member
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, translate(err)
	}
	return &member, nil
}

// GetAll is a function that gets all members ordered by id.
func (s *MemberStorage) GetAll(ctx context.Context) ([]entity.Member, error) {
	var members []entity.Member
	err := s.db.WithContext(ctx).Order("id").Find(&members).Error
	return members, err
}

func (s *MemberStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Member{}).Count(&count).Error
	return count, err
}
