package sqlstore

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
)

// translate maps gorm errors onto the domain error kinds.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", errorz.ErrNotFound, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", errorz.ErrIntegrityViolation, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", errorz.ErrDuplicate, err)
	default:
		return err
	}
}

// requireRow fails with ErrIntegrityViolation unless a row of model with the given id exists.
func requireRow(tx *gorm.DB, model interface{}, id uint, what string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s with id %d not found", errorz.ErrIntegrityViolation, what, id)
	}
	return nil
}
