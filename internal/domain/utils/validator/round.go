package validator

import "github.com/Badsnus/golf-stats/internal/domain/entity"

// DatePlayed requires a calendar date; the zero Date stands for a missing one.
func DatePlayed(d entity.Date) bool {
	return !d.IsZero()
}
