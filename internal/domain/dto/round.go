package dto

import "github.com/Badsnus/golf-stats/internal/domain/entity"

// RoundListing is a round of any member, as printed by the database utility.
type RoundListing struct {
	ID           uint        `json:"id"`
	DatePlayed   entity.Date `json:"date_played"`
	TotalStrokes *int        `json:"total_strokes"`
	Player       string      `json:"player"`
}
