package entity

// Hole is the result of a single hole within a round.
// Hole numbers are not deduplicated within a round.
type Hole struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	RoundID    uint  `gorm:"not null;index" json:"round_id"`
	Round      Round `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	HoleNumber int   `gorm:"not null" json:"hole_number"`
	Par        *int  `json:"par"`
	Strokes    *int  `json:"strokes"`
	Putts      *int  `json:"putts"`
	FairwayHit *bool `json:"fairway_hit"`
	GIR        *bool `gorm:"column:gir" json:"gir"`
}
