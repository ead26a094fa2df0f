package entity

// Round is one round played by one member, optionally on a known course.
type Round struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	MemberID     uint    `gorm:"not null;index" json:"member_id"`
	Member       Member  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CourseID     *uint   `gorm:"index" json:"course_id"`
	Course       *Course `json:"-"`
	DatePlayed   Date    `gorm:"type:varchar(10);not null;index" json:"date_played"`
	TotalStrokes *int    `json:"total_strokes"`
	Putts        *int    `json:"putts"`
	FairwaysHit  *int    `json:"fairways_hit"`
	GIR          *int    `gorm:"column:gir" json:"gir"`
	Notes        *string `json:"notes"`
}
