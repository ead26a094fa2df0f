package dto

import "github.com/Badsnus/golf-stats/internal/domain/entity"

// PlayerSummary is one row of vw_player_summary.
// Aggregates are nil when the member has no round carrying the value.
type PlayerSummary struct {
	MemberID     uint        `json:"member_id"`
	FirstName    string      `json:"first_name"`
	LastName     *string     `json:"last_name"`
	RoundsPlayed int64       `json:"rounds_played"`
	AvgScore     *float64    `json:"avg_score"`
	BestScore    *int        `json:"best_score"`
	LastPlayed   entity.Date `json:"last_played"`
}

func (s PlayerSummary) Name() string {
	m := entity.Member{FirstName: s.FirstName, LastName: s.LastName}
	return m.FullName()
}

// HoleAverage is one row of vw_player_hole_averages.
type HoleAverage struct {
	MemberID    uint     `json:"member_id"`
	HoleNumber  int      `json:"hole_number"`
	HolesPlayed int64    `json:"holes_played"`
	AvgStrokes  *float64 `json:"avg_strokes"`
	AvgPutts    *float64 `json:"avg_putts"`
	FairwayPct  *float64 `json:"fairway_pct"`
	GIRPct      *float64 `json:"gir_pct" gorm:"column:gir_pct"`
}

// RecentRound is one row of vw_player_recent_rounds.
type RecentRound struct {
	MemberID     uint        `json:"member_id"`
	RoundID      uint        `json:"round_id"`
	DatePlayed   entity.Date `json:"date_played"`
	CourseID     *uint       `json:"course_id"`
	CourseName   *string     `json:"course_name"`
	CoursePar    *int        `json:"course_par"`
	TotalStrokes *int        `json:"total_strokes"`
	Putts        *int        `json:"putts"`
	FairwaysHit  *int        `json:"fairways_hit"`
	GIR          *int        `json:"gir" gorm:"column:gir"`
	Notes        *string     `json:"notes"`
	Differential *int        `json:"differential"`
}

// CoursePerformance is one row of vw_player_performance_by_course.
type CoursePerformance struct {
	MemberID     uint     `json:"member_id"`
	CourseID     uint     `json:"course_id"`
	CourseName   string   `json:"course_name"`
	CoursePar    *int     `json:"course_par"`
	RoundsPlayed int64    `json:"rounds_played"`
	AvgScore     *float64 `json:"avg_score"`
	BestScore    *int     `json:"best_score"`
}

// Differential is one row of vw_player_differentials: a round eligible for handicap estimation.
type Differential struct {
	MemberID     uint        `json:"member_id"`
	RoundID      uint        `json:"round_id"`
	DatePlayed   entity.Date `json:"date_played"`
	TotalStrokes int         `json:"total_strokes"`
	CoursePar    int         `json:"course_par"`
	Differential int         `json:"differential"`
}

// HandicapEstimate is the estimated handicap index of one member.
// Index is nil when the member has no eligible round.
type HandicapEstimate struct {
	MemberID       uint     `json:"member_id"`
	Index          *float64 `json:"handicap_index" gorm:"column:handicap_index"`
	RoundsEligible int      `json:"rounds_eligible"`
	RoundsUsed     int      `json:"rounds_used"`
}

// PlayerReport combines every derived view for one member.
type PlayerReport struct {
	Summary  PlayerSummary       `json:"summary"`
	Holes    []HoleAverage       `json:"holes"`
	Rounds   []RecentRound       `json:"rounds"`
	Courses  []CoursePerformance `json:"courses"`
	Handicap HandicapEstimate    `json:"handicap"`
}
