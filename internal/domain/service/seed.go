package service

import (
	"context"
	"fmt"

	"github.com/Badsnus/golf-stats/internal/domain/entity"
	"github.com/Badsnus/golf-stats/internal/domain/utils/location"
)

// SampleIDs are the identifiers generated for the sample data.
type SampleIDs struct {
	AliceID  uint `json:"alice_id"`
	BobID    uint `json:"bob_id"`
	CourseID uint `json:"course_id"`
	RoundID  uint `json:"round_id"`
}

// SeedService fills an empty database with illustrative rows through the ingestion services.
type SeedService struct {
	members *MemberService
	courses *CourseService
	rounds  *RoundService
}

func NewSeedService(members *MemberService, courses *CourseService, rounds *RoundService) *SeedService {
	return &SeedService{
		members: members,
		courses: courses,
		rounds:  rounds,
	}
}

// Sample inserts two members, one course and one round with two holes, played today.
func (s *SeedService) Sample(ctx context.Context) (SampleIDs, error) {
	var ids SampleIDs
	var err error

	if ids.AliceID, err = s.members.Add(ctx, "Alice", ptr("Smith"), ptr("alice@example.com")); err != nil {
		return ids, fmt.Errorf("failed to add sample member: %w", err)
	}
	if ids.BobID, err = s.members.Add(ctx, "Bob", ptr("Jones"), ptr("bob@example.com")); err != nil {
		return ids, fmt.Errorf("failed to add sample member: %w", err)
	}
	if ids.CourseID, err = s.courses.Add(ctx, "Sunnyvale GC", ptr(72), ptr(18)); err != nil {
		return ids, fmt.Errorf("failed to add sample course: %w", err)
	}

	ids.RoundID, err = s.rounds.AddRound(ctx, entity.Round{
		MemberID:     ids.AliceID,
		CourseID:     &ids.CourseID,
		DatePlayed:   entity.NewDate(location.Now()),
		TotalStrokes: ptr(88),
		Putts:        ptr(36),
		FairwaysHit:  ptr(8),
		GIR:          ptr(6),
		Notes:        ptr("Practice round"),
	})
	if err != nil {
		return ids, fmt.Errorf("failed to add sample round: %w", err)
	}

	holes := []entity.Hole{
		{RoundID: ids.RoundID, HoleNumber: 1, Par: ptr(4), Strokes: ptr(5), Putts: ptr(2), FairwayHit: ptr(false), GIR: ptr(false)},
		{RoundID: ids.RoundID, HoleNumber: 2, Par: ptr(3), Strokes: ptr(3), Putts: ptr(1), FairwayHit: ptr(false), GIR: ptr(true)},
	}
	for _, hole := range holes {
		if _, err = s.rounds.AddHole(ctx, hole); err != nil {
			return ids, fmt.Errorf("failed to add sample hole %d: %w", hole.HoleNumber, err)
		}
	}

	return ids, nil
}

func ptr[T any](v T) *T {
	return &v
}
