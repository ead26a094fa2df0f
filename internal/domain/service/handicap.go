package service

import (
	"math"
	"sort"

	"github.com/Badsnus/golf-stats/internal/domain/dto"
)

// HandicapConfig selects which differentials feed the estimate: the Best lowest of the
// Window most recent eligible rounds, averaged and multiplied by Factor.
type HandicapConfig struct {
	Window int
	Best   int
	Factor float64
	// Proportional scales Best down to round(n*Best/Window) while fewer than Window
	// eligible rounds exist. Off by default: short histories use min(Best, n).
	Proportional bool
}

func DefaultHandicapConfig() HandicapConfig {
	return HandicapConfig{
		Window: 20,
		Best:   8,
		Factor: 1.0,
	}
}

// Normalized replaces unset or inconsistent values with the defaults.
func (c HandicapConfig) Normalized() HandicapConfig {
	def := DefaultHandicapConfig()
	if c.Window <= 0 {
		c.Window = def.Window
	}
	if c.Best <= 0 {
		c.Best = def.Best
	}
	if c.Best > c.Window {
		c.Best = c.Window
	}
	if c.Factor == 0 {
		c.Factor = def.Factor
	}
	return c
}

// EstimateHandicap computes the handicap estimate of one member from its eligible rounds.
// The index stays nil when there is no eligible round.
func EstimateHandicap(memberID uint, diffs []dto.Differential, cfg HandicapConfig) dto.HandicapEstimate {
	cfg = cfg.Normalized()
	estimate := dto.HandicapEstimate{
		MemberID:       memberID,
		RoundsEligible: len(diffs),
	}
	if len(diffs) == 0 {
		return estimate
	}

	recent := make([]dto.Differential, len(diffs))
	copy(recent, diffs)
	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].DatePlayed.Equal(recent[j].DatePlayed.Time) {
			return recent[i].DatePlayed.After(recent[j].DatePlayed.Time)
		}
		return recent[i].RoundID > recent[j].RoundID
	})
	if len(recent) > cfg.Window {
		recent = recent[:cfg.Window]
	}

	best := cfg.Best
	if cfg.Proportional && len(recent) < cfg.Window {
		best = int(math.Round(float64(len(recent)*cfg.Best) / float64(cfg.Window)))
		if best < 1 {
			best = 1
		}
	}
	if best > len(recent) {
		best = len(recent)
	}

	values := make([]int, len(recent))
	for i, d := range recent {
		values[i] = d.Differential
	}
	sort.Ints(values)

	sum := 0
	for _, v := range values[:best] {
		sum += v
	}
	index := float64(sum) / float64(best) * cfg.Factor

	estimate.Index = &index
	estimate.RoundsUsed = best
	return estimate
}
