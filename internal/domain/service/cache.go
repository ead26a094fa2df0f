package service

import (
	"context"

	"github.com/Badsnus/golf-stats/pkg/logger/types"
)

// AllMembers is the cache slot of views spanning every member.
const AllMembers uint = 0

// StatsCache keeps computed views per member, grouped in generations.
// Load reports the member's current generation; Store writes into the generation it is given,
// so a value computed before a concurrent Invalidate lands in a generation nobody reads.
// Invalidate must start a new generation for every given member; ingestion calls it after
// each successful write.
type StatsCache interface {
	Load(ctx context.Context, memberID uint, view string, dst interface{}) (generation int64, found bool, err error)
	Store(ctx context.Context, memberID uint, view string, generation int64, value interface{}) error
	Invalidate(ctx context.Context, memberIDs ...uint) error
}

// NoCache is a StatsCache that stores nothing.
type NoCache struct{}

func (NoCache) Load(context.Context, uint, string, interface{}) (int64, bool, error) {
	return 0, false, nil
}

func (NoCache) Store(context.Context, uint, string, int64, interface{}) error {
	return nil
}

func (NoCache) Invalidate(context.Context, ...uint) error {
	return nil
}

// invalidate drops cached views after a write. A failure only leaves entries to expire
// through their TTL, so it is logged instead of failing the committed write.
func invalidate(ctx context.Context, cache StatsCache, logger *types.Logger, memberIDs ...uint) {
	if err := cache.Invalidate(ctx, memberIDs...); err != nil {
		logger.Errorf("failed to invalidate cached stats for members %v: %v", memberIDs, err)
	}
}
