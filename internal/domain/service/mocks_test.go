package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
	"github.com/Badsnus/golf-stats/internal/domain/dto"
	"github.com/Badsnus/golf-stats/internal/domain/entity"
)

type mockMemberStorage struct {
	members []entity.Member
	err     error
}

func (m *mockMemberStorage) Create(_ context.Context, member *entity.Member) (*entity.Member, error) {
	if m.err != nil {
		return nil, m.err
	}
	member.ID = uint(len(m.members) + 1)
	m.members = append(m.members, *member)
	return member, nil
}

func (m *mockMemberStorage) Get(_ context.Context, id uint) (*entity.Member, error) {
	for i := range m.members {
		if m.members[i].ID == id {
			return &m.members[i], nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (m *mockMemberStorage) GetAll(context.Context) ([]entity.Member, error) {
	return m.members, nil
}

func (m *mockMemberStorage) Count(context.Context) (int64, error) {
	return int64(len(m.members)), nil
}

type mockCourseStorage struct {
	courses []entity.Course
}

func (m *mockCourseStorage) Create(_ context.Context, course *entity.Course) (*entity.Course, error) {
	course.ID = uint(len(m.courses) + 1)
	m.courses = append(m.courses, *course)
	return course, nil
}

func (m *mockCourseStorage) Get(_ context.Context, id uint) (*entity.Course, error) {
	for i := range m.courses {
		if m.courses[i].ID == id {
			return &m.courses[i], nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (m *mockCourseStorage) GetAll(context.Context) ([]entity.Course, error) {
	return m.courses, nil
}

type mockRoundStorage struct {
	members *mockMemberStorage
	rounds  []entity.Round
	getErr  error
}

func (m *mockRoundStorage) Create(ctx context.Context, round *entity.Round) (*entity.Round, error) {
	if _, err := m.members.Get(ctx, round.MemberID); err != nil {
		return nil, errorz.ErrIntegrityViolation
	}
	round.ID = uint(len(m.rounds) + 1)
	m.rounds = append(m.rounds, *round)
	return round, nil
}

func (m *mockRoundStorage) Get(_ context.Context, id uint) (*entity.Round, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := range m.rounds {
		if m.rounds[i].ID == id {
			return &m.rounds[i], nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (m *mockRoundStorage) Recent(context.Context, int) ([]dto.RoundListing, error) {
	return nil, nil
}

type mockHoleStorage struct {
	rounds *mockRoundStorage
	holes  []entity.Hole
}

func (m *mockHoleStorage) Create(_ context.Context, hole *entity.Hole) (*entity.Hole, error) {
	found := false
	for _, r := range m.rounds.rounds {
		if r.ID == hole.RoundID {
			found = true
		}
	}
	if !found {
		return nil, errorz.ErrIntegrityViolation
	}
	hole.ID = uint(len(m.holes) + 1)
	m.holes = append(m.holes, *hole)
	return hole, nil
}

func (m *mockHoleStorage) GetByRoundID(_ context.Context, roundID uint) ([]entity.Hole, error) {
	var holes []entity.Hole
	for _, h := range m.holes {
		if h.RoundID == roundID {
			holes = append(holes, h)
		}
	}
	return holes, nil
}

// mockStatsStorage counts reads so tests can tell cache hits from recomputation.
type mockStatsStorage struct {
	summaries []dto.PlayerSummary
	diffs     []dto.Differential
	calls     map[string]int
	err       error
}

func (m *mockStatsStorage) hit(name string) {
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[name]++
}

func (m *mockStatsStorage) Summaries(context.Context) ([]dto.PlayerSummary, error) {
	m.hit("summaries")
	return m.summaries, m.err
}

func (m *mockStatsStorage) Summary(_ context.Context, memberID uint) (*dto.PlayerSummary, error) {
	m.hit("summary")
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.summaries {
		if m.summaries[i].MemberID == memberID {
			s := m.summaries[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockStatsStorage) HoleAverages(context.Context, uint) ([]dto.HoleAverage, error) {
	m.hit("holes")
	return nil, m.err
}

func (m *mockStatsStorage) RecentRounds(context.Context, uint, int) ([]dto.RecentRound, error) {
	m.hit("rounds")
	return nil, m.err
}

func (m *mockStatsStorage) PerformanceByCourse(context.Context, uint) ([]dto.CoursePerformance, error) {
	m.hit("courses")
	return nil, m.err
}

func (m *mockStatsStorage) Differentials(context.Context, uint) ([]dto.Differential, error) {
	m.hit("differentials")
	return m.diffs, m.err
}

// memoryCache is an in-process StatsCache with the same generation rules as the Redis one.
type memoryCache struct {
	mu          sync.Mutex
	generations map[uint]int64
	values      map[string][]byte
	invalidated []uint
	loadErr     error
	invalErr    error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		generations: map[uint]int64{},
		values:      map[string][]byte{},
	}
}

func cacheKey(memberID uint, generation int64, view string) string {
	return fmt.Sprintf("%d:%d:%s", memberID, generation, view)
}

func (c *memoryCache) Load(_ context.Context, memberID uint, view string, dst interface{}) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loadErr != nil {
		return 0, false, c.loadErr
	}
	generation := c.generations[memberID]
	raw, ok := c.values[cacheKey(memberID, generation, view)]
	if !ok {
		return generation, false, nil
	}
	return generation, true, json.Unmarshal(raw, dst)
}

func (c *memoryCache) Store(_ context.Context, memberID uint, view string, generation int64, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[cacheKey(memberID, generation, view)] = raw
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, memberIDs ...uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, memberIDs...)
	if c.invalErr != nil {
		return c.invalErr
	}
	for _, id := range memberIDs {
		c.generations[id]++
	}
	return nil
}
