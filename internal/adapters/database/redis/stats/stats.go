package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "golfstats:member"

// Storage caches computed views in one hash per member generation.
// The generation counter is bumped by Invalidate, so older hashes are never read again
// and disappear with their TTL.
type Storage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStorage(client *redis.Client, ttl time.Duration) *Storage {
	return &Storage{
		redis: client,
		ttl:   ttl,
	}
}

func versionKey(memberID uint) string {
	return fmt.Sprintf("%s:%d:version", keyPrefix, memberID)
}

func dataKey(memberID uint, generation int64) string {
	return fmt.Sprintf("%s:%d:v%d", keyPrefix, memberID, generation)
}

func (s *Storage) generation(ctx context.Context, memberID uint) (int64, error) {
	raw, err := s.redis.Get(ctx, versionKey(memberID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (s *Storage) Load(ctx context.Context, memberID uint, view string, dst interface{}) (int64, bool, error) {
	generation, err := s.generation(ctx, memberID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to read generation of member %d: %w", memberID, err)
	}

	raw, err := s.redis.HGet(ctx, dataKey(memberID, generation), view).Bytes()
	if errors.Is(err, redis.Nil) {
		return generation, false, nil
	}
	if err != nil {
		return generation, false, err
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		return generation, false, fmt.Errorf("failed to decode cached %s: %w", view, err)
	}
	return generation, true, nil
}

func (s *Storage) Store(ctx context.Context, memberID uint, view string, generation int64, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	key := dataKey(memberID, generation)
	_, err = s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, view, raw)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	return err
}

func (s *Storage) Invalidate(ctx context.Context, memberIDs ...uint) error {
	if len(memberIDs) == 0 {
		return nil
	}
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range memberIDs {
			pipe.Incr(ctx, versionKey(id))
		}
		return nil
	})
	return err
}

// Flush drops every cached view and generation counter. Ids restart after the schema is
// recreated, so entries of the old schema must not survive it.
func (s *Storage) Flush(ctx context.Context) error {
	iter := s.redis.Scan(ctx, 0, keyPrefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.redis.Del(ctx, keys...).Err()
}
