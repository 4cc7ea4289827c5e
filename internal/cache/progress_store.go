// Package cache holds the transient, per-user quiz progress that lives for
// the duration of one quiz run. It is keyed by user id, so a user can only
// ever have one quiz in flight; starting a new quiz overwrites the old state.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoProgress is returned when the user has no quiz in flight.
var ErrNoProgress = errors.New("no active quiz progress")

// DefaultIdleTTL bounds how long an abandoned quiz keeps its state.
const DefaultIdleTTL = 30 * time.Minute

// QuizProgress is the in-flight state of one quiz run. Position and Score are
// mutated on every answer; WordIDs and SessionID are fixed at start.
type QuizProgress struct {
	SessionID uint   `json:"session_id"`
	WordIDs   []uint `json:"word_ids"`
	Position  int    `json:"position"`
	Score     int    `json:"score"`
}

// Finished reports whether every question has been answered.
func (p *QuizProgress) Finished() bool {
	return p.Position >= len(p.WordIDs)
}

// ProgressStore persists transient quiz progress across request round trips.
type ProgressStore interface {
	Load(ctx context.Context, userID string) (*QuizProgress, error)
	Save(ctx context.Context, userID string, progress *QuizProgress) error
	Clear(ctx context.Context, userID string) error
}

type redisProgressStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProgressStore creates a ProgressStore on the given client. A zero
// ttl falls back to DefaultIdleTTL.
func NewRedisProgressStore(client *redis.Client, ttl time.Duration) ProgressStore {
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	return &redisProgressStore{client: client, ttl: ttl}
}

func progressKey(userID string) string {
	return "quiz:progress:" + userID
}

func (s *redisProgressStore) Load(ctx context.Context, userID string) (*QuizProgress, error) {
	data, err := s.client.Get(ctx, progressKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoProgress
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz progress: %w", err)
	}

	var progress QuizProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("failed to decode quiz progress: %w", err)
	}
	return &progress, nil
}

func (s *redisProgressStore) Save(ctx context.Context, userID string, progress *QuizProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to encode quiz progress: %w", err)
	}
	if err := s.client.Set(ctx, progressKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save quiz progress: %w", err)
	}
	return nil
}

func (s *redisProgressStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, progressKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear quiz progress: %w", err)
	}
	return nil
}
