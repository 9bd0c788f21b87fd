package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no state exists for a session ID, typically
// because the session expired or the operator never logged in.
var ErrNotFound = errors.New("session not found")

// State is everything the server remembers about one terminal session:
// where the operator is in the UI, how they got there, and which language
// the screens render in.
type State struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Screen    Screen    `json:"screen"`
	History   []Screen  `json:"history"`
	Language  string    `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists session state keyed by session ID.
type Store interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Set(ctx context.Context, sessionID string, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

const sessionTTL = 12 * time.Hour

type redisStore struct{ rdb *redis.Client }

// NewRedisStore returns a Store backed by Redis. Each session is one key with
// a sliding TTL: any write refreshes the expiry.
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func sessionKey(id string) string { return "session:" + id }

func (s *redisStore) Get(ctx context.Context, sessionID string) (*State, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", sessionID, err)
	}
	return &state, nil
}

func (s *redisStore) Set(ctx context.Context, sessionID string, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.rdb.Set(ctx, sessionKey(sessionID), payload, sessionTTL).Err()
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}
