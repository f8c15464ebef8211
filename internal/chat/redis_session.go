package chat

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps conversation state in Redis. The key TTL doubles as
// the admin-flow step timeout and state survives process restarts.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an established Redis client. The ttl is applied on
// every write, so each step message extends the flow's lifetime.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "chat:session:" + sessionID
}

// Get loads the session's state. A missing key means the session is idle
// (either never seen or expired).
func (s *RedisStore) Get(ctx context.Context, sessionID string) (ConversationState, error) {
	idle := ConversationState{Step: StepNone}
	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return idle, nil
	}
	if err != nil {
		return idle, err
	}
	var state ConversationState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return idle, err
	}
	return state, nil
}

// Put stores the state under the session key with the step TTL.
func (s *RedisStore) Put(ctx context.Context, sessionID string, state ConversationState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sessionID), b, s.ttl).Err()
}

// Reset deletes the session key, returning the session to idle.
func (s *RedisStore) Reset(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
