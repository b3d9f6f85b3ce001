package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"odontocarol/models"
	"odontocarol/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists booking sessions for the lifetime of an attempt.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON blobs with a TTL. An expired
// session simply disappears; unfinished bookings must not resume with stale
// availability.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return utils.SessionKeyPrefix + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, s.key(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, newFlowError(CodeSessionNotFound, "booking session not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.key(sessionID)).Err()
}
