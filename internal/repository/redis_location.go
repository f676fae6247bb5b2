package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LocationStore keeps the last-known device location payloads in Redis.
type LocationStore struct {
	client *redis.Client
}

// NewLocationStore creates a Redis backed location store
func NewLocationStore(client *redis.Client) *LocationStore {
	return &LocationStore{client: client}
}

// GetLocation returns the raw payload stored under key. A missing key or an
// empty value reports found=false.
func (s *LocationStore) GetLocation(ctx context.Context, key string) (string, bool, error) {
	payload, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("repository: failed to get location %q: %w", key, err)
	}
	if payload == "" {
		return "", false, nil
	}
	return payload, true, nil
}

// SaveLocation stores payload under key. A zero ttl keeps it forever.
func (s *LocationStore) SaveLocation(ctx context.Context, key, payload string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("repository: failed to save location %q: %w", key, err)
	}
	return nil
}

// DeleteLocation removes key. Deleting a missing key is not an error.
func (s *LocationStore) DeleteLocation(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("repository: failed to delete location %q: %w", key, err)
	}
	return nil
}
