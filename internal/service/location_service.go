package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listing-api/internal/models"
)

// LocationKey scopes the base location key to a device. An empty device uses the base key.
func LocationKey(base, device string) string {
	if device == "" {
		return base
	}
	return base + ":" + device
}

// LocationStore interface for dependency injection
type LocationStore interface {
	SaveLocation(ctx context.Context, key, payload string, ttl time.Duration) error
	DeleteLocation(ctx context.Context, key string) error
}

// LocationService persists the last-known device location read by the home feed.
type LocationService struct {
	store LocationStore
	key   string
	ttl   time.Duration
}

// NewLocationService creates a new location service
func NewLocationService(store LocationStore, key string, ttl time.Duration) *LocationService {
	if key == "" {
		key = DefaultLocationKey
	}
	return &LocationService{store: store, key: key, ttl: ttl}
}

// SaveLocation validates and stores the device location.
func (s *LocationService) SaveLocation(ctx context.Context, device string, loc models.Coordinate) error {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("service: %w: invalid latitude: %f", models.ErrInvalidCoordinate, loc.Latitude)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("service: %w: invalid longitude: %f", models.ErrInvalidCoordinate, loc.Longitude)
	}

	payload, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("service: failed to encode location: %w", err)
	}

	if err := s.store.SaveLocation(ctx, LocationKey(s.key, device), string(payload), s.ttl); err != nil {
		return fmt.Errorf("service: failed to save location: %w", err)
	}
	return nil
}

// ClearLocation forgets the device location, so the feed falls back to catalog order.
func (s *LocationService) ClearLocation(ctx context.Context, device string) error {
	if err := s.store.DeleteLocation(ctx, LocationKey(s.key, device)); err != nil {
		return fmt.Errorf("service: failed to clear location: %w", err)
	}
	return nil
}
