package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"listing-api/internal/carousel"
	"listing-api/internal/format"
	"listing-api/internal/geo"
	"listing-api/internal/models"
	"listing-api/internal/platform/obs"

	"github.com/mmcloughlin/geohash"
	"github.com/rs/zerolog/log"
)

const (
	DefaultLocationKey      = "userLocation"
	DefaultGeohashPrecision = 7
)

// ListingCatalog interface for dependency injection
type ListingCatalog interface {
	ListListings(ctx context.Context) ([]models.ListingItem, error)
}

// LocationSource returns the persisted last-known location payload for a key.
type LocationSource interface {
	GetLocation(ctx context.Context, key string) (payload string, found bool, err error)
}

// HomeConfig tunes the home feed. Zero values fall back to the defaults.
type HomeConfig struct {
	LocationKey       string
	CardWidthFraction float64
	GeohashPrecision  uint
}

// HomeService builds the home screen feed: catalog listings ranked by distance
// from the device's last-known location, or in catalog order when there is none.
type HomeService struct {
	catalog   ListingCatalog
	locations LocationSource
	cfg       HomeConfig
}

// NewHomeService creates a new home service
func NewHomeService(catalog ListingCatalog, locations LocationSource, cfg HomeConfig) *HomeService {
	if cfg.LocationKey == "" {
		cfg.LocationKey = DefaultLocationKey
	}
	if cfg.CardWidthFraction <= 0 {
		cfg.CardWidthFraction = carousel.DefaultCardWidthFraction
	}
	if cfg.GeohashPrecision == 0 {
		cfg.GeohashPrecision = DefaultGeohashPrecision
	}
	return &HomeService{catalog: catalog, locations: locations, cfg: cfg}
}

// Home returns the feed for device. Location problems never fail the call; they
// produce an unranked feed.
func (s *HomeService) Home(ctx context.Context, device string) (feed *models.HomeFeed, err error) {
	defer obs.Time(ctx, "home.feed")(&err)

	items, err := s.catalog.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings: %w", err)
	}

	origin, ok := s.lastKnownLocation(ctx, device)
	if !ok {
		return s.unrankedFeed(items), nil
	}

	ranked := geo.SortByDistance(origin, items)

	feed = &models.HomeFeed{
		Ranked: true,
		Origin: &origin,
		Items:  make([]models.FeedCard, 0, len(ranked)),
	}
	if id, ok := geo.NearestID(ranked); ok {
		feed.NearestID = &id
	}
	for _, r := range ranked {
		card := s.card(r.ListingItem)
		distance := r.DistanceKm
		card.DistanceKm = &distance
		feed.Items = append(feed.Items, card)
	}

	return feed, nil
}

// Focus maps a carousel scroll offset to the focused card of device's feed.
func (s *HomeService) Focus(ctx context.Context, device string, offsetX, viewportWidth float64) (*models.Focus, error) {
	if !(viewportWidth > 0) {
		return nil, fmt.Errorf("service: %w: %f", models.ErrInvalidViewport, viewportWidth)
	}

	feed, err := s.Home(ctx, device)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(feed.Items))
	for _, c := range feed.Items {
		ids = append(ids, c.ID)
	}

	index := carousel.FocusedIndex(offsetX, s.cfg.CardWidthFraction, viewportWidth)
	focus := &models.Focus{Index: index}
	if id, ok := carousel.FocusedID(ids, index); ok {
		focus.InRange = true
		focus.ID = &id
	}

	return focus, nil
}

func (s *HomeService) unrankedFeed(items []models.ListingItem) *models.HomeFeed {
	feed := &models.HomeFeed{Items: make([]models.FeedCard, 0, len(items))}
	for _, it := range items {
		feed.Items = append(feed.Items, s.card(it))
	}
	return feed
}

func (s *HomeService) card(it models.ListingItem) models.FeedCard {
	images := it.Images
	if images == nil {
		images = []string{}
	}
	return models.FeedCard{
		ID:         it.ID,
		Title:      it.Title,
		Content:    it.Content,
		Price:      it.Price,
		PriceLabel: format.Price(it.Price),
		Coordinate: it.Coordinate,
		Geohash:    geohash.EncodeWithPrecision(it.Coordinate.Latitude, it.Coordinate.Longitude, s.cfg.GeohashPrecision),
		Images:     images,
	}
}

// savedLocation is the persisted payload. Both fields must be present.
type savedLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

var errIncompleteLocation = errors.New("latitude and longitude are required")

func parseLocation(payload string) (models.Coordinate, error) {
	var saved savedLocation
	if err := json.Unmarshal([]byte(payload), &saved); err != nil {
		return models.Coordinate{}, err
	}
	if saved.Latitude == nil || saved.Longitude == nil {
		return models.Coordinate{}, errIncompleteLocation
	}
	return models.Coordinate{Latitude: *saved.Latitude, Longitude: *saved.Longitude}, nil
}

func (s *HomeService) lastKnownLocation(ctx context.Context, device string) (models.Coordinate, bool) {
	key := LocationKey(s.cfg.LocationKey, device)
	logger := log.With().Str("req_id", obs.RequestID(ctx)).Str("key", key).Logger()

	payload, found, err := s.locations.GetLocation(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Msg("saved location load failed, using catalog order")
		return models.Coordinate{}, false
	}
	if !found {
		logger.Info().Msg("no saved location, using catalog order")
		return models.Coordinate{}, false
	}

	origin, err := parseLocation(payload)
	if err != nil {
		logger.Warn().Err(err).Msg("saved location is malformed, using catalog order")
		return models.Coordinate{}, false
	}
	return origin, true
}
