package service

import (
	"context"
	"testing"

	"listing-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockListingCatalog is a mock implementation of the ListingCatalog interface
type MockListingCatalog struct {
	mock.Mock
}

func (m *MockListingCatalog) ListListings(ctx context.Context) ([]models.ListingItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ListingItem), args.Error(1)
}

// MockLocationSource is a mock implementation of the LocationSource interface
type MockLocationSource struct {
	mock.Mock
}

func (m *MockLocationSource) GetLocation(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

var catalog = []models.ListingItem{
	{
		ID:         1,
		Title:      "부산 자전거",
		Content:    "해운대 직거래",
		Price:      120000,
		Coordinate: models.Coordinate{Latitude: 35.1796, Longitude: 129.0756},
		Images:     []string{"bike.jpg"},
	},
	{
		ID:         2,
		Title:      "을지로 책상",
		Content:    "원목",
		Price:      30000,
		Coordinate: models.Coordinate{Latitude: 37.5651, Longitude: 126.9895},
	},
	{
		ID:         3,
		Title:      "강남 의자",
		Price:      15000,
		Coordinate: models.Coordinate{Latitude: 37.4979, Longitude: 127.0276},
	},
}

func cardIDs(feed *models.HomeFeed) []int64 {
	out := []int64{}
	for _, c := range feed.Items {
		out = append(out, c.ID)
	}
	return out
}

func TestHomeService_Home(t *testing.T) {
	tests := []struct {
		name            string
		device          string
		expectedKey     string
		payload         string
		found           bool
		locationErr     error
		expectedRanked  bool
		expectedIDs     []int64
		expectedNearest *int64
	}{
		{
			name:            "saved location ranks by distance",
			expectedKey:     "userLocation",
			payload:         `{"latitude":37.5665,"longitude":126.978}`,
			found:           true,
			expectedRanked:  true,
			expectedIDs:     []int64{2, 3, 1},
			expectedNearest: ptr(int64(2)),
		},
		{
			name:            "device scoped key",
			device:          "phone-1",
			expectedKey:     "userLocation:phone-1",
			payload:         `{"latitude":35.18,"longitude":129.07}`,
			found:           true,
			expectedRanked:  true,
			expectedIDs:     []int64{1, 3, 2},
			expectedNearest: ptr(int64(1)),
		},
		{
			name:           "no saved location keeps catalog order",
			expectedKey:    "userLocation",
			found:          false,
			expectedRanked: false,
			expectedIDs:    []int64{1, 2, 3},
		},
		{
			name:           "location store error keeps catalog order",
			expectedKey:    "userLocation",
			locationErr:    assert.AnError,
			expectedRanked: false,
			expectedIDs:    []int64{1, 2, 3},
		},
		{
			name:           "malformed payload keeps catalog order",
			expectedKey:    "userLocation",
			payload:        `{"latitude":`,
			found:          true,
			expectedRanked: false,
			expectedIDs:    []int64{1, 2, 3},
		},
		{
			name:           "payload without longitude keeps catalog order",
			expectedKey:    "userLocation",
			payload:        `{"latitude":37.5}`,
			found:          true,
			expectedRanked: false,
			expectedIDs:    []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockCatalog := new(MockListingCatalog)
			mockLocations := new(MockLocationSource)
			service := NewHomeService(mockCatalog, mockLocations, HomeConfig{})

			mockCatalog.On("ListListings", mock.Anything).Return(catalog, nil)
			mockLocations.On("GetLocation", mock.Anything, tt.expectedKey).Return(tt.payload, tt.found, tt.locationErr)

			// Execute
			feed, err := service.Home(context.Background(), tt.device)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedRanked, feed.Ranked)
			assert.Equal(t, tt.expectedIDs, cardIDs(feed))
			assert.Equal(t, tt.expectedNearest, feed.NearestID)

			for _, c := range feed.Items {
				assert.Equal(t, tt.expectedRanked, c.DistanceKm != nil)
				assert.Len(t, c.Geohash, DefaultGeohashPrecision)
				assert.NotNil(t, c.Images)
			}
			if !tt.expectedRanked {
				assert.Nil(t, feed.Origin)
			}

			mockCatalog.AssertExpectations(t)
			mockLocations.AssertExpectations(t)
		})
	}
}

func TestHomeService_Home_Cards(t *testing.T) {
	mockCatalog := new(MockListingCatalog)
	mockLocations := new(MockLocationSource)
	service := NewHomeService(mockCatalog, mockLocations, HomeConfig{GeohashPrecision: 5})

	mockCatalog.On("ListListings", mock.Anything).Return(catalog, nil)
	mockLocations.On("GetLocation", mock.Anything, "userLocation").Return(`{"latitude":37.5665,"longitude":126.978}`, true, nil)

	feed, err := service.Home(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, feed.Items, 3)

	assert.Equal(t, &models.Coordinate{Latitude: 37.5665, Longitude: 126.978}, feed.Origin)

	first := feed.Items[0]
	assert.Equal(t, "을지로 책상", first.Title)
	assert.Equal(t, "30,000원", first.PriceLabel)
	assert.Equal(t, "wydm9", first.Geohash)
	assert.Equal(t, []string{}, first.Images)
	require.NotNil(t, first.DistanceKm)
	assert.InDelta(t, 1.025, *first.DistanceKm, 0.01)

	last := feed.Items[2]
	assert.Equal(t, "120,000원", last.PriceLabel)
	require.NotNil(t, last.DistanceKm)
	assert.InDelta(t, 325.1, *last.DistanceKm, 0.5)
}

func TestHomeService_Home_EmptyCatalog(t *testing.T) {
	mockCatalog := new(MockListingCatalog)
	mockLocations := new(MockLocationSource)
	service := NewHomeService(mockCatalog, mockLocations, HomeConfig{})

	mockCatalog.On("ListListings", mock.Anything).Return([]models.ListingItem{}, nil)
	mockLocations.On("GetLocation", mock.Anything, "userLocation").Return(`{"latitude":37.5665,"longitude":126.978}`, true, nil)

	feed, err := service.Home(context.Background(), "")
	require.NoError(t, err)

	assert.True(t, feed.Ranked)
	assert.Empty(t, feed.Items)
	assert.NotNil(t, feed.Items)
	assert.Nil(t, feed.NearestID)
}

func TestHomeService_Home_CatalogError(t *testing.T) {
	mockCatalog := new(MockListingCatalog)
	mockLocations := new(MockLocationSource)
	service := NewHomeService(mockCatalog, mockLocations, HomeConfig{})

	mockCatalog.On("ListListings", mock.Anything).Return([]models.ListingItem(nil), assert.AnError)

	feed, err := service.Home(context.Background(), "")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, feed)

	mockLocations.AssertNotCalled(t, "GetLocation", mock.Anything, mock.Anything)
}

func TestHomeService_Focus(t *testing.T) {
	tests := []struct {
		name          string
		offset        float64
		viewport      float64
		expected      *models.Focus
		expectedError error
	}{
		{
			name:     "first card",
			offset:   0,
			viewport: 400,
			expected: &models.Focus{Index: 0, InRange: true, ID: ptr(int64(2))},
		},
		{
			name:     "second card",
			offset:   330,
			viewport: 400,
			expected: &models.Focus{Index: 1, InRange: true, ID: ptr(int64(3))},
		},
		{
			name:     "past the last card",
			offset:   1000,
			viewport: 400,
			expected: &models.Focus{Index: 3, InRange: false},
		},
		{
			name:          "zero viewport",
			offset:        10,
			viewport:      0,
			expectedError: models.ErrInvalidViewport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCatalog := new(MockListingCatalog)
			mockLocations := new(MockLocationSource)
			service := NewHomeService(mockCatalog, mockLocations, HomeConfig{CardWidthFraction: 0.8})

			mockCatalog.On("ListListings", mock.Anything).Return(catalog, nil)
			mockLocations.On("GetLocation", mock.Anything, "userLocation").Return(`{"latitude":37.5665,"longitude":126.978}`, true, nil)

			focus, err := service.Focus(context.Background(), "", tt.offset, tt.viewport)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockCatalog.AssertNotCalled(t, "ListListings", mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, focus)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
