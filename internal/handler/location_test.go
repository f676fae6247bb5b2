package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"listing-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocationService is a mock implementation of the LocationService interface
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) SaveLocation(ctx context.Context, device string, loc models.Coordinate) error {
	args := m.Called(ctx, device, loc)
	return args.Error(0)
}

func (m *MockLocationService) ClearLocation(ctx context.Context, device string) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func TestLocationHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		target         string
		body           string
		callService    bool
		expectedDevice string
		expectedLoc    models.Coordinate
		mockError      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "stores location",
			target:         "/location?device=phone-1",
			body:           `{"latitude":37.5665,"longitude":126.978}`,
			callService:    true,
			expectedDevice: "phone-1",
			expectedLoc:    models.Coordinate{Latitude: 37.5665, Longitude: 126.978},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "zero coordinates are accepted",
			target:         "/location",
			body:           `{"latitude":0,"longitude":0}`,
			callService:    true,
			expectedLoc:    models.Coordinate{},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "missing longitude",
			target:         "/location",
			body:           `{"latitude":37.5}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "body must contain 'latitude' and 'longitude'",
		},
		{
			name:           "malformed body",
			target:         "/location",
			body:           `{"latitude":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "body must contain 'latitude' and 'longitude'",
		},
		{
			name:           "out of range",
			target:         "/location",
			body:           `{"latitude":100,"longitude":0}`,
			callService:    true,
			expectedLoc:    models.Coordinate{Latitude: 100},
			mockError:      fmt.Errorf("service: %w", models.ErrInvalidCoordinate),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "latitude must be within [-90, 90] and longitude within [-180, 180]",
		},
		{
			name:           "store failure",
			target:         "/location",
			body:           `{"latitude":1,"longitude":2}`,
			callService:    true,
			expectedLoc:    models.Coordinate{Latitude: 1, Longitude: 2},
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			handler := NewLocationHandler(mockSvc)

			if tt.callService {
				mockSvc.On("SaveLocation", mock.Anything, tt.expectedDevice, tt.expectedLoc).Return(tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPut, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Save(c)
			c.Writer.WriteHeaderNow() // flush status as gin's engine does after handlers

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			}

			if tt.callService {
				mockSvc.AssertExpectations(t)
			} else {
				mockSvc.AssertNotCalled(t, "SaveLocation", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestLocationHandler_Clear(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
	}{
		{name: "cleared", expectedStatus: http.StatusNoContent},
		{name: "store failure", mockError: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			handler := NewLocationHandler(mockSvc)
			mockSvc.On("ClearLocation", mock.Anything, "phone-1").Return(tt.mockError)

			req := httptest.NewRequest(http.MethodDelete, "/location?device=phone-1", nil)
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Clear(c)
			c.Writer.WriteHeaderNow() // flush status as gin's engine does after handlers

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}
