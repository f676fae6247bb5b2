package repository

import (
	"testing"

	"listing-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPointEWKT(t *testing.T) {
	tests := []struct {
		name     string
		point    models.Coordinate
		expected string
	}{
		{
			name:     "full precision kept",
			point:    models.Coordinate{Latitude: 37.56651234567, Longitude: 126.97801234567},
			expected: "SRID=4326;POINT(126.97801234567 37.56651234567)",
		},
		{
			name:     "integers",
			point:    models.Coordinate{Latitude: -10, Longitude: 180},
			expected: "SRID=4326;POINT(180 -10)",
		},
		{
			name:     "tiny values are not written in exponent form",
			point:    models.Coordinate{Latitude: 0.0000001, Longitude: 0},
			expected: "SRID=4326;POINT(0 0.0000001)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pointEWKT(tt.point))
		})
	}
}
