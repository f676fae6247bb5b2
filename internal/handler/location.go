package handler

import (
	"context"
	"errors"
	"net/http"

	"listing-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles last-known location updates
type LocationHandler struct {
	service LocationService
}

// LocationService interface for dependency injection
type LocationService interface {
	SaveLocation(ctx context.Context, device string, loc models.Coordinate) error
	ClearLocation(ctx context.Context, device string) error
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// Save handles PUT /location requests
//
//	@Summary	Store the device's last-known location
//	@Accept		json
//	@Param		device	query	string				false	"device id"
//	@Param		body	body	models.Coordinate	true	"location"
//	@Success	204
//	@Failure	400	{object}	map[string]string
//	@Router		/location [put]
func (h *LocationHandler) Save(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must contain 'latitude' and 'longitude'"})
		return
	}

	loc := models.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := h.service.SaveLocation(c.Request.Context(), deviceID(c), loc); err != nil {
		if errors.Is(err, models.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "latitude must be within [-90, 90] and longitude within [-180, 180]"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /location requests
//
//	@Summary	Forget the device's last-known location
//	@Param		device	query	string	false	"device id"
//	@Success	204
//	@Router		/location [delete]
func (h *LocationHandler) Clear(c *gin.Context) {
	if err := h.service.ClearLocation(c.Request.Context(), deviceID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
