package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"listing-api/internal/models"

	"github.com/gin-gonic/gin"
)

// HomeHandler handles home screen requests
type HomeHandler struct {
	service HomeService
}

// HomeService interface for dependency injection
type HomeService interface {
	Home(ctx context.Context, device string) (*models.HomeFeed, error)
	Focus(ctx context.Context, device string, offsetX, viewportWidth float64) (*models.Focus, error)
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(svc HomeService) *HomeHandler {
	return &HomeHandler{service: svc}
}

// Home handles GET /home requests
//
//	@Summary	Listing cards ranked by distance from the saved device location
//	@Produce	json
//	@Param		device	query		string	false	"device id"
//	@Success	200		{object}	models.HomeFeed
//	@Failure	500		{object}	map[string]string
//	@Router		/home [get]
func (h *HomeHandler) Home(c *gin.Context) {
	feed, err := h.service.Home(c.Request.Context(), deviceID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, feed)
}

// Focus handles GET /home/focus requests
//
//	@Summary	Card focused at a carousel scroll offset
//	@Produce	json
//	@Param		offset		query		number	true	"horizontal scroll offset"
//	@Param		viewport	query		number	true	"viewport width"
//	@Param		device		query		string	false	"device id"
//	@Success	200			{object}	models.Focus
//	@Failure	400			{object}	map[string]string
//	@Router		/home/focus [get]
func (h *HomeHandler) Focus(c *gin.Context) {
	offsetStr := c.Query("offset")
	viewportStr := c.Query("viewport")

	if offsetStr == "" || viewportStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'offset' and 'viewport'"})
		return
	}

	offset, err := strconv.ParseFloat(offsetStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset format"})
		return
	}

	viewport, err := strconv.ParseFloat(viewportStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid viewport format"})
		return
	}

	focus, err := h.service.Focus(c.Request.Context(), deviceID(c), offset, viewport)
	if err != nil {
		if errors.Is(err, models.ErrInvalidViewport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "viewport must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, focus)
}

// deviceID reads the device from the query string, then the X-Device-ID header.
func deviceID(c *gin.Context) string {
	if d := c.Query("device"); d != "" {
		return d
	}
	return c.GetHeader("X-Device-ID")
}
