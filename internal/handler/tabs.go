package handler

import (
	"net/http"
	"strconv"

	"listing-api/internal/tabbar"

	"github.com/gin-gonic/gin"
)

// Tabs handles GET /tabs requests
//
//	@Summary	Bottom tabs with icons for the active tab
//	@Produce	json
//	@Param		active	query	string	false	"active tab label"
//	@Success	200		{array}	tabbar.Item
//	@Router		/tabs [get]
func Tabs(c *gin.Context) {
	c.JSON(http.StatusOK, activeBar(c).Items())
}

type pressResponse struct {
	Navigate        bool          `json:"navigate"`
	Focused         string        `json:"focused"`
	Pulses          int           `json:"pulses"`
	PulseDurationMs int64         `json:"pulse_duration_ms"`
	PressedScale    float64       `json:"pressed_scale"`
	Items           []tabbar.Item `json:"items"`
}

// PressTab handles POST /tabs/press requests
//
//	@Summary	Apply a tap on a bottom tab
//	@Produce	json
//	@Param		active		query		string	false	"active tab label"
//	@Param		index		query		integer	true	"pressed tab index"
//	@Param		prevented	query		boolean	false	"press default was prevented"
//	@Success	200			{object}	pressResponse
//	@Failure	400			{object}	map[string]string
//	@Router		/tabs/press [post]
func PressTab(c *gin.Context) {
	indexStr := c.Query("index")
	if indexStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'index'"})
		return
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index format"})
		return
	}

	prevented := false
	if p := c.Query("prevented"); p != "" {
		prevented, err = strconv.ParseBool(p)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prevented format"})
			return
		}
	}

	bar := activeBar(c)
	navigate, err := bar.Press(index, prevented)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no tab at the given index"})
		return
	}

	c.JSON(http.StatusOK, pressResponse{
		Navigate:        navigate,
		Focused:         bar.Focused().Label(),
		Pulses:          bar.Pulses(index),
		PulseDurationMs: tabbar.PressDuration.Milliseconds(),
		PressedScale:    tabbar.PressScale(1),
		Items:           bar.Items(),
	})
}

func activeBar(c *gin.Context) *tabbar.Bar {
	bar := tabbar.NewBar()
	if active := c.Query("active"); active != "" {
		bar.Focus(tabbar.ParseTab(active))
	}
	return bar
}
