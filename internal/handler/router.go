package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the HTTP routes with their handlers.
func NewRouter(home *HomeHandler, location *LocationHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/home", home.Home)
	r.GET("/home/focus", home.Focus)
	r.PUT("/location", location.Save)
	r.DELETE("/location", location.Clear)
	r.GET("/tabs", Tabs)
	r.POST("/tabs/press", PressTab)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
