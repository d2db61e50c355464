package http

import (
	"github.com/gin-gonic/gin"

	"hybrid-command-router/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	commands := rg.Group("/commands")
	{
		commands.POST("", mw.RateLimit(), h.Process)
		commands.POST("/audio", mw.RateLimit(), h.ProcessAudio)
	}

	rg.GET("/statistics", h.Statistics)
	rg.GET("/state", h.State)
	rg.POST("/reset", h.Reset)
}
