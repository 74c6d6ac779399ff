package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	httpmw "github.com/storykeep/storykeep/internal/infrastructure/http/middleware"
	"github.com/storykeep/storykeep/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	storyHandler *StoryHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, storyHandler *StoryHandler) *Router {
	return &Router{
		cfg:          cfg,
		storyHandler: storyHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")
	v1.Use(httpmw.BearerAuth(rt.cfg.Server.DevToken))

	rt.setupStoryRoutes(v1)
}

// setupStoryRoutes configures story routes
func (rt *Router) setupStoryRoutes(g *echo.Group) {
	storyGroup := g.Group("/stories")

	storyGroup.GET("", rt.storyHandler.List)
	storyGroup.POST("", rt.storyHandler.Upload)
	storyGroup.GET("/:id", rt.storyHandler.Get)
	storyGroup.PUT("/:id", rt.storyHandler.Update)
	storyGroup.DELETE("/:id", rt.storyHandler.Delete)
	storyGroup.GET("/:id/status", rt.storyHandler.Status)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
