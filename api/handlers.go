package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/guide-search/config"
	"github.com/gcbaptista/guide-search/services"
)

// API holds dependencies for API handlers.
type API struct {
	engine    services.SearchEngine
	analytics services.AnalyticsProvider
	maxLimit  int
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.SearchEngine, analytics services.AnalyticsProvider, maxLimit int) *API {
	if maxLimit < 1 {
		maxLimit = config.DefaultMaxLimit
	}
	return &API{
		engine:    engine,
		analytics: analytics,
		maxLimit:  maxLimit,
	}
}

// SetupRoutes defines all the API routes for guide search.
func SetupRoutes(router *gin.Engine, engine services.SearchEngine, analytics services.AnalyticsProvider, serverConfig config.ServerConfig) *API {
	apiHandler := NewAPI(engine, analytics, serverConfig.MaxLimit)

	router.Use(RequestIDMiddleware(), CORSMiddleware())
	router.NoRoute(SendNotFoundError)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	if analytics != nil {
		router.GET("/analytics", apiHandler.GetAnalyticsHandler)
	}

	// Search routes; the site calls the /api/guide/search alias
	searchHandlers := []gin.HandlerFunc{apiHandler.SearchHandler}
	if serverConfig.RateLimit > 0 {
		limiter := NewIPRateLimiter(serverConfig.RateLimit, serverConfig.RateBurst)
		searchHandlers = append([]gin.HandlerFunc{RateLimitMiddleware(limiter)}, searchHandlers...)
	}
	router.GET("/search", searchHandlers...)
	router.GET("/api/guide/search", searchHandlers...)

	return apiHandler
}
