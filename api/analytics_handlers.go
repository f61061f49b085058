package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetAnalyticsHandler handles the request to get analytics data
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	dashboard, err := api.analytics.GetDashboardData()
	if err != nil {
		log.Printf("Failed to build analytics dashboard: %v", err)
		SendInternalError(c, "retrieve analytics data")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"service":      "guide-search",
		"index_loaded": api.engine.Loaded(),
		"timestamp":    fmt.Sprintf("%d", time.Now().Unix()),
	})
}
