package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/apierror"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetTrends handles GET /api/mood/trends
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
		return
	}

	trends, err := h.analyticsService.GetTrends(c.Request.Context(), userID.(string), c.Query("range"))
	if err != nil {
		writeRangeOrInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    trends,
	})
}

// GetStats handles GET /api/mood/stats
func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
		return
	}

	stats, err := h.analyticsService.GetStats(c.Request.Context(), userID.(string), c.Query("range"))
	if err != nil {
		writeRangeOrInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
