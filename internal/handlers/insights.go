package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/apierror"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/logger"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/service"
)

type InsightHandler struct {
	insightService service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService service.InsightService) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
	}
}

// GetInsights handles GET /api/mood/insights
func (h *InsightHandler) GetInsights(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
		return
	}

	insights, message, err := h.insightService.GetInsights(c.Request.Context(), userID.(string))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to generate insights", logger.Err(err))
		apierror.Write(c, apierror.NewInternalError(requestID, err))
		return
	}

	resp := gin.H{
		"success": true,
		"data":    insights,
	}
	if message != "" {
		resp["message"] = message
	}

	c.JSON(http.StatusOK, resp)
}

// GetPatterns handles GET /api/mood/patterns
func (h *InsightHandler) GetPatterns(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
		return
	}

	patterns, message, err := h.insightService.GetPatterns(c.Request.Context(), userID.(string))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to detect patterns", logger.Err(err))
		apierror.Write(c, apierror.NewInternalError(requestID, err))
		return
	}

	resp := gin.H{
		"success": true,
		"data":    patterns,
	}
	if message != "" {
		resp["message"] = message
	}

	c.JSON(http.StatusOK, resp)
}
