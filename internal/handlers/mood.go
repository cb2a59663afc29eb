package handlers

import (
	"errors"
	"net/http"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/apierror"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/logger"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/models"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/service"
)

type MoodHandler struct {
	moodService service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// RecordMood handles POST /api/mood
func (h *MoodHandler) RecordMood(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
		return
	}

	var req models.RecordMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fieldErrors := make([]apierror.FieldError, 0, len(verrs))
			for _, verr := range verrs {
				fieldErrors = append(fieldErrors, apierror.FieldError{
					Field:   jsonFieldName(verr.Field()),
					Message: "is required",
					Code:    "required",
				})
			}
			apierror.Write(c, apierror.NewValidationError(requestID, fieldErrors))
			return
		}

		// JSON syntax error (not field-level)
		apierror.Write(c, apierror.NewInvalidArgumentError(requestID, "Invalid JSON format"))
		return
	}

	entry, err := h.moodService.RecordMood(c.Request.Context(), userID.(string), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)

		if fieldErr, ok := recordFieldError(err); ok {
			apierror.Write(c, apierror.NewValidationError(requestID, []apierror.FieldError{fieldErr}))
			return
		}

		logger.Ctx(c.Request.Context()).Error("failed to record mood", logger.Err(err))
		apierror.Write(c, apierror.NewInternalError(requestID, err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    entry,
	})
}

// GetHistory handles GET /api/mood/history
func (h *MoodHandler) GetHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
		return
	}

	entries, err := h.moodService.GetHistory(c.Request.Context(), userID.(string), c.Query("range"))
	if err != nil {
		writeRangeOrInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entries,
	})
}

// DeleteEntry handles DELETE /api/mood/:id
func (h *MoodHandler) DeleteEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
		return
	}

	entryID := c.Param("id")

	if err := h.moodService.DeleteEntry(c.Request.Context(), userID.(string), entryID); err != nil {
		requestID := apierror.GetRequestID(c)

		if errors.Is(err, service.ErrEntryNotFound) {
			apierror.Write(c, apierror.NewNotFoundError(requestID, "Mood entry", entryID))
			return
		}

		logger.Ctx(c.Request.Context()).Error("failed to delete mood entry", logger.Err(err))
		apierror.Write(c, apierror.NewInternalError(requestID, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Mood entry deleted",
	})
}

// ExportEntries handles GET /api/mood/export
func (h *MoodHandler) ExportEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
		return
	}

	entries, exportedAt, err := h.moodService.ExportEntries(c.Request.Context(), userID.(string))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to export mood entries", logger.Err(err))
		apierror.Write(c, apierror.NewInternalError(requestID, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         entries,
		"exportedAt":   exportedAt.UTC().Format(time.RFC3339),
		"totalEntries": len(entries),
	})
}

// recordFieldError maps a service validation error onto the field that
// caused it.
func recordFieldError(err error) (apierror.FieldError, bool) {
	switch {
	case errors.Is(err, service.ErrInvalidMoodScore):
		return apierror.FieldError{Field: "moodScore", Message: err.Error(), Code: "out_of_range"}, true
	case errors.Is(err, service.ErrInvalidMoodLabel):
		return apierror.FieldError{Field: "moodLabel", Message: err.Error(), Code: "out_of_range"}, true
	case errors.Is(err, service.ErrInvalidSource):
		return apierror.FieldError{Field: "source", Message: err.Error(), Code: "out_of_range"}, true
	}
	return apierror.FieldError{}, false
}

// writeRangeOrInternalError maps range validation errors to 400 and
// everything else to 500.
func writeRangeOrInternalError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)

	if errors.Is(err, service.ErrInvalidRange) || errors.Is(err, service.ErrUnboundedRange) {
		apierror.Write(c, apierror.NewInvalidArgumentError(requestID, err.Error()))
		return
	}

	logger.Ctx(c.Request.Context()).Error("mood query failed", logger.Err(err))
	apierror.Write(c, apierror.NewInternalError(requestID, err))
}

// jsonFieldName converts a Go struct field name to its JSON counterpart
// (lower camel case).
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
