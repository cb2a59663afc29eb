package service

import (
	"context"
	"time"

	"github.com/hasinthainduwara/ClarityHub-Backend/internal/models"
)

// MoodService defines the interface for mood entry business logic
type MoodService interface {
	RecordMood(ctx context.Context, userID string, req *models.RecordMoodRequest) (*models.MoodEntry, error)
	GetHistory(ctx context.Context, userID, rangeStr string) ([]models.MoodEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
	ExportEntries(ctx context.Context, userID string) ([]models.MoodEntry, time.Time, error)
}

// AnalyticsService defines the interface for windowed mood aggregation
type AnalyticsService interface {
	GetTrends(ctx context.Context, userID, rangeStr string) ([]models.TrendPoint, error)
	GetStats(ctx context.Context, userID, rangeStr string) (*models.MoodStats, error)
}

// InsightService defines the interface for threshold-gated insight and
// pattern generation. The message return is non-empty when there is not
// enough data and the result list is empty.
type InsightService interface {
	GetInsights(ctx context.Context, userID string) ([]models.Insight, string, error)
	GetPatterns(ctx context.Context, userID string) ([]models.Pattern, string, error)
}
