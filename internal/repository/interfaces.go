package repository

import (
	"context"
	"time"

	"github.com/hasinthainduwara/ClarityHub-Backend/internal/models"
)

// MoodRepository defines the interface for mood entry data access.
// The backing collection is append-mostly with point deletes; all reads
// are filtered by owner.
type MoodRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	// GetByUserSince returns entries with timestamp >= since, newest first.
	// A nil since means no lower bound; limit <= 0 means no cap.
	GetByUserSince(ctx context.Context, userID string, since *time.Time, limit int) ([]models.MoodEntry, error)
	// GetRecent returns the user's most recent entries, newest first.
	GetRecent(ctx context.Context, userID string, limit int) ([]models.MoodEntry, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*models.MoodEntry, error)
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}
