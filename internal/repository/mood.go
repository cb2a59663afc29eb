package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hasinthainduwara/ClarityHub-Backend/internal/models"
	"github.com/hasinthainduwara/ClarityHub-Backend/pkg/supabase"
)

const moodCollection = "mood_entries"

type moodRepository struct {
	client *supabase.Client
}

// NewMoodRepository creates a new mood entry repository
func NewMoodRepository(client *supabase.Client) MoodRepository {
	return &moodRepository{client: client}
}

func (r *moodRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	data := map[string]interface{}{
		"id":        entry.ID,
		"userId":    entry.UserID,
		"timestamp": entry.Timestamp.Format(time.RFC3339Nano),
		"moodScore": entry.MoodScore,
		"moodLabel": entry.MoodLabel,
		"source":    entry.Source,
		"createdAt": entry.CreatedAt.Format(time.RFC3339Nano),
	}

	if entry.NoteSummary != nil {
		data["noteSummary"] = *entry.NoteSummary
	}
	if entry.NoteHash != nil {
		data["noteHash"] = *entry.NoteHash
	}
	if len(entry.EmotionTags) > 0 {
		data["emotionTags"] = entry.EmotionTags
	}
	if len(entry.Metadata) > 0 {
		data["metadata"] = entry.Metadata
	}

	body, err := r.client.Insert(moodCollection, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no mood entry returned")
	}

	return &entries[0], nil
}

func (r *moodRepository) GetByUserSince(ctx context.Context, userID string, since *time.Time, limit int) ([]models.MoodEntry, error) {
	query := map[string]interface{}{
		"userId": fmt.Sprintf("eq.%s", userID),
		"select": "*",
		"order":  "timestamp.desc",
	}

	if since != nil {
		query["timestamp"] = fmt.Sprintf("gte.%s", since.Format(time.RFC3339))
	}
	if limit > 0 {
		query["limit"] = limit
	}

	body, err := r.client.Query(moodCollection, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *moodRepository) GetRecent(ctx context.Context, userID string, limit int) ([]models.MoodEntry, error) {
	return r.GetByUserSince(ctx, userID, nil, limit)
}

func (r *moodRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*models.MoodEntry, error) {
	query := map[string]interface{}{
		"id":     fmt.Sprintf("eq.%s", id),
		"userId": fmt.Sprintf("eq.%s", userID),
		"select": "*",
	}

	body, err := r.client.Query(moodCollection, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	return &entries[0], nil
}

func (r *moodRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	query := map[string]interface{}{
		"id":     fmt.Sprintf("eq.%s", id),
		"userId": fmt.Sprintf("eq.%s", userID),
	}

	if err := r.client.DeleteWhere(moodCollection, query); err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	return nil
}
