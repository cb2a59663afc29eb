package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/models"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/repository"
)

// historyLimit caps the number of entries a history query returns.
const historyLimit = 1000

type moodService struct {
	moodRepo repository.MoodRepository
	now      func() time.Time
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo repository.MoodRepository) MoodService {
	return &moodService{
		moodRepo: moodRepo,
		now:      time.Now,
	}
}

func (s *moodService) RecordMood(ctx context.Context, userID string, req *models.RecordMoodRequest) (*models.MoodEntry, error) {
	if req.MoodScore == nil || !models.ValidMoodScore(*req.MoodScore) {
		return nil, ErrInvalidMoodScore
	}

	label := models.MoodLabel(req.MoodLabel)
	if !label.Valid() {
		return nil, ErrInvalidMoodLabel
	}

	source := models.SourceUserEntry
	if req.Source != "" {
		source = models.MoodSource(req.Source)
		if !source.Valid() {
			return nil, ErrInvalidSource
		}
	}

	now := s.now()
	entry := &models.MoodEntry{
		ID:          uuid.New().String(),
		UserID:      userID,
		Timestamp:   now,
		MoodScore:   *req.MoodScore,
		MoodLabel:   label,
		EmotionTags: req.EmotionTags,
		Source:      source,
		Metadata:    req.Metadata,
		CreatedAt:   now,
	}

	// Notes are never stored raw: the summary is redacted and the hash is
	// computed over the normalized original.
	if note := strings.TrimSpace(req.Note); note != "" {
		summary := SanitizeNote(note)
		hash := NoteHash(req.Note)
		entry.NoteSummary = &summary
		entry.NoteHash = &hash
	}

	created, err := s.moodRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to record mood: %w", err)
	}

	return created, nil
}

func (s *moodService) GetHistory(ctx context.Context, userID, rangeStr string) ([]models.MoodEntry, error) {
	cutoff, err := resolveRange(rangeStr, Range7d, s.now(), true)
	if err != nil {
		return nil, err
	}

	entries, err := s.moodRepo.GetByUserSince(ctx, userID, cutoff, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood history: %w", err)
	}

	return entries, nil
}

func (s *moodService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	// Ownership check doubles as the existence check: an entry belonging
	// to another user is indistinguishable from a missing one.
	entry, err := s.moodRepo.GetByIDAndUser(ctx, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to look up mood entry: %w", err)
	}
	if entry == nil {
		return ErrEntryNotFound
	}

	if err := s.moodRepo.DeleteByIDAndUser(ctx, entryID, userID); err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}

	return nil
}

func (s *moodService) ExportEntries(ctx context.Context, userID string) ([]models.MoodEntry, time.Time, error) {
	// Full dump: no range filter, no record cap.
	entries, err := s.moodRepo.GetByUserSince(ctx, userID, nil, 0)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to export mood entries: %w", err)
	}

	return entries, s.now(), nil
}
