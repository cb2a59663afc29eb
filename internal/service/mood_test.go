package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/hasinthainduwara/ClarityHub-Backend/internal/models"
)

// mockMoodRepository is an in-memory MoodRepository for testing
type mockMoodRepository struct {
	entries     map[string]*models.MoodEntry
	createCalls int
	failCreate  bool
}

func newMockMoodRepository() *mockMoodRepository {
	return &mockMoodRepository{
		entries: make(map[string]*models.MoodEntry),
	}
}

func (m *mockMoodRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	m.createCalls++
	if m.failCreate {
		return nil, errors.New("store unavailable")
	}
	copied := *entry
	m.entries[entry.ID] = &copied
	return &copied, nil
}

func (m *mockMoodRepository) GetByUserSince(ctx context.Context, userID string, since *time.Time, limit int) ([]models.MoodEntry, error) {
	var result []models.MoodEntry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if since != nil && e.Timestamp.Before(*since) {
			continue
		}
		result = append(result, *e)
	}
	// Newest first, matching the real repository's ordering
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockMoodRepository) GetRecent(ctx context.Context, userID string, limit int) ([]models.MoodEntry, error) {
	return m.GetByUserSince(ctx, userID, nil, limit)
}

func (m *mockMoodRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*models.MoodEntry, error) {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		return e, nil
	}
	return nil, nil
}

func (m *mockMoodRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		delete(m.entries, id)
	}
	return nil
}

func intPtr(i int) *int {
	return &i
}

func newTestMoodService(repo *mockMoodRepository, now time.Time) *moodService {
	return &moodService{
		moodRepo: repo,
		now:      func() time.Time { return now },
	}
}

func TestRecordMood_ValidScores(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	labels := map[int]string{
		-2: "VERY_SAD",
		-1: "SAD",
		0:  "NEUTRAL",
		1:  "HAPPY",
		2:  "VERY_HAPPY",
	}

	for score, label := range labels {
		repo := newMockMoodRepository()
		svc := newTestMoodService(repo, now)

		entry, err := svc.RecordMood(ctx, "user-1", &models.RecordMoodRequest{
			MoodScore: intPtr(score),
			MoodLabel: label,
		})
		if err != nil {
			t.Fatalf("RecordMood(%d, %s) failed: %v", score, label, err)
		}
		if entry.MoodScore != score {
			t.Errorf("expected score %d, got %d", score, entry.MoodScore)
		}
		if string(entry.MoodLabel) != label {
			t.Errorf("expected label %s, got %s", label, entry.MoodLabel)
		}
		if !entry.Timestamp.Equal(now) {
			t.Errorf("expected server-assigned timestamp %v, got %v", now, entry.Timestamp)
		}
		if entry.Source != models.SourceUserEntry {
			t.Errorf("expected default source USER_ENTRY, got %s", entry.Source)
		}

		// Recording then fetching history returns the entry
		history, err := svc.GetHistory(ctx, "user-1", "")
		if err != nil {
			t.Fatalf("GetHistory failed: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("expected 1 entry in history, got %d", len(history))
		}
	}
}

func TestRecordMood_InvalidScore(t *testing.T) {
	ctx := context.Background()
	repo := newMockMoodRepository()
	svc := newTestMoodService(repo, time.Now())

	_, err := svc.RecordMood(ctx, "user-1", &models.RecordMoodRequest{
		MoodScore: intPtr(3),
		MoodLabel: "HAPPY",
	})
	if !errors.Is(err, ErrInvalidMoodScore) {
		t.Fatalf("expected ErrInvalidMoodScore, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Error("invalid request must not reach the store")
	}
}

func TestRecordMood_InvalidLabel(t *testing.T) {
	ctx := context.Background()
	repo := newMockMoodRepository()
	svc := newTestMoodService(repo, time.Now())

	_, err := svc.RecordMood(ctx, "user-1", &models.RecordMoodRequest{
		MoodScore: intPtr(1),
		MoodLabel: "FURIOUS",
	})
	if !errors.Is(err, ErrInvalidMoodLabel) {
		t.Fatalf("expected ErrInvalidMoodLabel, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Error("invalid request must not reach the store")
	}
}

func TestRecordMood_InvalidSource(t *testing.T) {
	ctx := context.Background()
	svc := newTestMoodService(newMockMoodRepository(), time.Now())

	_, err := svc.RecordMood(ctx, "user-1", &models.RecordMoodRequest{
		MoodScore: intPtr(1),
		MoodLabel: "HAPPY",
		Source:    "TELEPATHY",
	})
	if !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
}

func TestRecordMood_NoteIsSanitizedAndHashed(t *testing.T) {
	ctx := context.Background()
	repo := newMockMoodRepository()
	svc := newTestMoodService(repo, time.Now())

	raw := "Call John Smith at 5551234567 or john@x.com"
	entry, err := svc.RecordMood(ctx, "user-1", &models.RecordMoodRequest{
		MoodScore: intPtr(0),
		MoodLabel: "NEUTRAL",
		Note:      raw,
	})
	if err != nil {
		t.Fatalf("RecordMood failed: %v", err)
	}

	if entry.NoteSummary == nil {
		t.Fatal("expected a note summary")
	}
	if *entry.NoteSummary == raw {
		t.Error("raw note must not be stored verbatim")
	}
	if entry.NoteHash == nil || *entry.NoteHash != NoteHash(raw) {
		t.Error("expected hash of the raw note to be stored")
	}
}

func TestRecordMood_EmptyNoteSkipsSanitization(t *testing.T) {
	ctx := context.Background()
	svc := newTestMoodService(newMockMoodRepository(), time.Now())

	entry, err := svc.RecordMood(ctx, "user-1", &models.RecordMoodRequest{
		MoodScore: intPtr(0),
		MoodLabel: "NEUTRAL",
		Note:      "   ",
	})
	if err != nil {
		t.Fatalf("RecordMood failed: %v", err)
	}
	if entry.NoteSummary != nil || entry.NoteHash != nil {
		t.Error("whitespace-only note should store neither summary nor hash")
	}
}

func TestRecordMood_StoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := newMockMoodRepository()
	repo.failCreate = true
	svc := newTestMoodService(repo, time.Now())

	_, err := svc.RecordMood(ctx, "user-1", &models.RecordMoodRequest{
		MoodScore: intPtr(1),
		MoodLabel: "HAPPY",
	})
	if err == nil {
		t.Fatal("expected store failure to propagate")
	}
	if len(repo.entries) != 0 {
		t.Error("failed insert must leave no partial state")
	}
}

func TestGetHistory_RangeFiltering(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockMoodRepository()
	svc := newTestMoodService(repo, now)

	// One recent entry, one outside the 7d window
	repo.entries["recent"] = &models.MoodEntry{
		ID: "recent", UserID: "user-1", MoodScore: 1, MoodLabel: models.MoodHappy,
		Timestamp: now.AddDate(0, 0, -2),
	}
	repo.entries["old"] = &models.MoodEntry{
		ID: "old", UserID: "user-1", MoodScore: -1, MoodLabel: models.MoodSad,
		Timestamp: now.AddDate(0, 0, -20),
	}

	history, err := svc.GetHistory(ctx, "user-1", "7d")
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(history) != 1 || history[0].ID != "recent" {
		t.Errorf("expected only the recent entry, got %d entries", len(history))
	}

	all, err := svc.GetHistory(ctx, "user-1", "all")
	if err != nil {
		t.Fatalf("GetHistory(all) failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 entries with range=all, got %d", len(all))
	}

	if _, err := svc.GetHistory(ctx, "user-1", "14d"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for unknown range, got %v", err)
	}
}

func TestDeleteEntry_OwnershipScoped(t *testing.T) {
	ctx := context.Background()
	repo := newMockMoodRepository()
	svc := newTestMoodService(repo, time.Now())

	repo.entries["e1"] = &models.MoodEntry{
		ID: "e1", UserID: "user-1", MoodScore: 1, MoodLabel: models.MoodHappy,
		Timestamp: time.Now(),
	}

	// Another user cannot delete it
	err := svc.DeleteEntry(ctx, "user-2", "e1")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for foreign entry, got %v", err)
	}
	if _, ok := repo.entries["e1"]; !ok {
		t.Fatal("foreign delete must leave the entry intact")
	}

	// The owner can
	if err := svc.DeleteEntry(ctx, "user-1", "e1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.entries["e1"]; ok {
		t.Error("entry should be gone after owner delete")
	}

	// Deleting a missing entry is NotFound
	if err := svc.DeleteEntry(ctx, "user-1", "nope"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound for missing entry, got %v", err)
	}
}

func TestExportEntries_Unbounded(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockMoodRepository()
	svc := newTestMoodService(repo, now)

	// Entries far outside any query range
	for i := 0; i < 3; i++ {
		id := string(rune('a' + i))
		repo.entries[id] = &models.MoodEntry{
			ID: id, UserID: "user-1", MoodScore: 1, MoodLabel: models.MoodHappy,
			Timestamp: now.AddDate(0, 0, -200*(i+1)),
		}
	}

	entries, exportedAt, err := svc.ExportEntries(ctx, "user-1")
	if err != nil {
		t.Fatalf("ExportEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected a full dump of 3 entries, got %d", len(entries))
	}
	if !exportedAt.Equal(now) {
		t.Errorf("expected exportedAt %v, got %v", now, exportedAt)
	}
}
