package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/hasinthainduwara/ClarityHub-Backend/internal/models"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/repository"
)

// dayFormat is the calendar-day bucket key for trend aggregation.
const dayFormat = "2006-01-02"

type analyticsService struct {
	moodRepo repository.MoodRepository
	now      func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(moodRepo repository.MoodRepository) AnalyticsService {
	return &analyticsService{
		moodRepo: moodRepo,
		now:      time.Now,
	}
}

func (s *analyticsService) GetTrends(ctx context.Context, userID, rangeStr string) ([]models.TrendPoint, error) {
	// Day-bucket aggregation over an unbounded window is disallowed.
	cutoff, err := resolveRange(rangeStr, Range7d, s.now(), false)
	if err != nil {
		return nil, err
	}

	entries, err := s.moodRepo.GetByUserSince(ctx, userID, cutoff, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries for trends: %w", err)
	}

	return computeTrends(entries), nil
}

func (s *analyticsService) GetStats(ctx context.Context, userID, rangeStr string) (*models.MoodStats, error) {
	now := s.now()
	cutoff, err := resolveRange(rangeStr, Range30d, now, true)
	if err != nil {
		return nil, err
	}

	entries, err := s.moodRepo.GetByUserSince(ctx, userID, cutoff, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries for stats: %w", err)
	}

	return computeStats(entries, now), nil
}

// computeTrends buckets entries by calendar day and reports per-day mean
// score and count, ordered ascending by date.
func computeTrends(entries []models.MoodEntry) []models.TrendPoint {
	type bucket struct {
		sum   int
		count int
	}
	buckets := make(map[string]*bucket)

	for _, e := range entries {
		day := e.Timestamp.UTC().Format(dayFormat)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.sum += e.MoodScore
		b.count++
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	points := make([]models.TrendPoint, 0, len(days))
	for _, day := range days {
		b := buckets[day]
		points = append(points, models.TrendPoint{
			Period:       day,
			AverageScore: round2(float64(b.sum) / float64(b.count)),
			Count:        b.count,
		})
	}

	return points
}

// computeStats aggregates a window of entries. Entries are expected newest
// first, which the streak calculation relies on.
func computeStats(entries []models.MoodEntry, now time.Time) *models.MoodStats {
	stats := &models.MoodStats{
		TotalEntries: len(entries),
		Distribution: make(map[models.MoodLabel]int, len(models.MoodLabels)),
	}

	// Zero-fill so every legal label appears in the response.
	for _, label := range models.MoodLabels {
		stats.Distribution[label] = 0
	}

	if len(entries) == 0 {
		stats.BestDay = models.BestDay{Date: now.UTC().Format(dayFormat), Score: 0}
		return stats
	}

	sum := 0
	best := entries[0]
	for _, e := range entries {
		sum += e.MoodScore
		stats.Distribution[e.MoodLabel]++
		// Strictly-greater comparison: first-seen max wins on ties.
		if e.MoodScore > best.MoodScore {
			best = e
		}
	}

	stats.AverageScore = round2(float64(sum) / float64(len(entries)))
	stats.BestDay = models.BestDay{
		Date:  best.Timestamp.UTC().Format(dayFormat),
		Score: best.MoodScore,
	}
	stats.CurrentStreak = currentStreak(entries, now)

	return stats
}

// currentStreak counts consecutive calendar days with an entry, ending
// today. Entries must be sorted newest first; the i-th entry extends the
// streak only while its day distance from now equals exactly i. A day with
// two entries breaks that alignment and truncates the streak early; that
// behavior is deliberate and covered by a test.
func currentStreak(entries []models.MoodEntry, now time.Time) int {
	streak := 0
	for i, e := range entries {
		if calendarDaysBetween(e.Timestamp, now) != i {
			break
		}
		streak++
	}
	return streak
}

// calendarDaysBetween returns the number of whole calendar days (UTC) from
// ts up to now.
func calendarDaysBetween(ts, now time.Time) int {
	a := truncateToDay(now.UTC())
	b := truncateToDay(ts.UTC())
	return int(a.Sub(b).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
