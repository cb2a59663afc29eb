package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hasinthainduwara/ClarityHub-Backend/internal/models"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/repository"
)

const (
	// insightWindow is the number of most recent entries insights look at.
	insightWindow = 30
	// minInsightEntries is the minimum sample size for any insight.
	minInsightEntries = 7

	// patternWindow is the number of most recent entries patterns look at.
	patternWindow = 90
	// minPatternEntries is the minimum sample size for any pattern.
	minPatternEntries = 14

	notEnoughInsightData = "Not enough data yet. Keep checking in for at least a week to unlock insights."
	notEnoughPatternData = "Not enough data yet. Patterns need at least two weeks of check-ins."
)

type insightService struct {
	moodRepo repository.MoodRepository
}

// NewInsightService creates a new insight service
func NewInsightService(moodRepo repository.MoodRepository) InsightService {
	return &insightService{moodRepo: moodRepo}
}

func (s *insightService) GetInsights(ctx context.Context, userID string) ([]models.Insight, string, error) {
	entries, err := s.moodRepo.GetRecent(ctx, userID, insightWindow)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get entries for insights: %w", err)
	}

	return generateInsights(entries)
}

func (s *insightService) GetPatterns(ctx context.Context, userID string) ([]models.Pattern, string, error) {
	entries, err := s.moodRepo.GetRecent(ctx, userID, patternWindow)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get entries for patterns: %w", err)
	}

	return detectPatterns(entries)
}

// windowSummary holds the sample statistics the insight rules are gated on.
type windowSummary struct {
	mean     float64
	variance float64
	n        int
}

func summarize(entries []models.MoodEntry) windowSummary {
	n := len(entries)
	if n == 0 {
		return windowSummary{}
	}

	sum := 0
	for _, e := range entries {
		sum += e.MoodScore
	}
	mean := float64(sum) / float64(n)

	// Population variance over the window.
	sq := 0.0
	for _, e := range entries {
		d := float64(e.MoodScore) - mean
		sq += d * d
	}

	return windowSummary{mean: mean, variance: sq / float64(n), n: n}
}

// insightRule is one row of the insight policy table. Rules are evaluated
// in order; at most one rule per group fires, and groups are independent
// of each other. Confidence is a fixed literal per rule, not a statistic.
type insightRule struct {
	group    string
	applies  func(w windowSummary) bool
	template models.Insight
}

var insightRules = []insightRule{
	{
		group:   "mean",
		applies: func(w windowSummary) bool { return w.mean < -0.5 },
		template: models.Insight{
			Type:        "lower_mood",
			Title:       "Lower mood pattern",
			Observation: "Your average mood has been on the lower side recently.",
			Suggestion:  "Consider reaching out to someone you trust, or try a small activity that usually helps you recharge.",
			Tone:        "gentle",
			Confidence:  0.7,
		},
	},
	{
		group:   "mean",
		applies: func(w windowSummary) bool { return w.mean > 0.5 },
		template: models.Insight{
			Type:        "positive_trend",
			Title:       "Positive mood trend",
			Observation: "Your recent check-ins show a positive overall mood.",
			Suggestion:  "Whatever you have been doing seems to be working. Keep it up.",
			Tone:        "encouraging",
			Confidence:  0.75,
		},
	},
	{
		group:   "variability",
		applies: func(w windowSummary) bool { return w.variance > 1.5 },
		template: models.Insight{
			Type:        "variability",
			Title:       "Variability noticed",
			Observation: "Your mood has varied quite a bit between check-ins.",
			Suggestion:  "A steady daily routine can sometimes help smooth out the swings.",
			Tone:        "neutral",
			Confidence:  0.65,
		},
	},
}

// generateInsights evaluates the insight rule table over the most recent
// entries. Returns an explanatory message instead of insights when the
// sample is too small.
func generateInsights(entries []models.MoodEntry) ([]models.Insight, string, error) {
	if len(entries) < minInsightEntries {
		return []models.Insight{}, notEnoughInsightData, nil
	}

	w := summarize(entries)

	insights := []models.Insight{}
	fired := make(map[string]bool)
	for _, rule := range insightRules {
		if fired[rule.group] || !rule.applies(w) {
			continue
		}
		fired[rule.group] = true

		insight := rule.template
		insight.DataPoints = w.n
		insights = append(insights, insight)
	}

	return insights, "", nil
}

// detectPatterns runs the weekday/weekend comparison and the two-window
// trend comparison over the most recent entries (newest first). Zero, one
// or two patterns may be returned.
func detectPatterns(entries []models.MoodEntry) ([]models.Pattern, string, error) {
	if len(entries) < minPatternEntries {
		return []models.Pattern{}, notEnoughPatternData, nil
	}

	patterns := []models.Pattern{}

	if p := weekdayWeekendPattern(entries); p != nil {
		patterns = append(patterns, *p)
	}
	if p := twoWindowTrendPattern(entries); p != nil {
		patterns = append(patterns, *p)
	}

	return patterns, "", nil
}

// weekdayWeekendPattern compares mean mood on weekdays against weekends.
// Requires more than 5 weekday and more than 2 weekend samples and a mean
// difference above 0.5.
func weekdayWeekendPattern(entries []models.MoodEntry) *models.Pattern {
	weekdaySum, weekdayCount := 0, 0
	weekendSum, weekendCount := 0, 0

	for _, e := range entries {
		switch e.Timestamp.UTC().Weekday() {
		case time.Saturday, time.Sunday:
			weekendSum += e.MoodScore
			weekendCount++
		default:
			weekdaySum += e.MoodScore
			weekdayCount++
		}
	}

	if weekdayCount <= 5 || weekendCount <= 2 {
		return nil
	}

	weekdayMean := float64(weekdaySum) / float64(weekdayCount)
	weekendMean := float64(weekendSum) / float64(weekendCount)
	diff := weekdayMean - weekendMean

	if math.Abs(diff) <= 0.5 {
		return nil
	}

	description := "Your mood tends to be lower on weekdays than on weekends."
	if diff > 0 {
		description = "Your mood tends to be higher on weekdays than on weekends."
	}

	return &models.Pattern{
		Type:        "time_of_week",
		Title:       "Weekday and weekend difference",
		Description: description,
		Confidence:  math.Min(math.Abs(diff)/2, 0.9),
	}
}

// twoWindowTrendPattern compares the mean of the 14 most recent entries
// against the mean of the 14 before them. Entries are pre-sorted newest
// first, so the split is positional, not by date.
func twoWindowTrendPattern(entries []models.MoodEntry) *models.Pattern {
	recent := entries[:min(14, len(entries))]

	older := []models.MoodEntry{}
	if len(entries) > 14 {
		older = entries[14:min(28, len(entries))]
	}
	if len(older) == 0 {
		return nil
	}

	recentMean := meanScore(recent)
	olderMean := meanScore(older)
	diff := recentMean - olderMean

	if math.Abs(diff) <= 0.5 {
		return nil
	}

	direction := "downward"
	description := "Your mood over the last two weeks is lower than the two weeks before."
	if diff > 0 {
		direction = "upward"
		description = "Your mood over the last two weeks is higher than the two weeks before."
	}

	return &models.Pattern{
		Type:        direction + "_trend",
		Title:       "Recent mood trend",
		Description: description,
		Confidence:  math.Min(math.Abs(diff)/2, 0.85),
	}
}

func meanScore(entries []models.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.MoodScore
	}
	return float64(sum) / float64(len(entries))
}
