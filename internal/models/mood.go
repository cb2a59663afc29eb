package models

import "time"

// MoodLabel is the qualitative label attached to a check-in.
type MoodLabel string

const (
	MoodVerySad   MoodLabel = "VERY_SAD"
	MoodSad       MoodLabel = "SAD"
	MoodNeutral   MoodLabel = "NEUTRAL"
	MoodHappy     MoodLabel = "HAPPY"
	MoodVeryHappy MoodLabel = "VERY_HAPPY"
)

// MoodLabels lists every legal label in score order.
var MoodLabels = []MoodLabel{MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy}

// Valid reports whether the label is one of the five legal values.
func (l MoodLabel) Valid() bool {
	switch l {
	case MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy:
		return true
	}
	return false
}

// MoodSource identifies how a check-in was produced.
type MoodSource string

const (
	SourceUserEntry  MoodSource = "USER_ENTRY"
	SourceSessionEnd MoodSource = "SESSION_END"
	SourcePrompt     MoodSource = "PROMPT"
)

// Valid reports whether the source is one of the known values.
func (s MoodSource) Valid() bool {
	switch s {
	case SourceUserEntry, SourceSessionEnd, SourcePrompt:
		return true
	}
	return false
}

// ValidMoodScore reports whether score is in the legal {-2..2} set.
func ValidMoodScore(score int) bool {
	return score >= -2 && score <= 2
}

// MoodEntry is one mood check-in. Entries are immutable after creation;
// the only mutation is owner-scoped deletion.
//
// NoteHash is a digest of the raw note kept for a future dedup feature.
// It is stored but never returned to clients and never queried.
type MoodEntry struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"userId"`
	Timestamp   time.Time              `json:"timestamp"`
	MoodScore   int                    `json:"moodScore"`
	MoodLabel   MoodLabel              `json:"moodLabel"`
	NoteSummary *string                `json:"noteSummary,omitempty"`
	NoteHash    *string                `json:"-"`
	EmotionTags []string               `json:"emotionTags,omitempty"`
	Source      MoodSource             `json:"source"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// RecordMoodRequest is the body for POST /api/mood.
// MoodScore is a pointer because 0 is a legal score and must be
// distinguishable from an absent field.
type RecordMoodRequest struct {
	MoodScore   *int                   `json:"moodScore" binding:"required"`
	MoodLabel   string                 `json:"moodLabel" binding:"required"`
	Note        string                 `json:"note"`
	EmotionTags []string               `json:"emotionTags"`
	Source      string                 `json:"source"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// TrendPoint is one calendar-day bucket in the trends response.
type TrendPoint struct {
	Period       string  `json:"period"`
	AverageScore float64 `json:"averageScore"`
	Count        int     `json:"count"`
}

// BestDay reports the highest-scoring entry in a stats window.
type BestDay struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// MoodStats is the aggregate payload for GET /api/mood/stats.
type MoodStats struct {
	AverageScore  float64           `json:"averageScore"`
	TotalEntries  int               `json:"totalEntries"`
	BestDay       BestDay           `json:"bestDay"`
	CurrentStreak int               `json:"currentStreak"`
	Distribution  map[MoodLabel]int `json:"distribution"`
}

// Insight is a canned, threshold-gated observation about recent mood data.
// Confidence is a fixed per-rule literal, not a computed statistic.
type Insight struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Observation string  `json:"observation"`
	Suggestion  string  `json:"suggestion"`
	Tone        string  `json:"tone"`
	Confidence  float64 `json:"confidence"`
	DataPoints  int     `json:"dataPoints"`
}

// Pattern is a canned observation about a recurring structural feature
// (day-of-week effect, multi-week trend) in mood data.
type Pattern struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}
