package service

import "errors"

// Validation and lookup errors surfaced to handlers, which map them onto
// the apierror taxonomy.
var (
	ErrInvalidMoodScore = errors.New("moodScore must be one of -2, -1, 0, 1, 2")
	ErrInvalidMoodLabel = errors.New("moodLabel must be one of VERY_SAD, SAD, NEUTRAL, HAPPY, VERY_HAPPY")
	ErrInvalidSource    = errors.New("source must be one of USER_ENTRY, SESSION_END, PROMPT")
	ErrInvalidRange     = errors.New("range must be one of 7d, 30d, 90d, all")
	ErrUnboundedRange   = errors.New("range 'all' is not supported for this query")
	ErrEntryNotFound    = errors.New("mood entry not found")
)
