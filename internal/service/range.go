package service

import "time"

// Lookback ranges accepted by the history, trends and stats queries.
const (
	Range7d  = "7d"
	Range30d = "30d"
	Range90d = "90d"
	RangeAll = "all"
)

// resolveRange turns a range string into a lower-bound cutoff relative to
// now. A nil cutoff means unbounded ("all"). An empty string resolves to
// the given default. allowUnbounded is false for day-bucketed aggregation,
// where an unbounded window is disallowed.
func resolveRange(rangeStr, defaultRange string, now time.Time, allowUnbounded bool) (*time.Time, error) {
	if rangeStr == "" {
		rangeStr = defaultRange
	}

	var days int
	switch rangeStr {
	case Range7d:
		days = 7
	case Range30d:
		days = 30
	case Range90d:
		days = 90
	case RangeAll:
		if !allowUnbounded {
			return nil, ErrUnboundedRange
		}
		return nil, nil
	default:
		return nil, ErrInvalidRange
	}

	cutoff := now.AddDate(0, 0, -days)
	return &cutoff, nil
}
