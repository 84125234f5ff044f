package domain

import "studykit/internal/platform/hhmm"

// RecommendSessionLength suggests a session duration in minutes. Hard topics
// (difficulty > 0.7) get shorter blocks, easy ones (< 0.3) longer. Morning
// hours stretch the block slightly, evening hours shrink it; an unparsable
// time of day leaves the difficulty-adjusted base untouched rather than
// failing.
func RecommendSessionLength(baseMinutes int, difficulty float64, timeOfDay string) int {
	length := baseMinutes
	switch {
	case difficulty > 0.7:
		length = baseMinutes * 3 / 4
	case difficulty < 0.3:
		length = baseMinutes * 3 / 2
	}
	hour, err := hhmm.Hour(timeOfDay)
	if err != nil {
		return length
	}
	switch {
	case hour >= 6 && hour < 12:
		return int(float64(length) * 1.1)
	case hour >= 18 && hour < 22:
		return int(float64(length) * 0.9)
	default:
		return length
	}
}
