package hhmm

import (
	"fmt"
	"time"
)

const layout = "15:04"

// Parse decodes a wall-clock "HH:MM" string.
func Parse(value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time of day %q: %w", value, err)
	}
	return t, nil
}

// Hour returns the hour component of an "HH:MM" string, or an error when the
// value does not parse.
func Hour(value string) (int, error) {
	t, err := Parse(value)
	if err != nil {
		return 0, err
	}
	return t.Hour(), nil
}

// AddMinutes shifts an "HH:MM" string forward. When the input cannot be
// parsed the original string is returned unchanged; callers that schedule
// best-effort blocks rely on that fallback instead of failing the build.
func AddMinutes(value string, minutes int) string {
	t, err := Parse(value)
	if err != nil {
		return value
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format(layout)
}
