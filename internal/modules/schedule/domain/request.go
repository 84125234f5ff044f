package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "studykit/internal/platform/errors"
)

const SchemaVersion = 1

// DefaultDifficulty is assumed for topics whose difficulty was never set.
const DefaultDifficulty = 0.5

type Topic struct {
	Name           string
	Difficulty     float64
	Deadline       time.Time
	EstimatedHours int
}

type StudyRequest struct {
	Topics       []Topic
	DailyHours   int
	StartDate    time.Time
	Deadline     time.Time
	SyncCalendar bool
}

func (t Topic) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: topic name is required", apperrors.ErrInvalidInput)
	}
	if t.Difficulty < 0 || t.Difficulty > 1 {
		return fmt.Errorf("%w: difficulty %.2f out of range 0..1", apperrors.ErrInvalidInput, t.Difficulty)
	}
	return nil
}

// HasDeadline reports whether the topic carries an explicit deadline.
func (t Topic) HasDeadline() bool {
	return !t.Deadline.IsZero()
}

func (r StudyRequest) Validate() error {
	if len(r.Topics) == 0 {
		return apperrors.ErrNoTopics
	}
	if r.DailyHours <= 0 {
		return fmt.Errorf("%w: daily hours must be positive", apperrors.ErrInvalidInput)
	}
	seen := map[string]struct{}{}
	for _, topic := range r.Topics {
		if err := topic.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(topic.Name)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: duplicate topic %q", apperrors.ErrInvalidInput, topic.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// AvailableDays derives the schedule span from the request deadline, clamped
// to [1, maxDays]. Requests without a deadline fall back to defaultDays.
// A past deadline still yields one day; the prioritizer already sorted those
// topics first.
func (r StudyRequest) AvailableDays(defaultDays, maxDays int) int {
	if r.Deadline.IsZero() {
		return defaultDays
	}
	days := int(r.Deadline.Sub(r.StartDate).Hours() / 24)
	if days < 1 {
		return 1
	}
	if days > maxDays {
		return maxDays
	}
	return days
}

// DifficultyIndex maps topic names to difficulty, substituting the default
// for unset values. The result is read-only for the rest of the build.
func DifficultyIndex(topics []Topic) map[string]float64 {
	index := make(map[string]float64, len(topics))
	for _, topic := range topics {
		d := topic.Difficulty
		if d == 0 {
			d = DefaultDifficulty
		}
		index[topic.Name] = d
	}
	return index
}
