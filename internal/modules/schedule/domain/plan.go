package domain

import (
	"fmt"
	"time"
)

type SessionType string

const (
	SessionFocusedStudy SessionType = "focused_study"
	SessionReview       SessionType = "review"
	SessionBreak        SessionType = "break"
)

func (t SessionType) Validate() error {
	switch t {
	case SessionFocusedStudy, SessionReview, SessionBreak:
		return nil
	default:
		return fmt.Errorf("unknown session type %q", string(t))
	}
}

// IsStudy reports whether the session counts toward study time.
func (t SessionType) IsStudy() bool {
	return t == SessionFocusedStudy || t == SessionReview
}

// Session is a single scheduled block. Topic is empty for breaks and for the
// mixed evening review.
type Session struct {
	Time        string
	DurationMin int
	Topic       string
	Type        SessionType
}

type Day struct {
	Label    string
	Date     time.Time
	Sessions []Session
}

// Minutes is the total scheduled time of the day, breaks included.
func (d Day) Minutes() int {
	total := 0
	for _, s := range d.Sessions {
		total += s.DurationMin
	}
	return total
}

type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusArchived PlanStatus = "archived"
)

type Summary struct {
	TotalDays     int
	TotalSessions int
	StudySessions int
	TopicsCovered []string
	// EstimatedHours approximates study_sessions x 2; it is a stated
	// rough estimate, not a sum of durations.
	EstimatedHours int
}

type Plan struct {
	ID        string
	Days      []Day
	Status    PlanStatus
	CreatedAt time.Time
	Summary   Summary
}

// Summarize derives plan statistics. Topic order follows first appearance so
// repeated builds stay byte-identical.
func Summarize(days []Day) Summary {
	summary := Summary{TotalDays: len(days)}
	seen := map[string]struct{}{}
	for _, day := range days {
		for _, session := range day.Sessions {
			summary.TotalSessions++
			if !session.Type.IsStudy() {
				continue
			}
			summary.StudySessions++
			if session.Topic == "" {
				continue
			}
			if _, ok := seen[session.Topic]; ok {
				continue
			}
			seen[session.Topic] = struct{}{}
			summary.TopicsCovered = append(summary.TopicsCovered, session.Topic)
		}
	}
	summary.EstimatedHours = summary.StudySessions * 2
	return summary
}

func cloneDays(days []Day) []Day {
	out := make([]Day, len(days))
	for i, day := range days {
		out[i] = Day{Label: day.Label, Date: day.Date, Sessions: append([]Session(nil), day.Sessions...)}
	}
	return out
}
