package dto

import "time"

type TopicInput struct {
	Name       string
	Difficulty float64
	Deadline   time.Time
}

type GenerateInput struct {
	Topics       []TopicInput
	DailyHours   int
	StartDate    time.Time
	Deadline     time.Time
	SyncCalendar bool
	Provider     string
}

type SessionOutput struct {
	Time        string `json:"time"`
	DurationMin int    `json:"duration_minutes"`
	Topic       string `json:"topic,omitempty"`
	Type        string `json:"type"`
}

type DayOutput struct {
	Label    string          `json:"label"`
	Date     time.Time       `json:"date"`
	Sessions []SessionOutput `json:"sessions"`
}

type SummaryOutput struct {
	TotalDays      int      `json:"total_days"`
	TotalSessions  int      `json:"total_sessions"`
	StudySessions  int      `json:"study_sessions"`
	TopicsCovered  []string `json:"topics_covered"`
	EstimatedHours int      `json:"estimated_hours"`
}

type PlanOutput struct {
	ID        string        `json:"id"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	Days      []DayOutput   `json:"days"`
	Summary   SummaryOutput `json:"summary"`
	NotePath  string        `json:"note_path,omitempty"`
}

// GenerateOutput is the structured result of one build. Failure is a value,
// not an error: Success false plus Reason, never a panic or a partial plan.
type GenerateOutput struct {
	Success bool        `json:"success"`
	Plan    *PlanOutput `json:"plan,omitempty"`
	Reason  string      `json:"reason,omitempty"`
	Synced  int         `json:"synced,omitempty"`
}

type PlanListItem struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	TotalDays int       `json:"total_days"`
	Topics    []string  `json:"topics"`
}
