package dto

import "time"

type ParseOutput struct {
	Topics      []string  `json:"topics"`
	DailyHours  float64   `json:"daily_hours,omitempty"`
	Deadline    time.Time `json:"deadline,omitempty"`
	HasDeadline bool      `json:"has_deadline"`
}

type TopicProfile struct {
	Name           string  `json:"name"`
	Difficulty     float64 `json:"difficulty"`
	EstimatedHours int     `json:"estimated_hours"`
}

type SyllabusInput struct {
	Path      string `json:"path"`
	MaxTopics int    `json:"max_topics,omitempty"`
}

type SyllabusOutput struct {
	Topics []string `json:"topics"`
	Pages  int      `json:"pages"`
}
