package domain

import (
	"fmt"

	apperrors "studykit/internal/platform/errors"
)

// Allocation is a topic-hours chunk assigned to one day by Distribute.
type Allocation struct {
	Topic string
	Hours int
}

// Distribute spreads topic hour budgets across days. Each topic receives
// hours_per_topic = max(1, total_hours / len(topics)) and is consumed in
// priority order, filling the current day's remaining capacity before
// advancing. When topics outnumber the day capacity the schedule is extended
// instead of dropping topics, so the result may span more than availableDays.
//
// Integer division can under-allocate late topics by up to len(topics)-1
// hours in aggregate; that greedy rounding is deliberate.
func Distribute(topics []Topic, availableDays, dailyHours int) ([][]Allocation, error) {
	if len(topics) == 0 {
		return nil, apperrors.ErrNoTopics
	}
	if availableDays < 1 {
		return nil, fmt.Errorf("%w: available days must be at least 1", apperrors.ErrInvalidInput)
	}
	if dailyHours < 1 {
		return nil, fmt.Errorf("%w: daily hours must be at least 1", apperrors.ErrInvalidInput)
	}

	totalHours := availableDays * dailyHours
	hoursPerTopic := totalHours / len(topics)
	if hoursPerTopic < 1 {
		hoursPerTopic = 1
	}

	days := [][]Allocation{nil}
	current := 0
	remaining := dailyHours
	for _, topic := range topics {
		left := hoursPerTopic
		for left > 0 {
			take := left
			if take > remaining {
				take = remaining
			}
			days[current] = append(days[current], Allocation{Topic: topic.Name, Hours: take})
			left -= take
			remaining -= take
			if remaining == 0 {
				days = append(days, nil)
				current++
				remaining = dailyHours
			}
		}
	}
	if len(days[current]) == 0 {
		days = days[:current]
	}
	return days, nil
}

// HourBudgets sums the hours Distribute granted to each topic.
func HourBudgets(days [][]Allocation) map[string]int {
	budgets := map[string]int{}
	for _, day := range days {
		for _, alloc := range day {
			budgets[alloc.Topic] += alloc.Hours
		}
	}
	return budgets
}
