package domain

import (
	"fmt"
	"time"
)

const blockMinutes = 120

// LayoutDays turns prioritized topics into timed focused-study sessions.
// Each day fills a morning and an afternoon block of up to two hours,
// assigning topics[idx] and topics[idx+1]; the index advances once per day
// after the afternoon slot. A day with at least an hour left after both
// blocks gets a mixed evening review sized by RecommendSessionLength. Days
// are extended past dayCount until every topic has at least one session.
func LayoutDays(topics []Topic, dayCount, dailyHours int, startDate time.Time, cfg Config) []Day {
	if len(topics) == 0 || dayCount < 1 || dailyHours < 1 {
		return nil
	}
	difficulty := DifficultyIndex(topics)
	days := make([]Day, 0, dayCount)
	covered := map[string]struct{}{}
	idx := 0
	// Coverage extension is bounded: every day advances idx, so at most
	// len(topics) days beyond dayCount are ever added.
	maxDays := dayCount + len(topics)
	for (len(days) < dayCount || len(covered) < len(topics)) && len(days) < maxDays {
		i := len(days)
		day := Day{Label: dayLabel(startDate, i), Date: startDate.AddDate(0, 0, i)}
		remaining := dailyHours * 60

		morning := topics[idx%len(topics)]
		if remaining >= cfg.SessionMinutes {
			dur := blockMinutes
			if dur > remaining {
				dur = remaining
			}
			day.Sessions = append(day.Sessions, Session{Time: cfg.MorningSlot, DurationMin: dur, Topic: morning.Name, Type: SessionFocusedStudy})
			covered[morning.Name] = struct{}{}
			remaining -= dur
		}
		if remaining >= cfg.SessionMinutes {
			afternoon := topics[(idx+1)%len(topics)]
			dur := blockMinutes
			if dur > remaining {
				dur = remaining
			}
			day.Sessions = append(day.Sessions, Session{Time: cfg.AfternoonSlot, DurationMin: dur, Topic: afternoon.Name, Type: SessionFocusedStudy})
			covered[afternoon.Name] = struct{}{}
			remaining -= dur
		}
		if remaining >= cfg.SessionMinutes {
			dur := RecommendSessionLength(cfg.SessionMinutes, averageDifficulty(day, difficulty), cfg.EveningSlot)
			if dur > remaining {
				dur = remaining
			}
			day.Sessions = append(day.Sessions, Session{Time: cfg.EveningSlot, DurationMin: dur, Type: SessionReview})
		}
		idx++
		days = append(days, day)
	}
	return days
}

func averageDifficulty(day Day, difficulty map[string]float64) float64 {
	total, count := 0.0, 0
	for _, session := range day.Sessions {
		if session.Topic == "" {
			continue
		}
		d, ok := difficulty[session.Topic]
		if !ok {
			d = DefaultDifficulty
		}
		total += d
		count++
	}
	if count == 0 {
		return DefaultDifficulty
	}
	return total / float64(count)
}

func dayLabel(startDate time.Time, index int) string {
	if startDate.IsZero() {
		return fmt.Sprintf("Day %d", index+1)
	}
	return startDate.AddDate(0, 0, index).Weekday().String()
}
