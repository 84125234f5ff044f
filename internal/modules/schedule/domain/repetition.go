package domain

import "studykit/internal/platform/hhmm"

// InjectReviews appends spaced-repetition sessions: for every topic, a
// 30-minute review at the configured evening slot on day offsets 1, 3, and 7
// after the topic's first study appearance. A review never starts before the
// end of the day's current last session, so several reviews landing on the
// same day stack in time order instead of sharing the slot. Offsets beyond
// the schedule are clipped; a target day without enough capacity left under
// the daily cap is skipped so the cap invariant survives. The caller (the
// builder state machine) guarantees this runs exactly once per build.
func InjectReviews(days []Day, topics []Topic, dailyHours int, cfg Config) []Day {
	out := cloneDays(days)
	first := firstAppearance(out)
	capMin := dailyHours * 60
	for _, topic := range topics {
		firstIdx, ok := first[topic.Name]
		if !ok {
			continue
		}
		for _, offset := range cfg.ReviewOffsets {
			target := firstIdx + offset
			if target >= len(out) {
				continue
			}
			if out[target].Minutes()+cfg.ReviewMinutes > capMin {
				continue
			}
			start := cfg.ReviewSlot
			if n := len(out[target].Sessions); n > 0 {
				last := out[target].Sessions[n-1]
				if end := hhmm.AddMinutes(last.Time, last.DurationMin); end > start {
					start = end
				}
			}
			out[target].Sessions = append(out[target].Sessions, Session{
				Time:        start,
				DurationMin: cfg.ReviewMinutes,
				Topic:       topic.Name,
				Type:        SessionReview,
			})
		}
	}
	return out
}

// firstAppearance records the day index of each topic's earliest study or
// review session. Iteration over topics happens in slice order elsewhere, so
// map access here never affects output ordering.
func firstAppearance(days []Day) map[string]int {
	first := map[string]int{}
	for i, day := range days {
		for _, session := range day.Sessions {
			if !session.Type.IsStudy() || session.Topic == "" {
				continue
			}
			if _, ok := first[session.Topic]; !ok {
				first[session.Topic] = i
			}
		}
	}
	return first
}
