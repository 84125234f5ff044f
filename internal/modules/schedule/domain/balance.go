package domain

import "studykit/internal/platform/hhmm"

// BalanceDays interleaves hard and easy sessions within each day to avoid
// clustering difficult work. Sessions partition into hard (difficulty > 0.7)
// and easy, each keeping its original relative order, then merge round-robin
// starting with hard; the leftover tail is appended unchanged. Sessions with
// no known difficulty count as easy. Start times stay attached to the day's
// slot sequence, not to the moved sessions; a day where some reordered
// session would run past the next slot's start keeps its original order.
func BalanceDays(days []Day, difficulty map[string]float64) []Day {
	out := cloneDays(days)
	for i := range out {
		out[i].Sessions = balanceDay(out[i].Sessions, difficulty)
	}
	return out
}

func balanceDay(sessions []Session, difficulty map[string]float64) []Session {
	if len(sessions) < 2 {
		return sessions
	}
	times := make([]string, len(sessions))
	for i, session := range sessions {
		times[i] = session.Time
	}

	var hard, easy []Session
	for _, session := range sessions {
		d, ok := difficulty[session.Topic]
		if !ok {
			d = DefaultDifficulty
		}
		if d > 0.7 {
			hard = append(hard, session)
		} else {
			easy = append(easy, session)
		}
	}

	merged := make([]Session, 0, len(sessions))
	for len(hard) > 0 || len(easy) > 0 {
		if len(hard) > 0 {
			merged = append(merged, hard[0])
			hard = hard[1:]
		}
		if len(easy) > 0 {
			merged = append(merged, easy[0])
			easy = easy[1:]
		}
	}
	for i := range merged {
		merged[i].Time = times[i]
	}
	if !slotsFit(merged) {
		return sessions
	}
	return merged
}

// slotsFit reports whether every session ends by the following slot's start.
// Durations travel with the reordered sessions while start times stay pinned
// to the slots, so a long block landing on a late slot can spill into the
// session after it.
func slotsFit(sessions []Session) bool {
	for i := 0; i < len(sessions)-1; i++ {
		end := hhmm.AddMinutes(sessions[i].Time, sessions[i].DurationMin)
		if end < sessions[i].Time || end > sessions[i+1].Time {
			return false
		}
	}
	return true
}
