package domain

import "studykit/internal/platform/hhmm"

// InsertBreaks places a rest block after every study or review session that
// is not the last session of its day. The break starts intervalMinutes after
// the preceding session; when that start time cannot be computed the
// session's own time is reused rather than failing the build. A break is
// skipped when it would bust the daily cap or land at or past the next
// session's start, so days stay ordered and within budget. Breaks are never
// inserted after other breaks and can never end up last in a day.
func InsertBreaks(days []Day, dailyHours int, cfg Config) []Day {
	out := cloneDays(days)
	capMin := dailyHours * 60
	for i := range out {
		out[i].Sessions = insertDayBreaks(out[i].Sessions, capMin, cfg)
	}
	return out
}

func insertDayBreaks(sessions []Session, capMin int, cfg Config) []Session {
	used := 0
	for _, session := range sessions {
		used += session.DurationMin
	}
	result := make([]Session, 0, len(sessions)*2)
	for i, session := range sessions {
		result = append(result, session)
		if !session.Type.IsStudy() || i == len(sessions)-1 {
			continue
		}
		if used+cfg.BreakMinutes > capMin {
			continue
		}
		start := hhmm.AddMinutes(session.Time, cfg.BreakIntervalMinutes)
		if start >= sessions[i+1].Time && start != session.Time {
			continue
		}
		result = append(result, Session{Time: start, DurationMin: cfg.BreakMinutes, Type: SessionBreak})
		used += cfg.BreakMinutes
	}
	return result
}
