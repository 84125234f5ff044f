package domain

import (
	"testing"
	"time"
)

func TestLayoutDaysFillsMorningAndAfternoonBlocks(t *testing.T) {
	t.Parallel()
	topics := []Topic{{Name: "Calculus", Difficulty: 0.8}, {Name: "History", Difficulty: 0.4}}
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday

	days := LayoutDays(topics, 7, 4, start, DefaultConfig())
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	first := days[0]
	if first.Label != "Monday" {
		t.Fatalf("expected weekday label, got %q", first.Label)
	}
	if len(first.Sessions) != 2 {
		t.Fatalf("expected 2 sessions on a 4h day, got %d", len(first.Sessions))
	}
	if first.Sessions[0].Time != "09:00" || first.Sessions[0].Topic != "Calculus" || first.Sessions[0].DurationMin != 120 {
		t.Fatalf("unexpected morning session: %+v", first.Sessions[0])
	}
	if first.Sessions[1].Time != "14:00" || first.Sessions[1].Topic != "History" || first.Sessions[1].DurationMin != 120 {
		t.Fatalf("unexpected afternoon session: %+v", first.Sessions[1])
	}
	// Second day rotates to the next topic pair.
	second := days[1]
	if second.Sessions[0].Topic != "History" || second.Sessions[1].Topic != "Calculus" {
		t.Fatalf("expected rotation on day 2, got %+v", second.Sessions)
	}
}

func TestLayoutDaysAddsEveningReviewWhenCapacityRemains(t *testing.T) {
	t.Parallel()
	topics := []Topic{{Name: "Go", Difficulty: 0.5}}
	days := LayoutDays(topics, 3, 8, time.Time{}, DefaultConfig())
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0].Label != "Day 1" {
		t.Fatalf("expected generic label without start date, got %q", days[0].Label)
	}
	sessions := days[0].Sessions
	if len(sessions) != 3 {
		t.Fatalf("expected morning, afternoon, and evening review, got %d", len(sessions))
	}
	evening := sessions[2]
	if evening.Type != SessionReview || evening.Topic != "" || evening.Time != "19:00" {
		t.Fatalf("unexpected evening session: %+v", evening)
	}
	// 60 base * 0.9 evening taper.
	if evening.DurationMin != 54 {
		t.Fatalf("expected 54 minute review, got %d", evening.DurationMin)
	}
}

func TestLayoutDaysExtendsUntilEveryTopicAppears(t *testing.T) {
	t.Parallel()
	topics := []Topic{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}}
	days := LayoutDays(topics, 2, 4, time.Time{}, DefaultConfig())

	covered := map[string]bool{}
	for _, day := range days {
		for _, session := range day.Sessions {
			if session.Topic != "" {
				covered[session.Topic] = true
			}
		}
	}
	for _, topic := range topics {
		if !covered[topic.Name] {
			t.Fatalf("topic %s never scheduled", topic.Name)
		}
	}
	if len(days) < 2 {
		t.Fatalf("requested span was shortened to %d days", len(days))
	}
	if len(days) > 2+len(topics) {
		t.Fatalf("extension unbounded: %d days", len(days))
	}
}

func TestLayoutDaysShortDayUsesRemainingCapacity(t *testing.T) {
	t.Parallel()
	topics := []Topic{{Name: "Go"}}
	days := LayoutDays(topics, 1, 3, time.Time{}, DefaultConfig())
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	sessions := days[0].Sessions
	// 180 minutes: a full morning block, then a clipped afternoon block.
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].DurationMin != 120 || sessions[1].DurationMin != 60 {
		t.Fatalf("unexpected durations: %d, %d", sessions[0].DurationMin, sessions[1].DurationMin)
	}
	if days[0].Minutes() != 180 {
		t.Fatalf("day exceeds capacity: %d minutes", days[0].Minutes())
	}
}

func TestLayoutDaysEmptyInput(t *testing.T) {
	t.Parallel()
	if days := LayoutDays(nil, 7, 4, time.Time{}, DefaultConfig()); days != nil {
		t.Fatalf("expected nil for empty topics, got %v", days)
	}
}
