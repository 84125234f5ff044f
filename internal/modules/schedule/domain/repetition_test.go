package domain

import "testing"

func studyDay(label string, sessions ...Session) Day {
	return Day{Label: label, Sessions: sessions}
}

func TestInjectReviewsAtSpacedOffsets(t *testing.T) {
	t.Parallel()
	days := make([]Day, 8)
	days[0] = studyDay("Day 1", Session{Time: "09:00", DurationMin: 120, Topic: "Go", Type: SessionFocusedStudy})
	topics := []Topic{{Name: "Go"}}

	got := InjectReviews(days, topics, 8, DefaultConfig())
	for _, idx := range []int{1, 3, 7} {
		sessions := got[idx].Sessions
		if len(sessions) != 1 {
			t.Fatalf("day %d: expected injected review, got %d sessions", idx, len(sessions))
		}
		review := sessions[0]
		if review.Type != SessionReview || review.Topic != "Go" || review.Time != "20:00" || review.DurationMin != 30 {
			t.Fatalf("day %d: unexpected review %+v", idx, review)
		}
	}
	for _, idx := range []int{2, 4, 5, 6} {
		if len(got[idx].Sessions) != 0 {
			t.Fatalf("day %d: unexpected sessions %v", idx, got[idx].Sessions)
		}
	}
}

func TestInjectReviewsSkipsFullDays(t *testing.T) {
	t.Parallel()
	days := make([]Day, 4)
	days[0] = studyDay("Day 1", Session{Time: "09:00", DurationMin: 60, Topic: "Go", Type: SessionFocusedStudy})
	// Day 2 is already at the 2h cap.
	days[1] = studyDay("Day 2", Session{Time: "09:00", DurationMin: 120, Topic: "Go", Type: SessionFocusedStudy})

	got := InjectReviews(days, []Topic{{Name: "Go"}}, 2, DefaultConfig())
	if len(got[1].Sessions) != 1 {
		t.Fatalf("full day received a review: %v", got[1].Sessions)
	}
	if len(got[3].Sessions) != 1 || got[3].Sessions[0].Topic != "Go" {
		t.Fatalf("expected review on day 4, got %v", got[3].Sessions)
	}
}

func TestInjectReviewsClipsOffsetsPastScheduleEnd(t *testing.T) {
	t.Parallel()
	days := make([]Day, 3)
	days[0] = studyDay("Day 1", Session{Time: "09:00", DurationMin: 60, Topic: "Go", Type: SessionFocusedStudy})

	got := InjectReviews(days, []Topic{{Name: "Go"}}, 8, DefaultConfig())
	if len(got) != 3 {
		t.Fatalf("schedule length changed: %d", len(got))
	}
	if len(got[1].Sessions) != 1 {
		t.Fatalf("expected review on day 2, got %v", got[1].Sessions)
	}
	if len(got[2].Sessions) != 0 {
		t.Fatalf("offsets 3 and 7 should be clipped, got %v", got[2].Sessions)
	}
}

func TestInjectReviewsStackAfterEarlierSessions(t *testing.T) {
	t.Parallel()
	days := make([]Day, 2)
	days[0] = studyDay("Day 1",
		Session{Time: "09:00", DurationMin: 120, Topic: "Go", Type: SessionFocusedStudy},
		Session{Time: "14:00", DurationMin: 120, Topic: "Rust", Type: SessionFocusedStudy},
	)
	days[1] = studyDay("Day 2", Session{Time: "19:00", DurationMin: 90, Type: SessionReview})

	got := InjectReviews(days, []Topic{{Name: "Go"}, {Name: "Rust"}}, 8, DefaultConfig())
	sessions := got[1].Sessions
	if len(sessions) != 3 {
		t.Fatalf("expected evening review plus two spaced reviews, got %v", sessions)
	}
	// The 19:00 block runs to 20:30; the reviews queue behind it instead of
	// both claiming the 20:00 slot.
	if sessions[1].Topic != "Go" || sessions[1].Time != "20:30" {
		t.Fatalf("unexpected first review: %+v", sessions[1])
	}
	if sessions[2].Topic != "Rust" || sessions[2].Time != "21:00" {
		t.Fatalf("unexpected second review: %+v", sessions[2])
	}
}

func TestInjectReviewsIgnoresUnscheduledTopics(t *testing.T) {
	t.Parallel()
	days := make([]Day, 3)
	days[0] = studyDay("Day 1", Session{Time: "09:00", DurationMin: 60, Topic: "Go", Type: SessionFocusedStudy})

	got := InjectReviews(days, []Topic{{Name: "Go"}, {Name: "Rust"}}, 8, DefaultConfig())
	for _, day := range got {
		for _, session := range day.Sessions {
			if session.Topic == "Rust" {
				t.Fatalf("review injected for a topic never studied")
			}
		}
	}
}

func TestInjectReviewsDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	days := make([]Day, 2)
	days[0] = studyDay("Day 1", Session{Time: "09:00", DurationMin: 60, Topic: "Go", Type: SessionFocusedStudy})

	_ = InjectReviews(days, []Topic{{Name: "Go"}}, 8, DefaultConfig())
	if len(days[1].Sessions) != 0 {
		t.Fatalf("input days were mutated: %v", days[1].Sessions)
	}
}
