package domain

import (
	"errors"
	"testing"

	apperrors "studykit/internal/platform/errors"
)

func TestDistributeEvenSplit(t *testing.T) {
	t.Parallel()
	topics := []Topic{{Name: "Calculus"}, {Name: "History"}}
	days, err := Distribute(topics, 7, 4)
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	budgets := HourBudgets(days)
	if budgets["Calculus"] != 14 || budgets["History"] != 14 {
		t.Fatalf("expected 14h each, got %v", budgets)
	}
	for i, day := range days {
		total := 0
		for _, alloc := range day {
			total += alloc.Hours
		}
		if total > 4 {
			t.Fatalf("day %d exceeds capacity: %dh", i, total)
		}
	}
}

func TestDistributeTopicSplitsAcrossDays(t *testing.T) {
	t.Parallel()
	days, err := Distribute([]Topic{{Name: "Go"}}, 3, 2)
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	// 6h budget in 2h days.
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, day := range days {
		if len(day) != 1 || day[0].Topic != "Go" || day[0].Hours != 2 {
			t.Fatalf("day %d unexpected allocations: %v", i, day)
		}
	}
}

func TestDistributeExtendsWhenTopicsOutnumberCapacity(t *testing.T) {
	t.Parallel()
	topics := []Topic{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}}
	days, err := Distribute(topics, 2, 1)
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	// 2h total capacity but 5 topics at 1h minimum each: span extends.
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	budgets := HourBudgets(days)
	for _, topic := range topics {
		if budgets[topic.Name] != 1 {
			t.Fatalf("expected 1h for %s, got %d", topic.Name, budgets[topic.Name])
		}
	}
}

func TestDistributeIntegerRounding(t *testing.T) {
	t.Parallel()
	topics := []Topic{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	days, err := Distribute(topics, 7, 1)
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	budgets := HourBudgets(days)
	// 7h / 3 topics rounds down to 2h each; the extra hour is not allocated.
	for _, topic := range topics {
		if budgets[topic.Name] != 2 {
			t.Fatalf("expected 2h for %s, got %d", topic.Name, budgets[topic.Name])
		}
	}
	if len(days) != 6 {
		t.Fatalf("expected 6 days, got %d", len(days))
	}
}

func TestDistributeRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	if _, err := Distribute(nil, 7, 4); !errors.Is(err, apperrors.ErrNoTopics) {
		t.Fatalf("expected ErrNoTopics, got %v", err)
	}
	if _, err := Distribute([]Topic{{Name: "A"}}, 0, 4); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for days, got %v", err)
	}
	if _, err := Distribute([]Topic{{Name: "A"}}, 7, 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for hours, got %v", err)
	}
}
