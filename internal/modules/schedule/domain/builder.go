package domain

import (
	"fmt"
	"time"

	apperrors "studykit/internal/platform/errors"
)

type BuildState string

const (
	StateRequestParsed  BuildState = "request_parsed"
	StateAllocated      BuildState = "allocated"
	StateReviewInjected BuildState = "review_injected"
	StateBalanced       BuildState = "balanced"
	StateBreaksAdded    BuildState = "breaks_added"
	StateFinalized      BuildState = "finalized"
	StateFailed         BuildState = "failed"
)

// Builder sequences the scheduling pipeline:
//
//	RequestParsed -> Allocated -> ReviewInjected -> Balanced -> BreaksAdded -> Finalized
//
// Every transition validates the prior state, so invoking a stage twice (or
// out of order) fails loudly instead of silently duplicating work. Failed is
// terminal and reachable from anywhere. The underlying stages are pure
// functions; the builder only carries intermediate output between them.
type Builder struct {
	cfg        Config
	state      BuildState
	reason     string
	topics     []Topic
	dailyHours int
	startDate  time.Time
	dayCount   int
	days       []Day
	budgets    map[string]int
	difficulty map[string]float64
}

// NewBuilder validates the request and prioritizes its topics. Invalid input
// leaves the builder in the Failed state; Finalize then reports the reason.
func NewBuilder(request StudyRequest, now time.Time, cfg Config) *Builder {
	b := &Builder{cfg: cfg}
	if err := request.Validate(); err != nil {
		return b.fail(err)
	}
	b.dailyHours = request.DailyHours
	if b.dailyHours > cfg.MaxDailyHours {
		b.dailyHours = cfg.MaxDailyHours
	}
	b.startDate = request.StartDate
	if b.startDate.IsZero() {
		b.startDate = now.Truncate(24 * time.Hour)
	}
	b.topics = Prioritize(request.Topics, now)
	b.difficulty = DifficultyIndex(b.topics)

	availableDays := request.AvailableDays(cfg.DefaultPlanDays, cfg.MaxPlanDays)
	allocations, err := Distribute(b.topics, availableDays, b.dailyHours)
	if err != nil {
		return b.fail(err)
	}
	b.budgets = HourBudgets(allocations)
	for i := range b.topics {
		b.topics[i].EstimatedHours = b.budgets[b.topics[i].Name]
	}
	// The hour-budget distribution fixes the schedule span; coverage
	// extension in LayoutDays may still lengthen it.
	b.state = StateRequestParsed
	b.dayCount = len(allocations)
	if b.dayCount < availableDays {
		b.dayCount = availableDays
	}
	return b
}

func (b *Builder) Allocate() error {
	if err := b.requireState(StateRequestParsed); err != nil {
		return err
	}
	b.days = LayoutDays(b.topics, b.dayCount, b.dailyHours, b.startDate, b.cfg)
	b.state = StateAllocated
	return nil
}

func (b *Builder) InjectReviews() error {
	if err := b.requireState(StateAllocated); err != nil {
		return err
	}
	b.days = InjectReviews(b.days, b.topics, b.dailyHours, b.cfg)
	b.state = StateReviewInjected
	return nil
}

func (b *Builder) Balance() error {
	if err := b.requireState(StateReviewInjected); err != nil {
		return err
	}
	b.days = BalanceDays(b.days, b.difficulty)
	b.state = StateBalanced
	return nil
}

func (b *Builder) InsertBreaks() error {
	if err := b.requireState(StateBalanced); err != nil {
		return err
	}
	b.days = InsertBreaks(b.days, b.dailyHours, b.cfg)
	b.state = StateBreaksAdded
	return nil
}

func (b *Builder) Finalize(id string, createdAt time.Time) (Plan, error) {
	if b.state == StateFailed {
		return Plan{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, b.reason)
	}
	if err := b.requireState(StateBreaksAdded); err != nil {
		return Plan{}, err
	}
	b.state = StateFinalized
	return Plan{
		ID:        id,
		Days:      b.days,
		Status:    PlanStatusActive,
		CreatedAt: createdAt,
		Summary:   Summarize(b.days),
	}, nil
}

// Build runs the full pipeline. It is the only entry point callers outside
// this package should need; the staged methods exist for the state guards
// and for tests.
func (b *Builder) Build(id string, createdAt time.Time) (Plan, error) {
	for _, step := range []func() error{b.Allocate, b.InjectReviews, b.Balance, b.InsertBreaks} {
		if err := step(); err != nil {
			return Plan{}, err
		}
	}
	return b.Finalize(id, createdAt)
}

func (b *Builder) State() BuildState { return b.state }

// FailureReason is set only when the builder is in the Failed state.
func (b *Builder) FailureReason() string { return b.reason }

// Topics exposes the prioritized topics with their derived hour budgets.
func (b *Builder) Topics() []Topic { return append([]Topic(nil), b.topics...) }

func (b *Builder) requireState(want BuildState) error {
	if b.state == StateFailed {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, b.reason)
	}
	if b.state != want {
		b.reason = fmt.Sprintf("expected state %s, in state %s", want, b.state)
		b.state = StateFailed
		return fmt.Errorf("%w: %s", apperrors.ErrStageOrder, b.reason)
	}
	return nil
}

func (b *Builder) fail(err error) *Builder {
	b.state = StateFailed
	b.reason = err.Error()
	return b
}
