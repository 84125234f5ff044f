package out

import (
	"context"

	"studykit/internal/modules/schedule/domain"
)

type PlanStore interface {
	SavePlan(ctx context.Context, plan domain.Plan) (string, error)
	GetCurrentPlan(ctx context.Context) (domain.Plan, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	ArchivePlan(ctx context.Context, planID string) error
}

// PlanExporter renders a finalized plan as a markdown note. Export is
// best-effort; failures are logged by the usecase and never invalidate the
// plan.
type PlanExporter interface {
	ExportPlan(ctx context.Context, plan domain.Plan) (string, error)
}

// CalendarEvent is one study block to push to an external calendar.
type CalendarEvent struct {
	Title       string
	Date        string
	Time        string
	DurationMin int
	Description string
}

// CalendarSync pushes sessions to a calendar provider. Push failures are
// reported per event and logged; a finalized plan stays valid regardless.
type CalendarSync interface {
	PushEvent(ctx context.Context, provider string, event CalendarEvent) error
}
