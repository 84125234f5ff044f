package usecase

import (
	"context"
	"errors"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	intakein "studykit/internal/modules/intake/port/in"
	"studykit/internal/modules/schedule/domain"
	scheduledto "studykit/internal/modules/schedule/dto"
	schedulein "studykit/internal/modules/schedule/port/in"
	scheduleout "studykit/internal/modules/schedule/port/out"
	"studykit/internal/modules/schedule/service"
	apperrors "studykit/internal/platform/errors"
)

type Interactor struct {
	svc      *service.ScheduleService
	store    scheduleout.PlanStore
	exporter scheduleout.PlanExporter
	calendar scheduleout.CalendarSync
	intake   intakein.Usecase
	logger   hclog.Logger
}

func NewInteractor(
	svc *service.ScheduleService,
	store scheduleout.PlanStore,
	exporter scheduleout.PlanExporter,
	calendar scheduleout.CalendarSync,
	intake intakein.Usecase,
	logger hclog.Logger,
) schedulein.Usecase {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Interactor{svc: svc, store: store, exporter: exporter, calendar: calendar, intake: intake, logger: logger}
}

// Generate runs the pipeline and then hands the finalized plan to the
// external collaborators. The engine itself cannot fail past this point:
// store, exporter, and calendar errors are logged and the plan stays valid.
func (i *Interactor) Generate(ctx context.Context, input scheduledto.GenerateInput) (scheduledto.GenerateOutput, error) {
	request, err := i.toRequest(ctx, input)
	if err != nil {
		return scheduledto.GenerateOutput{Success: false, Reason: err.Error()}, nil
	}

	plan, _, err := i.svc.Build(ctx, request)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoTopics) || errors.Is(err, apperrors.ErrInvalidInput) {
			return scheduledto.GenerateOutput{Success: false, Reason: failureReason(err)}, nil
		}
		return scheduledto.GenerateOutput{}, err
	}

	if i.store != nil {
		if _, err := i.store.SavePlan(ctx, plan); err != nil {
			i.logger.Warn("plan save failed", "plan_id", plan.ID, "error", err)
		}
	}

	notePath := ""
	if i.exporter != nil {
		path, err := i.exporter.ExportPlan(ctx, plan)
		if err != nil {
			i.logger.Warn("plan note export failed", "plan_id", plan.ID, "error", err)
		} else {
			notePath = path
		}
	}

	synced := 0
	if request.SyncCalendar && i.calendar != nil {
		synced = i.pushSessions(ctx, input.Provider, plan)
	}

	out := toPlanOutput(plan)
	out.NotePath = notePath
	return scheduledto.GenerateOutput{Success: true, Plan: &out, Synced: synced}, nil
}

func (i *Interactor) GetCurrent(ctx context.Context) (scheduledto.PlanOutput, error) {
	plan, err := i.store.GetCurrentPlan(ctx)
	if err != nil {
		return scheduledto.PlanOutput{}, err
	}
	return toPlanOutput(plan), nil
}

func (i *Interactor) List(ctx context.Context) ([]scheduledto.PlanListItem, error) {
	plans, err := i.store.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]scheduledto.PlanListItem, 0, len(plans))
	for _, plan := range plans {
		items = append(items, scheduledto.PlanListItem{
			ID:        plan.ID,
			Status:    string(plan.Status),
			CreatedAt: plan.CreatedAt,
			TotalDays: plan.Summary.TotalDays,
			Topics:    plan.Summary.TopicsCovered,
		})
	}
	return items, nil
}

func (i *Interactor) Archive(ctx context.Context, planID string) error {
	if planID == "" {
		return fmt.Errorf("%w: plan id is required", apperrors.ErrInvalidInput)
	}
	return i.store.ArchivePlan(ctx, planID)
}

func (i *Interactor) toRequest(ctx context.Context, input scheduledto.GenerateInput) (domain.StudyRequest, error) {
	topics := make([]domain.Topic, 0, len(input.Topics))
	for _, t := range input.Topics {
		difficulty := t.Difficulty
		if difficulty == 0 && i.intake != nil {
			looked, err := i.intake.Difficulty(ctx, t.Name)
			if err == nil {
				difficulty = looked
			}
		}
		topics = append(topics, domain.Topic{Name: t.Name, Difficulty: difficulty, Deadline: t.Deadline})
	}
	request := domain.StudyRequest{
		Topics:       topics,
		DailyHours:   input.DailyHours,
		StartDate:    input.StartDate,
		Deadline:     input.Deadline,
		SyncCalendar: input.SyncCalendar,
	}
	return request, request.Validate()
}

func (i *Interactor) pushSessions(ctx context.Context, provider string, plan domain.Plan) int {
	synced := 0
	for dayIdx, day := range plan.Days {
		for _, session := range day.Sessions {
			if !session.Type.IsStudy() {
				continue
			}
			event := scheduleout.CalendarEvent{
				Title:       sessionTitle(session),
				Date:        day.Date.Format("2006-01-02"),
				Time:        session.Time,
				DurationMin: session.DurationMin,
				Description: fmt.Sprintf("%s on %s", sessionTitle(session), day.Label),
			}
			if err := i.calendar.PushEvent(ctx, provider, event); err != nil {
				i.logger.Warn("calendar push failed", "plan_id", plan.ID, "day", dayIdx, "title", event.Title, "error", err)
				continue
			}
			synced++
		}
	}
	return synced
}

func sessionTitle(session domain.Session) string {
	switch {
	case session.Type == domain.SessionReview && session.Topic == "":
		return "Review and practice"
	case session.Type == domain.SessionReview:
		return "Review " + session.Topic
	default:
		return "Study " + session.Topic
	}
}

func failureReason(err error) string {
	if errors.Is(err, apperrors.ErrNoTopics) {
		return apperrors.ErrNoTopics.Error()
	}
	return err.Error()
}

func toPlanOutput(plan domain.Plan) scheduledto.PlanOutput {
	days := make([]scheduledto.DayOutput, 0, len(plan.Days))
	for _, day := range plan.Days {
		sessions := make([]scheduledto.SessionOutput, 0, len(day.Sessions))
		for _, session := range day.Sessions {
			sessions = append(sessions, scheduledto.SessionOutput{
				Time:        session.Time,
				DurationMin: session.DurationMin,
				Topic:       session.Topic,
				Type:        string(session.Type),
			})
		}
		days = append(days, scheduledto.DayOutput{Label: day.Label, Date: day.Date, Sessions: sessions})
	}
	return scheduledto.PlanOutput{
		ID:        plan.ID,
		Status:    string(plan.Status),
		CreatedAt: plan.CreatedAt,
		Days:      days,
		Summary: scheduledto.SummaryOutput{
			TotalDays:      plan.Summary.TotalDays,
			TotalSessions:  plan.Summary.TotalSessions,
			StudySessions:  plan.Summary.StudySessions,
			TopicsCovered:  plan.Summary.TopicsCovered,
			EstimatedHours: plan.Summary.EstimatedHours,
		},
	}
}
