package service

import (
	"context"

	"studykit/internal/modules/schedule/domain"
	"studykit/internal/platform/clock"
	"studykit/internal/platform/config"
	"studykit/internal/platform/id"
)

// ScheduleService owns one build: it converts the platform scheduling
// defaults into the engine configuration and runs the builder with an
// injected clock and id generator, which keeps repeated builds of the same
// request byte-identical in tests.
type ScheduleService struct {
	clock clock.Clock
	idGen id.Generator
	cfg   domain.Config
}

func NewScheduleService(clk clock.Clock, idGen id.Generator, defaults config.SchedulingDefaults) *ScheduleService {
	return &ScheduleService{clock: clk, idGen: idGen, cfg: engineConfig(defaults)}
}

// Build runs the full pipeline for one request. The returned builder topics
// carry the derived per-topic hour budgets.
func (s *ScheduleService) Build(_ context.Context, request domain.StudyRequest) (domain.Plan, []domain.Topic, error) {
	now := s.clock.Now()
	builder := domain.NewBuilder(request, now, s.cfg)
	plan, err := builder.Build(s.idGen.New(), now)
	if err != nil {
		return domain.Plan{}, nil, err
	}
	return plan, builder.Topics(), nil
}

func engineConfig(defaults config.SchedulingDefaults) domain.Config {
	cfg := domain.DefaultConfig()
	cfg.SessionMinutes = defaults.SessionMinutes
	cfg.BreakMinutes = defaults.BreakMinutes
	cfg.BreakIntervalMinutes = defaults.BreakInterval
	cfg.ReviewMinutes = defaults.ReviewMinutes
	cfg.MaxDailyHours = defaults.MaxDailyHours
	cfg.DefaultPlanDays = defaults.DefaultPlanDays
	cfg.MaxPlanDays = defaults.MaxPlanDays
	cfg.MorningSlot = defaults.MorningSlot
	cfg.AfternoonSlot = defaults.AfternoonSlot
	cfg.EveningSlot = defaults.EveningSlot
	cfg.ReviewSlot = defaults.ReviewSlot
	return cfg
}
