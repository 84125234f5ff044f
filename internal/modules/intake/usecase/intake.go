package usecase

import (
	"context"

	"studykit/internal/modules/intake/dto"
	intakein "studykit/internal/modules/intake/port/in"
	"studykit/internal/modules/intake/service"
)

type Interactor struct {
	svc *service.IntakeService
}

func NewInteractor(svc *service.IntakeService) intakein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Parse(ctx context.Context, text string) (dto.ParseOutput, error) {
	return i.svc.Parse(ctx, text)
}

func (i *Interactor) Difficulty(ctx context.Context, topic string) (float64, error) {
	return i.svc.Difficulty(ctx, topic)
}

func (i *Interactor) Profile(ctx context.Context, topic string) (dto.TopicProfile, error) {
	return i.svc.Profile(ctx, topic)
}

func (i *Interactor) Syllabus(ctx context.Context, input dto.SyllabusInput) (dto.SyllabusOutput, error) {
	return i.svc.Syllabus(ctx, input)
}
