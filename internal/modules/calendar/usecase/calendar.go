package usecase

import (
	"context"

	"studykit/internal/modules/calendar/dto"
	calendarin "studykit/internal/modules/calendar/port/in"
	"studykit/internal/modules/calendar/service"
)

type Interactor struct {
	svc *service.CalendarService
}

func NewInteractor(svc *service.CalendarService) calendarin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Providers(ctx context.Context) ([]dto.ProviderInfo, error) {
	return i.svc.Providers(ctx)
}

func (i *Interactor) Push(ctx context.Context, input dto.PushInput) (dto.PushOutput, error) {
	return i.svc.Push(ctx, input)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}
