package in

import (
	"context"

	"studykit/internal/modules/calendar/dto"
	calendarin "studykit/internal/modules/calendar/port/in"
)

type CLIHandler struct {
	usecase calendarin.Usecase
}

func NewCLIHandler(usecase calendarin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Providers(ctx context.Context) ([]dto.ProviderInfo, error) {
	return h.usecase.Providers(ctx)
}

func (h CLIHandler) Push(ctx context.Context, input dto.PushInput) (dto.PushOutput, error) {
	return h.usecase.Push(ctx, input)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}
