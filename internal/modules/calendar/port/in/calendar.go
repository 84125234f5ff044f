package in

import (
	"context"

	"studykit/internal/modules/calendar/dto"
)

type Usecase interface {
	Providers(ctx context.Context) ([]dto.ProviderInfo, error)
	Push(ctx context.Context, input dto.PushInput) (dto.PushOutput, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
}
