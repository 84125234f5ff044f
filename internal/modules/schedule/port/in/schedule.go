package in

import (
	"context"

	"studykit/internal/modules/schedule/dto"
)

type Usecase interface {
	Generate(ctx context.Context, input dto.GenerateInput) (dto.GenerateOutput, error)
	GetCurrent(ctx context.Context) (dto.PlanOutput, error)
	List(ctx context.Context) ([]dto.PlanListItem, error)
	Archive(ctx context.Context, planID string) error
}
