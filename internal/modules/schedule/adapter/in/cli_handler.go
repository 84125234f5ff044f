package in

import (
	"context"

	"studykit/internal/modules/schedule/dto"
	schedulein "studykit/internal/modules/schedule/port/in"
)

type CLIHandler struct {
	usecase schedulein.Usecase
}

func NewCLIHandler(usecase schedulein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Generate(ctx context.Context, input dto.GenerateInput) (dto.GenerateOutput, error) {
	return h.usecase.Generate(ctx, input)
}

func (h CLIHandler) GetCurrent(ctx context.Context) (dto.PlanOutput, error) {
	return h.usecase.GetCurrent(ctx)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.PlanListItem, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Archive(ctx context.Context, planID string) error {
	return h.usecase.Archive(ctx, planID)
}
