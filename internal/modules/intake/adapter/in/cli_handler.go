package in

import (
	"context"

	"studykit/internal/modules/intake/dto"
	intakein "studykit/internal/modules/intake/port/in"
)

type CLIHandler struct {
	usecase intakein.Usecase
}

func NewCLIHandler(usecase intakein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Parse(ctx context.Context, text string) (dto.ParseOutput, error) {
	return h.usecase.Parse(ctx, text)
}

func (h CLIHandler) Profile(ctx context.Context, topic string) (dto.TopicProfile, error) {
	return h.usecase.Profile(ctx, topic)
}

func (h CLIHandler) Syllabus(ctx context.Context, input dto.SyllabusInput) (dto.SyllabusOutput, error) {
	return h.usecase.Syllabus(ctx, input)
}
