package in

import (
	"context"

	"studykit/internal/modules/intake/dto"
)

type Usecase interface {
	Parse(ctx context.Context, text string) (dto.ParseOutput, error)
	Difficulty(ctx context.Context, topic string) (float64, error)
	Profile(ctx context.Context, topic string) (dto.TopicProfile, error)
	Syllabus(ctx context.Context, input dto.SyllabusInput) (dto.SyllabusOutput, error)
}
