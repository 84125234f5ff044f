package service

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"studykit/internal/modules/intake/domain"
	"studykit/internal/modules/intake/dto"
	intakeout "studykit/internal/modules/intake/port/out"
	"studykit/internal/platform/clock"
	apperrors "studykit/internal/platform/errors"
)

const difficultyCacheSize = 256

// IntakeService turns free text and syllabus documents into structured study
// input. Difficulty lookups are memoized; repeated plan generations hit the
// cache instead of re-scanning the catalog.
type IntakeService struct {
	clock  clock.Clock
	reader intakeout.SyllabusReader
	cache  *lru.Cache[string, float64]
}

func NewIntakeService(clk clock.Clock, reader intakeout.SyllabusReader) (*IntakeService, error) {
	cache, err := lru.New[string, float64](difficultyCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create difficulty cache: %w", err)
	}
	return &IntakeService{clock: clk, reader: reader, cache: cache}, nil
}

func (s *IntakeService) Parse(_ context.Context, text string) (dto.ParseOutput, error) {
	if strings.TrimSpace(text) == "" {
		return dto.ParseOutput{}, fmt.Errorf("%w: text is required", apperrors.ErrInvalidInput)
	}
	parsed := domain.Parse(text, s.clock.Now())
	out := dto.ParseOutput{Topics: parsed.Topics, DailyHours: parsed.DailyHours}
	if !parsed.Deadline.IsZero() {
		out.Deadline = parsed.Deadline
		out.HasDeadline = true
	}
	return out, nil
}

func (s *IntakeService) Difficulty(_ context.Context, topic string) (float64, error) {
	if strings.TrimSpace(topic) == "" {
		return 0, fmt.Errorf("%w: topic is required", apperrors.ErrInvalidInput)
	}
	key := strings.ToLower(strings.TrimSpace(topic))
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}
	difficulty := domain.LookupDifficulty(topic)
	s.cache.Add(key, difficulty)
	return difficulty, nil
}

func (s *IntakeService) Profile(ctx context.Context, topic string) (dto.TopicProfile, error) {
	difficulty, err := s.Difficulty(ctx, topic)
	if err != nil {
		return dto.TopicProfile{}, err
	}
	return dto.TopicProfile{
		Name:           strings.TrimSpace(topic),
		Difficulty:     difficulty,
		EstimatedHours: domain.EstimateHours(difficulty, 0),
	}, nil
}

func (s *IntakeService) Syllabus(ctx context.Context, input dto.SyllabusInput) (dto.SyllabusOutput, error) {
	if input.Path == "" {
		return dto.SyllabusOutput{}, fmt.Errorf("%w: syllabus path is required", apperrors.ErrInvalidInput)
	}
	text, pages, err := s.reader.ReadText(ctx, input.Path)
	if err != nil {
		return dto.SyllabusOutput{}, err
	}
	topics := domain.ExtractSyllabusTopics(text, input.MaxTopics)
	return dto.SyllabusOutput{Topics: topics, Pages: pages}, nil
}
