package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNoTopics         = errors.New("no topics")
	ErrNoActivePlan     = errors.New("no active plan")
	ErrStageOrder       = errors.New("pipeline stage invoked out of order")
	ErrProviderNotFound = errors.New("calendar provider not found")
)
