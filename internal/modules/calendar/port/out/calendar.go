package out

import (
	"context"

	"studykit/internal/modules/calendar/domain"
)

// ManifestStore loads provider manifests from disk.
type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// Host spawns a provider binary and speaks the provider RPC contract.
type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	PushEvent(ctx context.Context, manifest domain.Manifest, event domain.Event) (string, error)
}

// FileCalendar is the builtin provider: events land in a local ICS file.
type FileCalendar interface {
	Append(ctx context.Context, event domain.Event) (string, error)
}
