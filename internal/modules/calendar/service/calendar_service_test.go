package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"studykit/internal/modules/calendar/domain"
	"studykit/internal/modules/calendar/dto"
	apperrors "studykit/internal/platform/errors"
)

type fakeManifestStore struct {
	manifests []domain.Manifest
	err       error
}

func (s *fakeManifestStore) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, s.err
}

type fakeHost struct {
	lifecycleErr error
	pushErr      error
	pushed       []domain.Event
	eventID      string
}

func (h *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error {
	return h.lifecycleErr
}

func (h *fakeHost) GetMetadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: m.Name, Version: m.Version, Capabilities: m.Capabilities}, nil
}

func (h *fakeHost) PushEvent(_ context.Context, _ domain.Manifest, event domain.Event) (string, error) {
	if h.pushErr != nil {
		return "", h.pushErr
	}
	h.pushed = append(h.pushed, event)
	return h.eventID, nil
}

type fakeFileCalendar struct {
	appended []domain.Event
	err      error
}

func (f *fakeFileCalendar) Append(_ context.Context, event domain.Event) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.appended = append(f.appended, event)
	return "uid-1@studykit", nil
}

// writeProviderBinary drops a fake provider binary on disk and returns its
// path and sha256, so checksum checks in the service see a real file.
func writeProviderBinary(t *testing.T, content string) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "provider")
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	sum := sha256.Sum256([]byte(content))
	return path, hex.EncodeToString(sum[:])
}

func pluginManifest(t *testing.T) domain.Manifest {
	t.Helper()
	binary, checksum := writeProviderBinary(t, "#!/bin/sh\nexit 0\n")
	return domain.Manifest{
		Name:         "gcal",
		Version:      "1.0.0",
		Binary:       binary,
		SHA256:       checksum,
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityPushEvent},
	}
}

func validEvent() dto.EventInput {
	return dto.EventInput{Title: "Study Go", Date: "2026-03-02", Time: "09:00", DurationMin: 60}
}

func TestProvidersListsBuiltinFirst(t *testing.T) {
	t.Parallel()
	store := &fakeManifestStore{manifests: []domain.Manifest{pluginManifest(t)}}
	svc := NewCalendarService(store, &fakeHost{}, &fakeFileCalendar{})

	providers, err := svc.Providers(context.Background())
	if err != nil {
		t.Fatalf("providers: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected builtin plus one plugin, got %d", len(providers))
	}
	if !providers[0].Builtin || providers[0].Name != BuiltinProviderICS || !providers[0].Enabled {
		t.Fatalf("unexpected builtin entry: %+v", providers[0])
	}
	if providers[1].Name != "gcal" || providers[1].Builtin {
		t.Fatalf("unexpected plugin entry: %+v", providers[1])
	}
}

func TestProvidersRejectsNameCollidingWithBuiltin(t *testing.T) {
	t.Parallel()
	manifest := pluginManifest(t)
	manifest.Name = BuiltinProviderICS
	store := &fakeManifestStore{manifests: []domain.Manifest{manifest}}
	svc := NewCalendarService(store, &fakeHost{}, &fakeFileCalendar{})

	if _, err := svc.Providers(context.Background()); err == nil {
		t.Fatalf("expected duplicate name error")
	}
}

func TestPushDefaultsToBuiltinICS(t *testing.T) {
	t.Parallel()
	file := &fakeFileCalendar{}
	svc := NewCalendarService(&fakeManifestStore{}, &fakeHost{}, file)

	out, err := svc.Push(context.Background(), dto.PushInput{Event: validEvent()})
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if out.Provider != BuiltinProviderICS || out.EventID == "" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if len(file.appended) != 1 || file.appended[0].Title != "Study Go" {
		t.Fatalf("event not appended: %+v", file.appended)
	}
}

func TestPushValidatesEvent(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService(&fakeManifestStore{}, &fakeHost{}, &fakeFileCalendar{})

	input := dto.PushInput{Event: dto.EventInput{Title: "", Date: "2026-03-02", Time: "09:00", DurationMin: 60}}
	if _, err := svc.Push(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPushToPluginProvider(t *testing.T) {
	t.Parallel()
	manifest := pluginManifest(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifest}}
	host := &fakeHost{eventID: "evt-42"}
	svc := NewCalendarService(store, host, &fakeFileCalendar{})

	out, err := svc.Push(context.Background(), dto.PushInput{Provider: "gcal", Event: validEvent()})
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if out.Provider != "gcal" || out.EventID != "evt-42" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if len(host.pushed) != 1 {
		t.Fatalf("event not delivered to host")
	}
}

func TestPushUnknownProvider(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService(&fakeManifestStore{}, &fakeHost{}, &fakeFileCalendar{})

	_, err := svc.Push(context.Background(), dto.PushInput{Provider: "nope", Event: validEvent()})
	if !errors.Is(err, apperrors.ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound, got %v", err)
	}
}

func TestPushDisabledProvider(t *testing.T) {
	t.Parallel()
	manifest := pluginManifest(t)
	manifest.Enabled = false
	store := &fakeManifestStore{manifests: []domain.Manifest{manifest}}
	svc := NewCalendarService(store, &fakeHost{}, &fakeFileCalendar{})

	_, err := svc.Push(context.Background(), dto.PushInput{Provider: "gcal", Event: validEvent()})
	if !errors.Is(err, domain.ErrProviderDisabled) {
		t.Fatalf("expected ErrProviderDisabled, got %v", err)
	}
}

func TestPushProviderWithoutCapability(t *testing.T) {
	t.Parallel()
	manifest := pluginManifest(t)
	manifest.Capabilities = []domain.Capability{domain.CapabilityListEvents}
	store := &fakeManifestStore{manifests: []domain.Manifest{manifest}}
	svc := NewCalendarService(store, &fakeHost{}, &fakeFileCalendar{})

	_, err := svc.Push(context.Background(), dto.PushInput{Provider: "gcal", Event: validEvent()})
	if !errors.Is(err, domain.ErrCapabilityMissing) {
		t.Fatalf("expected ErrCapabilityMissing, got %v", err)
	}
}

func TestPushChecksumMismatch(t *testing.T) {
	t.Parallel()
	manifest := pluginManifest(t)
	manifest.SHA256 = hexOfOtherContent()
	store := &fakeManifestStore{manifests: []domain.Manifest{manifest}}
	svc := NewCalendarService(store, &fakeHost{}, &fakeFileCalendar{})

	_, err := svc.Push(context.Background(), dto.PushInput{Provider: "gcal", Event: validEvent()})
	if !errors.Is(err, domain.ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func hexOfOtherContent() string {
	sum := sha256.Sum256([]byte("different content"))
	return hex.EncodeToString(sum[:])
}

func TestPushLifecycleTimeout(t *testing.T) {
	t.Parallel()
	manifest := pluginManifest(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifest}}
	host := &fakeHost{lifecycleErr: context.DeadlineExceeded}
	svc := NewCalendarService(store, host, &fakeFileCalendar{})

	_, err := svc.Push(context.Background(), dto.PushInput{Provider: "gcal", Event: validEvent()})
	if !errors.Is(err, domain.ErrProviderTimeout) {
		t.Fatalf("expected ErrProviderTimeout, got %v", err)
	}
}

func TestDoctorReportsBuiltinAndPlugins(t *testing.T) {
	t.Parallel()
	healthy := pluginManifest(t)
	missing := pluginManifest(t)
	missing.Name = "ghost"
	missing.Binary = filepath.Join(t.TempDir(), "does-not-exist")
	store := &fakeManifestStore{manifests: []domain.Manifest{healthy, missing}}
	svc := NewCalendarService(store, &fakeHost{}, &fakeFileCalendar{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(results))
	}
	builtin := results[0]
	if !builtin.Builtin || !builtin.LifecycleOK || builtin.Error != "" {
		t.Fatalf("unexpected builtin row: %+v", builtin)
	}
	ok := results[1]
	if !ok.BinaryReachable || !ok.ChecksumValid || !ok.LifecycleOK {
		t.Fatalf("healthy plugin misreported: %+v", ok)
	}
	ghost := results[2]
	if ghost.BinaryReachable || ghost.Error == "" {
		t.Fatalf("missing binary not reported: %+v", ghost)
	}
}

func TestDoctorReportsInvalidManifests(t *testing.T) {
	t.Parallel()
	bad := pluginManifest(t)
	bad.SHA256 = "short"
	store := &fakeManifestStore{manifests: []domain.Manifest{bad}}
	svc := NewCalendarService(store, &fakeHost{}, &fakeFileCalendar{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if results[1].Error == "" {
		t.Fatalf("invalid manifest not reported: %+v", results[1])
	}
}
