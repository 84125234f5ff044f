package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"studykit/internal/modules/calendar/domain"
	"studykit/internal/modules/calendar/dto"
	calendarout "studykit/internal/modules/calendar/port/out"
	apperrors "studykit/internal/platform/errors"
)

// BuiltinProviderICS is always available and needs no manifest.
const BuiltinProviderICS = "ics"

type CalendarService struct {
	store calendarout.ManifestStore
	host  calendarout.Host
	file  calendarout.FileCalendar
}

func NewCalendarService(store calendarout.ManifestStore, host calendarout.Host, file calendarout.FileCalendar) *CalendarService {
	return &CalendarService{store: store, host: host, file: file}
}

func (s *CalendarService) Providers(ctx context.Context) ([]dto.ProviderInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := []dto.ProviderInfo{{
		Name:         BuiltinProviderICS,
		Version:      "builtin",
		Enabled:      true,
		Builtin:      true,
		Capabilities: []string{string(domain.CapabilityPushEvent)},
	}}
	for _, m := range manifests {
		caps := make([]string, 0, len(m.Capabilities))
		for _, c := range m.Capabilities {
			caps = append(caps, string(c))
		}
		out = append(out, dto.ProviderInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary, Capabilities: caps})
	}
	return out, nil
}

// Push delivers one event. An empty provider name falls back to the builtin
// ICS file.
func (s *CalendarService) Push(ctx context.Context, input dto.PushInput) (dto.PushOutput, error) {
	event := domain.Event{
		Title:       input.Event.Title,
		Date:        input.Event.Date,
		Time:        input.Event.Time,
		DurationMin: input.Event.DurationMin,
		Description: input.Event.Description,
	}
	if err := event.Validate(); err != nil {
		return dto.PushOutput{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}

	provider := input.Provider
	if provider == "" {
		provider = BuiltinProviderICS
	}
	if provider == BuiltinProviderICS {
		eventID, err := s.file.Append(ctx, event)
		if err != nil {
			return dto.PushOutput{}, err
		}
		return dto.PushOutput{Provider: provider, EventID: eventID}, nil
	}

	manifest, err := s.getRunnableManifest(ctx, provider, domain.CapabilityPushEvent)
	if err != nil {
		return dto.PushOutput{}, err
	}
	eventID, err := s.host.PushEvent(ctx, manifest, event)
	if err != nil {
		return dto.PushOutput{}, err
	}
	return dto.PushOutput{Provider: provider, EventID: eventID}, nil
}

func (s *CalendarService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := []dto.DoctorResult{{
		Name:            BuiltinProviderICS,
		Builtin:         true,
		BinaryReachable: true,
		ChecksumValid:   true,
		LifecycleOK:     true,
	}}
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *CalendarService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{BuiltinProviderICS: {}}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate provider name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *CalendarService) getRunnableManifest(ctx context.Context, name string, requiredCapability domain.Capability) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	manifest := domain.Manifest{}
	found := false
	for _, item := range manifests {
		if item.Name == name {
			manifest = item
			found = true
			break
		}
	}
	if !found {
		return domain.Manifest{}, fmt.Errorf("%w: %s", apperrors.ErrProviderNotFound, name)
	}
	if !manifest.Enabled {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrProviderDisabled, name)
	}
	if requiredCapability != "" && !manifest.HasCapability(requiredCapability) {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrCapabilityMissing, requiredCapability)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	if s.host != nil {
		if err := s.host.CheckLifecycle(ctx, manifest); err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrProviderTimeout, name)
			}
			return domain.Manifest{}, err
		}
	}
	return manifest, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read provider binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
