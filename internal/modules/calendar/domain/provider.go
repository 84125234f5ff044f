package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

type Capability string

const (
	CapabilityPushEvent  Capability = "push_event"
	CapabilityListEvents Capability = "list_events"
)

var (
	ErrProviderDisabled  = errors.New("calendar provider is disabled")
	ErrChecksumMismatch  = errors.New("calendar provider checksum mismatch")
	ErrCapabilityMissing = errors.New("calendar provider capability missing")
	ErrProviderTimeout   = errors.New("calendar provider timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one external calendar provider binary. Providers are
// spawned as subprocesses, so the binary is pinned by checksum.
type Manifest struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Binary       string       `json:"binary"`
	SHA256       string       `json:"sha256"`
	Enabled      bool         `json:"enabled"`
	Capabilities []Capability `json:"capabilities"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("provider name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("provider version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("provider binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("provider sha256 must be lowercase 64-char hex")
	}
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("provider capabilities are required")
	}
	seen := map[Capability]struct{}{}
	for _, capability := range m.Capabilities {
		if err := capability.Validate(); err != nil {
			return err
		}
		if _, ok := seen[capability]; ok {
			return fmt.Errorf("duplicate capability: %s", capability)
		}
		seen[capability] = struct{}{}
	}
	return nil
}

func (c Capability) Validate() error {
	switch c {
	case CapabilityPushEvent, CapabilityListEvents:
		return nil
	default:
		return fmt.Errorf("unknown capability: %s", c)
	}
}

func (m Manifest) HasCapability(capability Capability) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name         string
	Version      string
	Capabilities []Capability
}

// Event is one study block headed for a calendar. Date is "2006-01-02" and
// Time is "15:04"; providers get both as-is.
type Event struct {
	Title       string
	Date        string
	Time        string
	DurationMin int
	Description string
}

func (e Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("event date must be YYYY-MM-DD: %q", e.Date)
	}
	if _, err := time.Parse("15:04", e.Time); err != nil {
		return fmt.Errorf("event time must be HH:MM: %q", e.Time)
	}
	if e.DurationMin <= 0 {
		return fmt.Errorf("event duration must be positive")
	}
	return nil
}

// Start combines Date and Time into a UTC instant. Validate first.
func (e Event) Start() time.Time {
	start, _ := time.Parse("2006-01-02 15:04", e.Date+" "+e.Time)
	return start
}
