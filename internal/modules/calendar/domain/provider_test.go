package domain

import (
	"strings"
	"testing"
	"time"
)

func validManifest() Manifest {
	return Manifest{
		Name:         "gcal",
		Version:      "1.0.0",
		Binary:       "/opt/providers/gcal",
		SHA256:       strings.Repeat("ab", 32),
		Enabled:      true,
		Capabilities: []Capability{CapabilityPushEvent},
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		mutate  func(*Manifest)
		wantErr bool
	}{
		{"valid", func(*Manifest) {}, false},
		{"missing name", func(m *Manifest) { m.Name = "" }, true},
		{"missing version", func(m *Manifest) { m.Version = "" }, true},
		{"missing binary", func(m *Manifest) { m.Binary = "" }, true},
		{"short sha256", func(m *Manifest) { m.SHA256 = "abcd" }, true},
		{"uppercase sha256", func(m *Manifest) { m.SHA256 = strings.Repeat("AB", 32) }, true},
		{"no capabilities", func(m *Manifest) { m.Capabilities = nil }, true},
		{"unknown capability", func(m *Manifest) { m.Capabilities = []Capability{"teleport"} }, true},
		{"duplicate capability", func(m *Manifest) {
			m.Capabilities = []Capability{CapabilityPushEvent, CapabilityPushEvent}
		}, true},
		{"both capabilities", func(m *Manifest) {
			m.Capabilities = []Capability{CapabilityPushEvent, CapabilityListEvents}
		}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := validManifest()
			tc.mutate(&m)
			err := m.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestManifestHasCapability(t *testing.T) {
	t.Parallel()
	m := validManifest()
	if !m.HasCapability(CapabilityPushEvent) {
		t.Fatalf("declared capability not reported")
	}
	if m.HasCapability(CapabilityListEvents) {
		t.Fatalf("undeclared capability reported")
	}
}

func TestEventValidate(t *testing.T) {
	t.Parallel()
	valid := Event{Title: "Study Go", Date: "2026-03-02", Time: "09:00", DurationMin: 60}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid event rejected: %v", err)
	}
	cases := []struct {
		name   string
		mutate func(*Event)
	}{
		{"missing title", func(e *Event) { e.Title = "" }},
		{"bad date", func(e *Event) { e.Date = "03/02/2026" }},
		{"bad time", func(e *Event) { e.Time = "9am" }},
		{"zero duration", func(e *Event) { e.DurationMin = 0 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := valid
			tc.mutate(&e)
			if err := e.Validate(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestEventStart(t *testing.T) {
	t.Parallel()
	e := Event{Title: "Study Go", Date: "2026-03-02", Time: "09:30", DurationMin: 60}
	want := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	if got := e.Start(); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
