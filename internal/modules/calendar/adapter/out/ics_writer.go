package out

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studykit/internal/modules/calendar/domain"
	calendarout "studykit/internal/modules/calendar/port/out"
)

const (
	icsHeader = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//studykit//calendar//EN\r\n"
	icsFooter = "END:VCALENDAR\r\n"
)

// ICSWriter is the builtin provider. Events accumulate as VEVENT blocks in
// one local .ics file that any desktop calendar can import.
type ICSWriter struct {
	path string
}

func NewICSWriter(path string) calendarout.FileCalendar {
	return &ICSWriter{path: path}
}

func (w *ICSWriter) Append(_ context.Context, event domain.Event) (string, error) {
	if err := event.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return "", fmt.Errorf("create calendar dir: %w", err)
	}

	content := icsHeader + icsFooter
	if b, err := os.ReadFile(w.path); err == nil {
		content = string(b)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read calendar file: %w", err)
	}
	idx := strings.LastIndex(content, icsFooter)
	if idx < 0 {
		return "", fmt.Errorf("calendar file %s is not a valid VCALENDAR", w.path)
	}

	uid := eventUID(event)
	content = content[:idx] + renderEvent(event, uid) + content[idx:]
	if err := os.WriteFile(w.path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write calendar file: %w", err)
	}
	return uid, nil
}

func renderEvent(event domain.Event, uid string) string {
	start := event.Start()
	end := start.Add(time.Duration(event.DurationMin) * time.Minute)
	var b strings.Builder
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s\r\n", uid)
	fmt.Fprintf(&b, "DTSTART:%s\r\n", start.Format("20060102T150405"))
	fmt.Fprintf(&b, "DTEND:%s\r\n", end.Format("20060102T150405"))
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeText(event.Title))
	if event.Description != "" {
		fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escapeText(event.Description))
	}
	b.WriteString("END:VEVENT\r\n")
	return b.String()
}

func eventUID(event domain.Event) string {
	hash := sha256.Sum256([]byte(event.Date + event.Time + event.Title))
	return hex.EncodeToString(hash[:8]) + "@studykit"
}

func escapeText(s string) string {
	replacer := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return replacer.Replace(s)
}
