package out

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"studykit/internal/modules/schedule/domain"
	"studykit/internal/platform/markdown"
)

func TestExportPlanWritesDatedNote(t *testing.T) {
	t.Parallel()
	plansPath := t.TempDir()
	exporter := NewMarkdownPlanExporter(plansPath)
	plan := testPlan("abc123", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC))

	path, err := exporter.ExportPlan(context.Background(), plan)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := filepath.Join(plansPath, "2026", "03", "plan-calculus-abc123.md")
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	meta, body, err := markdown.SplitFrontmatter(string(raw))
	if err != nil {
		t.Fatalf("split frontmatter: %v", err)
	}
	if meta["id"] != "abc123" || meta["status"] != "active" {
		t.Fatalf("unexpected frontmatter: %v", meta)
	}
	if meta["total_days"] != 1 {
		t.Fatalf("unexpected total_days: %v", meta["total_days"])
	}
	if !strings.Contains(body, "# Study Plan") {
		t.Fatalf("missing title: %q", body)
	}
	if !strings.Contains(body, "## Monday (2026-03-02)") {
		t.Fatalf("missing day heading: %q", body)
	}
	if !strings.Contains(body, "- 09:00  Calculus (120 min)") {
		t.Fatalf("missing study line: %q", body)
	}
	if !strings.Contains(body, "- 11:00  Break (15 min)") {
		t.Fatalf("missing break line: %q", body)
	}
}

func TestExportPlanFallsBackToIDWithoutTopics(t *testing.T) {
	t.Parallel()
	plansPath := t.TempDir()
	exporter := NewMarkdownPlanExporter(plansPath)
	plan := domain.Plan{
		ID:        "xyz",
		Status:    domain.PlanStatusActive,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	path, err := exporter.ExportPlan(context.Background(), plan)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(path) != "plan-xyz.md" {
		t.Fatalf("unexpected name: %s", filepath.Base(path))
	}
}

func TestExportPlanRendersReviewLines(t *testing.T) {
	t.Parallel()
	exporter := NewMarkdownPlanExporter(t.TempDir())
	plan := domain.Plan{
		ID:        "rev",
		Status:    domain.PlanStatusActive,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Days: []domain.Day{{
			Label: "Day 1",
			Date:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Sessions: []domain.Session{
				{Time: "19:00", DurationMin: 54, Type: domain.SessionReview},
				{Time: "20:00", DurationMin: 30, Topic: "Go", Type: domain.SessionReview},
			},
		}},
		Summary: domain.Summary{TotalDays: 1},
	}

	path, err := exporter.ExportPlan(context.Background(), plan)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	content := string(raw)
	if !strings.Contains(content, "Review and practice (54 min)") {
		t.Fatalf("missing mixed review line: %q", content)
	}
	if !strings.Contains(content, "Review: Go (30 min)") {
		t.Fatalf("missing topic review line: %q", content)
	}
}
