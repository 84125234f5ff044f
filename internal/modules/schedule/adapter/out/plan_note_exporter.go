package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studykit/internal/modules/schedule/domain"
	scheduleout "studykit/internal/modules/schedule/port/out"
	"studykit/internal/platform/markdown"
	"studykit/internal/platform/slug"
)

// MarkdownPlanExporter writes a finalized plan as a markdown note under
// plans/YYYY/MM/, with the plan metadata in YAML frontmatter and the
// schedule rendered as one section per day.
type MarkdownPlanExporter struct {
	plansPath string
}

func NewMarkdownPlanExporter(plansPath string) scheduleout.PlanExporter {
	return &MarkdownPlanExporter{plansPath: plansPath}
}

func (e *MarkdownPlanExporter) ExportPlan(_ context.Context, plan domain.Plan) (string, error) {
	dir := filepath.Join(e.plansPath, plan.CreatedAt.Format("2006"), plan.CreatedAt.Format("01"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create plan dir: %w", err)
	}

	meta := map[string]any{
		"id":              plan.ID,
		"status":          string(plan.Status),
		"created_at":      plan.CreatedAt.Format("2006-01-02 15:04"),
		"total_days":      plan.Summary.TotalDays,
		"study_sessions":  plan.Summary.StudySessions,
		"estimated_hours": plan.Summary.EstimatedHours,
		"topics":          plan.Summary.TopicsCovered,
	}
	content, err := markdown.RenderFrontmatter(meta, renderBody(plan))
	if err != nil {
		return "", fmt.Errorf("render plan note: %w", err)
	}

	name := plan.ID
	if len(plan.Summary.TopicsCovered) > 0 {
		name = slug.Make(plan.Summary.TopicsCovered[0]) + "-" + plan.ID
	}
	path := filepath.Join(dir, "plan-"+name+".md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write plan note: %w", err)
	}
	return path, nil
}

func renderBody(plan domain.Plan) string {
	var b strings.Builder
	b.WriteString("# Study Plan\n")
	for _, day := range plan.Days {
		fmt.Fprintf(&b, "\n## %s (%s)\n\n", day.Label, day.Date.Format("2006-01-02"))
		for _, session := range day.Sessions {
			fmt.Fprintf(&b, "- %s  %s (%d min)\n", session.Time, sessionLine(session), session.DurationMin)
		}
	}
	return b.String()
}

func sessionLine(session domain.Session) string {
	switch {
	case session.Type == domain.SessionBreak:
		return "Break"
	case session.Type == domain.SessionReview && session.Topic == "":
		return "Review and practice"
	case session.Type == domain.SessionReview:
		return "Review: " + session.Topic
	default:
		return session.Topic
	}
}
