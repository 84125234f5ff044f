package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	scheduledto "studykit/internal/modules/schedule/dto"
	"studykit/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PlanPort interface {
	List(ctx context.Context) ([]scheduledto.PlanListItem, error)
	GetCurrent(ctx context.Context) (scheduledto.PlanOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PlansLoadedMsg struct {
	Plans []scheduledto.PlanListItem
	Err   error
}

type CurrentLoadedMsg struct {
	Plan scheduledto.PlanOutput
	Err  error
}

// ─── list item ───────────────────────────────────────────────────────────────

type planItem struct {
	plan scheduledto.PlanListItem
}

func (i planItem) Title() string {
	return i.plan.CreatedAt.Format("2006-01-02 15:04") + "  " + i.plan.Status
}

func (i planItem) Description() string {
	return fmt.Sprintf("%d days  %s", i.plan.TotalDays, strings.Join(i.plan.Topics, ", "))
}

func (i planItem) FilterValue() string { return strings.Join(i.plan.Topics, " ") }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    PlanPort
	list    list.Model
	current scheduledto.PlanOutput
	detail  viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port PlanPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Plans"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadPlansCmd(), m.loadCurrentCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case PlansLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Plans: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Plans))
		for i, p := range msg.Plans {
			items[i] = planItem{plan: p}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case CurrentLoadedMsg:
		if msg.Err == nil {
			m.current = msg.Plan
			m.detail.SetContent(m.renderCurrent())
		} else {
			m.detail.SetContent(theme.Muted.Render(msg.Err.Error()))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "r" && !m.Filtering() {
			m.loading = true
			return m, tea.Batch(m.loadPlansCmd(), m.loadCurrentCmd(), m.spinner.Tick)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading plans…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderCurrent() string {
	p := m.current
	if p.ID == "" {
		return theme.Muted.Render("No active plan. Run `studykit plan generate` first.")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Current plan "+p.ID) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s%d days, %d sessions, %d study, ~%dh\n\n",
		theme.Muted.Render("summary: "), p.Summary.TotalDays, p.Summary.TotalSessions, p.Summary.StudySessions, p.Summary.EstimatedHours))
	for _, day := range p.Days {
		sb.WriteString(theme.Hot.Render(day.Label) + theme.Muted.Render("  "+day.Date.Format("2006-01-02")) + "\n")
		for _, session := range day.Sessions {
			label := session.Topic
			switch {
			case session.Type == "break":
				label = "Break"
			case session.Type == "review" && session.Topic == "":
				label = "Review and practice"
			case session.Type == "review":
				label = "Review " + session.Topic
			}
			sb.WriteString(fmt.Sprintf("  %s  %-28s %3d min\n", session.Time, label, session.DurationMin))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(theme.Muted.Render("r: refresh"))
	return sb.String()
}

func (m Model) loadPlansCmd() tea.Cmd {
	return func() tea.Msg {
		plans, err := m.port.List(context.Background())
		return PlansLoadedMsg{Plans: plans, Err: err}
	}
}

func (m Model) loadCurrentCmd() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.port.GetCurrent(context.Background())
		return CurrentLoadedMsg{Plan: plan, Err: err}
	}
}
