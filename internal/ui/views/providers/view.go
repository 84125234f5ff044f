package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calendardto "studykit/internal/modules/calendar/dto"
	"studykit/internal/ui/theme"
)

type CalendarPort interface {
	Providers(ctx context.Context) ([]calendardto.ProviderInfo, error)
	Doctor(ctx context.Context) ([]calendardto.DoctorResult, error)
}

type ProvidersLoadedMsg struct {
	Providers []calendardto.ProviderInfo
	Err       error
}

type DoctorLoadedMsg struct {
	Results []calendardto.DoctorResult
	Err     error
}

type Model struct {
	port      CalendarPort
	providers []calendardto.ProviderInfo
	doctor    map[string]calendardto.DoctorResult
	spinner   spinner.Model
	loading   bool
	err       error
	width     int
	height    int
}

func New(port CalendarPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true, doctor: map[string]calendardto.DoctorResult{}}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadProvidersCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ProvidersLoadedMsg:
		m.loading = false
		m.providers = msg.Providers
		m.err = msg.Err
		if msg.Err == nil {
			return m, m.loadDoctorCmd()
		}

	case DoctorLoadedMsg:
		if msg.Err == nil {
			for _, result := range msg.Results {
				m.doctor[result.Name] = result
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, tea.Batch(m.loadProvidersCmd(), m.spinner.Tick)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading providers…")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Calendar providers") + "\n\n")
	if m.err != nil {
		sb.WriteString(theme.Hot.Render(m.err.Error()) + "\n")
	}
	for _, p := range m.providers {
		origin := "plugin"
		if p.Builtin {
			origin = "builtin"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", theme.Hot.Render(p.Name+"@"+p.Version), theme.Muted.Render(origin)))
		sb.WriteString(theme.Muted.Render("  enabled: ") + fmt.Sprintf("%t\n", p.Enabled))
		sb.WriteString(theme.Muted.Render("  capabilities: ") + strings.Join(p.Capabilities, ", ") + "\n")
		if result, ok := m.doctor[p.Name]; ok {
			status := "healthy"
			if result.Error != "" {
				status = result.Error
			}
			sb.WriteString(theme.Muted.Render("  doctor: ") + status + "\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(theme.Muted.Render("r: refresh"))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Padding(1).
		Render(sb.String())
}

func (m Model) loadProvidersCmd() tea.Cmd {
	return func() tea.Msg {
		providers, err := m.port.Providers(context.Background())
		return ProvidersLoadedMsg{Providers: providers, Err: err}
	}
}

func (m Model) loadDoctorCmd() tea.Cmd {
	return func() tea.Msg {
		results, err := m.port.Doctor(context.Background())
		return DoctorLoadedMsg{Results: results, Err: err}
	}
}
