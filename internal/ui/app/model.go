package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studykit/internal/ui/theme"
	planview "studykit/internal/ui/views/plan"
	providersview "studykit/internal/ui/views/providers"
)

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabPlan tabID = iota
	tabProviders
	tabCount
)

var tabLabels = [tabCount]string{"Plan", "Providers"}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Refresh},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing and the help
// overlay; all data loading and rendering live in the sub-views.
type Model struct {
	planView      planview.Model
	providersView providersview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	width     int
	height    int
}

func NewModel(plans planview.PlanPort, calendar providersview.CalendarPort) Model {
	return Model{
		planView:      planview.New(plans),
		providersView: providersview.New(calendar),
		keys:          defaultKeys(),
		help:          help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.planView.Init(), m.providersView.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.forwardResize(msg)

	case tea.KeyMsg:
		if m.activeTab == tabPlan && m.planView.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabPlan:
		m.planView, cmd = m.planView.Update(msg)
	case tabProviders:
		m.providersView, cmd = m.providersView.Update(msg)
	}
	return m, cmd
}

func (m Model) forwardResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	content := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 3}
	var planCmd, providersCmd tea.Cmd
	m.planView, planCmd = m.planView.Update(content)
	m.providersView, providersCmd = m.providersView.Update(content)
	return m, tea.Batch(planCmd, providersCmd)
}

func (m Model) View() string {
	body := ""
	switch m.activeTab {
	case tabPlan:
		body = m.planView.View()
	case tabProviders:
		body = m.providersView.View()
	}

	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.showHelp {
		footer = m.help.FullHelpView(m.keys.FullHelp())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), body, footer)
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, int(tabCount))
	for i, label := range tabLabels {
		style := theme.Muted
		if tabID(i) == m.activeTab {
			style = theme.Hot
		}
		rendered = append(rendered, style.Render(" "+label+" "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
