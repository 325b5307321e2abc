// Package ui renders a countdown engine in the terminal, either as an
// interactive view or as a plain progress bar.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hourglass-cli/hourglass/internal/countdown"
)

// DefaultRefresh is the re-render cadence of the interactive view.
const DefaultRefresh = 100 * time.Millisecond

const timeStep = 10 * time.Second

var (
	clockStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	finishedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).PaddingLeft(1)
	quitTextStyle = lipgloss.NewStyle().Margin(1, 0, 1, 1)
	frameStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 3)
)

var helpKeys = []key.Binding{
	key.NewBinding(key.WithKeys(" "),
		key.WithHelp("space", "pause/resume")),
	key.NewBinding(key.WithKeys("s"),
		key.WithHelp("s", "stop")),
	key.NewBinding(key.WithKeys("r"),
		key.WithHelp("r", "restart")),
	key.NewBinding(key.WithKeys("+", "-"),
		key.WithHelp("+/-", "add/subtract 10s")),
	key.NewBinding(key.WithKeys("q"),
		key.WithHelp("q", "quit")),
}

type tickMsg time.Time

// Model is the interactive countdown view. All countdown state lives in the
// engine; the model only re-reads snapshots on each render.
type Model struct {
	engine   *countdown.Engine
	bar      progress.Model
	refresh  time.Duration
	quitting bool
}

func NewModel(engine *countdown.Engine, refresh time.Duration) Model {
	if refresh <= 0 {
		refresh = DefaultRefresh
	}
	return Model{
		engine:  engine,
		bar:     progress.New(progress.WithDefaultGradient()),
		refresh: refresh,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 12
		if width < 10 {
			width = 10
		}
		m.bar.Width = width
		return m, nil

	case tickMsg:
		// Re-render only; the engine advances on its own scheduler.
		return m, m.tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			m.engine.Toggle()
		case "s":
			m.engine.Stop()
		case "r":
			m.engine.Restart()
		case "+", "=":
			m.engine.AddTime(timeStep)
		case "-", "_":
			m.engine.SubtractTime(timeStep)
		case "q", "ctrl+c":
			m.engine.Stop()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	default:
		return m, nil
	}
}

func (m Model) View() string {
	snap := m.engine.Snapshot()
	if m.quitting {
		return quitTextStyle.Render(fmt.Sprintf("Stopped at %s", snap.Time))
	}

	clock := clockStyle.Render(snap.Time)
	if snap.IsFinished() {
		clock = finishedStyle.Render("Time's up!")
	}
	status := statusStyle.Render(snap.Status.String())

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, clock, "  ", status),
		"",
		m.bar.ViewAs(snap.Progress/100),
	)) + "\n" + helpStyle.Render(renderHelp())
}

func renderHelp() string {
	parts := make([]string, 0, len(helpKeys))
	for _, binding := range helpKeys {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return strings.Join(parts, " • ")
}

// Run drives the interactive view until the user quits.
func Run(engine *countdown.Engine, refresh time.Duration) error {
	p := tea.NewProgram(NewModel(engine, refresh))
	_, err := p.Run()
	return err
}
