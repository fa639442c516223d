package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tomato/internal/core/model"
	"tomato/internal/core/timekeeper"
	"tomato/internal/ui/preferences"
)

// Commands are the timer operations bound to keys.
type Commands interface {
	Start()
	Pause()
	Reset()
	UpdateSettings(workMinutes, breakMinutes int) error
}

type editStep int

const (
	editNone editStep = iota
	editWork
	editBreak
)

// Model is the bubbletea model for the terminal timer.
type Model struct {
	Theme Theme

	commands    Commands
	view        timekeeper.View
	config      model.TimerConfig
	step        editStep
	input       textinput.Model
	pendingWork int
	status      string
	err         error
}

// NewModel creates the terminal model showing initial until the first ViewMsg.
func NewModel(commands Commands, initial timekeeper.View, config model.TimerConfig) Model {
	input := textinput.New()
	input.CharLimit = 3
	input.Width = 6
	input.Prompt = "> "

	return Model{
		Theme:    DefaultTheme,
		commands: commands,
		view:     initial,
		config:   config,
		input:    input,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.view.Title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ViewMsg:
		m.view = timekeeper.View(msg)
		return m, tea.SetWindowTitle(m.view.Title)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.step != editNone {
			return m.updateEditing(msg)
		}
		return m.updateTimer(msg)
	}
	return m, nil
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", " ":
		m.commands.Start()
		m.status, m.err = "", nil
	case "p":
		m.commands.Pause()
		m.status, m.err = "", nil
	case "r":
		m.commands.Reset()
		m.status, m.err = "", nil
	case "e":
		m.step = editWork
		m.err = nil
		m.input.SetValue(strconv.Itoa(m.config.WorkMinutes))
		m.input.CursorEnd()
		return m, m.input.Focus()
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.step = editNone
		m.input.Blur()
		m.status = "Settings unchanged"
		return m, nil
	case tea.KeyEnter:
		return m.submitStep()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitStep() (tea.Model, tea.Cmd) {
	if m.step == editWork {
		workMinutes, err := preferences.ParseMinutes(model.FieldWorkMinutes, m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.pendingWork = workMinutes
		m.step = editBreak
		m.err = nil
		m.input.SetValue(strconv.Itoa(m.config.BreakMinutes))
		m.input.CursorEnd()
		return m, nil
	}

	breakMinutes, err := preferences.ParseMinutes(model.FieldBreakMinutes, m.input.Value())
	if err != nil {
		m.err = err
		return m, nil
	}

	m.step = editNone
	m.input.Blur()
	if err := m.commands.UpdateSettings(m.pendingWork, breakMinutes); err != nil {
		m.err = err
		m.status = ""
		return m, nil
	}
	m.config = model.TimerConfig{WorkMinutes: m.pendingWork, BreakMinutes: breakMinutes}
	m.err = nil
	m.status = "Settings saved"
	return m, nil
}

func (m Model) View() string {
	theme := m.Theme
	phaseStyle := theme.Work
	if m.view.Phase == timekeeper.PhaseBreak {
		phaseStyle = theme.Break
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(timekeeper.AppTitle))
	b.WriteString("\n\n")
	b.WriteString(phaseStyle.Render(strings.ToUpper(m.view.PhaseLabel)))
	b.WriteString("  ")
	b.WriteString(theme.Dim.Render(stateLabel(m.view)))
	b.WriteString("\n")
	b.WriteString(theme.Clock.Render(m.view.Clock))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Completed: %d", m.view.CompletedCycles))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render(fmt.Sprintf("work %d min, break %d min", m.config.WorkMinutes, m.config.BreakMinutes)))
	b.WriteString("\n\n")

	switch m.step {
	case editWork:
		b.WriteString(fmt.Sprintf("Work minutes (%d-%d):\n", model.MinWorkMinutes, model.MaxWorkMinutes))
		b.WriteString(theme.Input.Render(m.input.View()))
		b.WriteString("\n")
		b.WriteString(theme.Dim.Render("enter next, esc cancel"))
	case editBreak:
		b.WriteString(fmt.Sprintf("Break minutes (%d-%d):\n", model.MinBreakMinutes, model.MaxBreakMinutes))
		b.WriteString(theme.Input.Render(m.input.View()))
		b.WriteString("\n")
		b.WriteString(theme.Dim.Render("enter save, esc cancel"))
	default:
		b.WriteString(theme.Dim.Render("s start  p pause  r reset  e settings  q quit"))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.Error.Render(m.err.Error()))
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Status.Render(m.status))
	}

	return theme.Base.Render(b.String())
}

func stateLabel(view timekeeper.View) string {
	switch {
	case view.Paused:
		return "paused"
	case view.Running:
		return "running"
	default:
		return "stopped"
	}
}
