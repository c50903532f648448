package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizmaker/internal/export"
	"quizmaker/internal/form"
)

// Model is the Bubble Tea terminal editor.
type Model struct {
	state    State
	input    textinput.Model
	exporter export.Exporter
	outDir   string
	noColor  bool
	width    int
}

// Options configures the terminal editor.
type Options struct {
	OutDir   string
	NoColor  bool
	Exporter export.Exporter
}

// NewModel constructs an editor model around an initial form.
func NewModel(initial form.Form, opts Options) Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Enter text..."
	m := Model{
		state:    State{Form: initial},
		input:    input,
		exporter: opts.Exporter,
		outDir:   opts.OutDir,
		noColor:  opts.NoColor,
	}
	m.syncInput()
	m.input.Focus()
	return m
}

// State returns the current editor state.
func (m Model) State() State {
	return m.state
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and export results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.input.Width = max(typed.Width-8, 10)
		return m, nil
	case ExportResultMsg:
		if typed.Err != nil {
			m.state = withStatus(m.state, typed.Err.Error(), true)
		} else {
			m.state = withStatus(m.state, "Saved "+typed.Path, false)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down", "enter":
		m.state = MoveFocus(m.state, 1)
	case "shift+tab", "up":
		m.state = MoveFocus(m.state, -1)
	case "ctrl+t":
		m.state = ToggleFocused(m.state)
		return m, nil
	case "ctrl+g":
		m.state = CycleGroup(m.state)
		return m, nil
	case "ctrl+n":
		m.state = CycleCount(m.state)
	case "pgup":
		m.state = ShiftDueDate(m.state, 1)
		return m, nil
	case "pgdown":
		m.state = ShiftDueDate(m.state, -1)
		return m, nil
	case "ctrl+s":
		return m, exportCmd(m.exporter, m.outDir, m.state.Form)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		m.state = SetFocusedText(m.state, m.input.Value())
		m.state.Status = ""
		return m, cmd
	}
	m.syncInput()
	return m, nil
}

// syncInput loads the focused field into the text input.
func (m *Model) syncInput() {
	m.input.SetValue(m.state.FocusedText())
	m.input.CursorEnd()
}

// View renders the editor.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.state, m.noColor),
		renderQuestions(m.state, m.input.View(), m.noColor),
		renderStatus(m.state, m.noColor),
		renderHelp(m.noColor),
	)
}

// ExportResultMsg reports the outcome of an export started with ctrl+s.
type ExportResultMsg struct {
	Path string
	Err  error
}

// exportCmd serializes the form and writes the file into dir.
func exportCmd(exporter export.Exporter, dir string, f form.Form) tea.Cmd {
	return func() tea.Msg {
		file, err := exporter.Export(context.Background(), f)
		if exportErr, _ := export.SplitError(err); exportErr != nil {
			return ExportResultMsg{Err: exportErr}
		}
		path, writeErr := export.WriteFile(dir, file)
		if writeErr != nil {
			return ExportResultMsg{Err: writeErr}
		}
		return ExportResultMsg{Path: path}
	}
}
