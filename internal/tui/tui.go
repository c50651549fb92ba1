// Package tui runs the pontoon shell inside a Bubble Tea program: the current
// screen in a scrollable viewport above a one-line input.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pontoon/internal/shell"
)

// inputHeight is the input pane including its border and help line
const inputHeight = 4

// Model is the Bubble Tea model wrapping a shell
type Model struct {
	shell  *shell.Shell
	logger *log.Logger

	screen viewport.Model
	input  textinput.Model

	content  string
	width    int
	height   int
	quitting bool
}

// New creates a model and shows the shell's first screen
func New(sh *shell.Shell, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	vp := viewport.New(10, 5)

	ti := textinput.New()
	ti.Placeholder = "Type a number and press enter"
	ti.Focus()
	ti.CharLimit = shell.MaxLineBytes - 1
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = PromptStyle
	ti.TextStyle = InputTextStyle

	m := &Model{
		shell:  sh,
		logger: logger.WithPrefix("tui"),
		screen: vp,
		input:  ti,
	}
	m.show(sh.Start(), false)
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	if m.shell.Done() {
		return tea.Quit
	}
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Width = max(msg.Width-2, 1)
		m.screen.Height = max(msg.Height-inputHeight-2, 1)
		// the offset was clamped for the old height
		m.screen.SetContent(m.content)
		m.screen.GotoBottom()
		m.logger.Debug("Resized", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// leaves without saving, like closing stdin
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			m.show(m.shell.Submit(line+"\n"), m.shell.Rejected())
			if m.shell.Done() {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.screen, cmd = m.screen.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// show replaces the screen with text, or appends it when the input was
// rejected so the prompt stays visible.
func (m *Model) show(text string, appendLine bool) {
	switch {
	case text == "":
		return
	case appendLine:
		m.content = strings.TrimRight(m.content, "\n") + "\n" + text
	default:
		m.content = text
	}
	m.screen.SetContent(m.content)
	m.screen.GotoBottom()
}

// Content returns the text of the current screen
func (m *Model) Content() string {
	return m.content
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	screen := ScreenPaneStyle.
		Width(max(m.width-2, 1)).
		Height(m.screen.Height).
		Render(m.screen.View())

	input := InputPaneStyle.
		Width(max(m.width-2, 1)).
		Render(m.input.View() + "\n" + HelpStyle.Render("enter: submit • pgup/pgdn: scroll • esc: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, screen, input)
}

// Run drives sh in a full-screen Bubble Tea program
func Run(sh *shell.Shell, logger *log.Logger, opts ...tea.ProgramOption) error {
	m := New(sh, logger)
	if sh.Done() {
		return sh.Err()
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return sh.Err()
}
