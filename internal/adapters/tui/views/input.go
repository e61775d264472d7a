package views

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kamahir0/custom-explorer/internal/adapters/tui/styles"
)

// InputAction identifies what the prompted value is for.
type InputAction int

const (
	ActionNewGroup InputAction = iota
	ActionAddFile
	ActionImport
	ActionRename
)

// RequestInputMsg asks the app to show the input prompt.
type RequestInputMsg struct {
	Action  InputAction
	Prompt  string
	Initial string
}

// InputDoneMsg carries the prompt result back. An empty Value means the
// user abandoned the command; no mutation may happen in that case.
type InputDoneMsg struct {
	Action InputAction
	Value  string
}

// InputModel is a one-line prompt view backed by a text input.
type InputModel struct {
	input  textinput.Model
	action InputAction
	prompt string
	width  int
	height int
}

// NewInputModel creates the prompt view.
func NewInputModel() *InputModel {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60
	return &InputModel{input: ti}
}

// SetSize updates the view dimensions.
func (m *InputModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Begin focuses the prompt for a new request.
func (m *InputModel) Begin(req RequestInputMsg) tea.Cmd {
	m.action = req.Action
	m.prompt = req.Prompt
	m.input.SetValue(req.Initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Init initializes the prompt view.
func (m *InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles prompt input.
func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.input.Blur()
			return m, func() tea.Msg {
				return InputDoneMsg{Action: m.action}
			}
		case "enter":
			value := m.input.Value()
			m.input.Blur()
			return m, func() tea.Msg {
				return InputDoneMsg{Action: m.action, Value: value}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m *InputModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(m.prompt),
		m.input.View(),
		styles.Help.Render("enter confirm · esc cancel"),
	)
	return styles.App.Render(body)
}
