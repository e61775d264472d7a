package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	// Tree node styles
	NodeGroup = lipgloss.NewStyle().
			Bold(true)

	NodeFile = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	NodeMoveSource = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	// Severity decorations
	SeverityWarning = lipgloss.NewStyle().
			Foreground(Warning)

	SeverityError = lipgloss.NewStyle().
			Foreground(Error)

	// Status line
	StatusInfo = lipgloss.NewStyle().
			Foreground(Muted)

	StatusError = lipgloss.NewStyle().
			Foreground(Error)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)
)
