package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamahir0/custom-explorer/internal/adapters/tui/views"
	"github.com/kamahir0/custom-explorer/internal/explorer"
)

// ViewState represents the current view
type ViewState int

const (
	ViewExplorer ViewState = iota
	ViewInput
)

// App is the main TUI application model
type App struct {
	state ViewState
	tree  *views.ExplorerModel
	input *views.InputModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(ex *explorer.Explorer) *App {
	return &App{
		state: ViewExplorer,
		tree:  views.NewExplorerModel(ex),
		input: views.NewInputModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.tree.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.tree.SetSize(msg.Width, msg.Height)
		a.input.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.RequestInputMsg:
		a.state = ViewInput
		return a, a.input.Begin(msg)

	case views.InputDoneMsg:
		a.state = ViewExplorer
		_, cmd := a.tree.Update(msg)
		return a, cmd

	// Watcher batches always go to the tree, whatever view is active.
	case views.FsEventsMsg:
		_, cmd := a.tree.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewExplorer:
		_, cmd = a.tree.Update(msg)
	case ViewInput:
		_, cmd = a.input.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewInput {
		return a.input.View()
	}
	return a.tree.View()
}
