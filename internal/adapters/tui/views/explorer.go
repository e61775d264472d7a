package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamahir0/custom-explorer/internal/adapters/tui/styles"
	"github.com/kamahir0/custom-explorer/internal/domain"
	"github.com/kamahir0/custom-explorer/internal/explorer"
)

// ExplorerKeyMap defines key bindings for the tree view
type ExplorerKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Enter       key.Binding
	Mark        key.Binding
	NewGroup    key.Binding
	AddFile     key.Binding
	Import      key.Binding
	Rename      key.Binding
	Delete      key.Binding
	Move        key.Binding
	Paste       key.Binding
	CollapseAll key.Binding
	ExpandAll   key.Binding
	Escape      key.Binding
	Quit        key.Binding
}

var ExplorerKeys = ExplorerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Mark: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "mark"),
	),
	NewGroup: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new group"),
	),
	AddFile: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add file"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import dir"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move marked here"),
	),
	Paste: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "paste paths"),
	),
	CollapseAll: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "collapse all"),
	),
	ExpandAll: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "expand all"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear marks"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// FsEventsMsg carries a coalesced watcher batch onto the UI event loop,
// keeping every explorer mutation on the single Update goroutine.
type FsEventsMsg struct {
	Renames []explorer.RenamePair
	Deletes []string
}

type pasteMsg struct {
	payload string
	err     error
}

type row struct {
	node  *domain.Node
	depth int
}

// ExplorerModel is the tree view over the explorer forest.
type ExplorerModel struct {
	ex     *explorer.Explorer
	signal *Signal

	rows       []row
	cursor     int
	marked     map[string]*domain.Node
	width      int
	height     int
	message    string
	messageErr bool
}

// NewExplorerModel creates the tree view and wires itself in as the
// explorer's refresh surface.
func NewExplorerModel(ex *explorer.Explorer) *ExplorerModel {
	m := &ExplorerModel{
		ex:     ex,
		signal: NewSignal(),
		marked: make(map[string]*domain.Node),
	}
	ex.SetNotifier(m.signal)
	m.reflatten()
	return m
}

// SetSize updates the view dimensions.
func (m *ExplorerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init initializes the tree view.
func (m *ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tree view.
func (m *ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FsEventsMsg:
		if len(msg.Renames) > 0 {
			m.ex.OnRenamed(msg.Renames)
		}
		if len(msg.Deletes) > 0 {
			m.ex.OnDeleted(msg.Deletes)
		}
		m.afterMutation()
		return m, nil

	case pasteMsg:
		if msg.err != nil {
			m.setMessage(msg.err.Error(), true)
			return m, nil
		}
		applied := m.ex.DropPaths(msg.payload, m.insertTarget())
		m.afterMutation()
		m.setMessage(fmt.Sprintf("Added %d entries from clipboard", applied), false)
		return m, nil

	case InputDoneMsg:
		m.applyInput(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ExplorerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, ExplorerKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, ExplorerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, ExplorerKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, ExplorerKeys.Left):
		if node := m.selectedNode(); node != nil {
			if node.IsGroup() && node.Expanded() {
				m.ex.Toggle(node)
				m.afterMutation()
			} else if parent := m.ex.Parent(node); parent != nil {
				m.moveCursorTo(parent.ID)
			}
		}

	case key.Matches(msg, ExplorerKeys.Right):
		if node := m.selectedNode(); node != nil && node.IsGroup() && !node.Expanded() {
			m.ex.Toggle(node)
			m.afterMutation()
		}

	case key.Matches(msg, ExplorerKeys.Enter):
		if node := m.selectedNode(); node != nil && node.IsGroup() {
			m.ex.Toggle(node)
			m.afterMutation()
		}

	case key.Matches(msg, ExplorerKeys.Mark):
		if node := m.selectedNode(); node != nil {
			if _, ok := m.marked[node.ID]; ok {
				delete(m.marked, node.ID)
			} else {
				m.marked[node.ID] = node
			}
		}

	case key.Matches(msg, ExplorerKeys.NewGroup):
		return m, prompt(ActionNewGroup, "New group label", "")

	case key.Matches(msg, ExplorerKeys.AddFile):
		return m, prompt(ActionAddFile, "File path to add", "")

	case key.Matches(msg, ExplorerKeys.Import):
		return m, prompt(ActionImport, "Directory to import", "")

	case key.Matches(msg, ExplorerKeys.Rename):
		if node := m.selectedNode(); node != nil {
			return m, prompt(ActionRename, "Rename", node.Label)
		}

	case key.Matches(msg, ExplorerKeys.Delete):
		targets := m.markedOrSelected()
		if removed := m.ex.RemoveBatch(targets); removed > 0 {
			m.setMessage(fmt.Sprintf("Removed %d entries", removed), false)
		}
		m.marked = make(map[string]*domain.Node)
		m.afterMutation()

	case key.Matches(msg, ExplorerKeys.Move):
		if len(m.marked) == 0 {
			m.setMessage("Nothing marked to move", true)
			break
		}
		sources := make([]*domain.Node, 0, len(m.marked))
		for _, n := range m.marked {
			sources = append(sources, n)
		}
		if m.ex.Move(sources, m.selectedNode()) {
			m.setMessage(fmt.Sprintf("Moved %d entries", len(sources)), false)
		} else {
			m.setMessage("Move rejected", true)
		}
		m.marked = make(map[string]*domain.Node)
		m.afterMutation()

	case key.Matches(msg, ExplorerKeys.Paste):
		return m, readClipboard

	case key.Matches(msg, ExplorerKeys.CollapseAll):
		m.ex.CollapseRecursive(nil)
		m.afterMutation()

	case key.Matches(msg, ExplorerKeys.ExpandAll):
		m.ex.ExpandRecursive(nil)
		m.afterMutation()

	case key.Matches(msg, ExplorerKeys.Escape):
		m.marked = make(map[string]*domain.Node)
	}

	return m, nil
}

func prompt(action InputAction, text, initial string) tea.Cmd {
	return func() tea.Msg {
		return RequestInputMsg{Action: action, Prompt: text, Initial: initial}
	}
}

func readClipboard() tea.Msg {
	payload, err := clipboard.ReadAll()
	return pasteMsg{payload: payload, err: err}
}

// applyInput executes the operation a completed prompt asked for. An empty
// value abandons the whole command without mutating anything.
func (m *ExplorerModel) applyInput(msg InputDoneMsg) {
	value := strings.TrimSpace(msg.Value)
	if value == "" {
		m.setMessage("Cancelled", false)
		return
	}

	switch msg.Action {
	case ActionNewGroup:
		if _, err := m.ex.AddGroup(value, m.insertTarget()); err != nil {
			m.setMessage(err.Error(), true)
		}

	case ActionAddFile:
		if _, ok := m.ex.AddFile(value, m.insertTarget()); !ok {
			m.setMessage("Excluded by settings", true)
		}

	case ActionImport:
		group, err := m.ex.ImportDirectory(value, m.insertTarget())
		switch {
		case err != nil:
			m.setMessage(err.Error(), true)
		case group == nil:
			m.setMessage("Excluded by settings", true)
		default:
			m.setMessage(fmt.Sprintf("Imported %d entries", group.Count()), false)
		}

	case ActionRename:
		if err := m.ex.Rename(m.selectedNode(), value); err != nil {
			m.setMessage(err.Error(), true)
		}
	}

	m.afterMutation()
}

// insertTarget is the group new entries land in: the selected group, or
// the selected file's parent, or the forest root.
func (m *ExplorerModel) insertTarget() *domain.Node {
	node := m.selectedNode()
	if node == nil {
		return nil
	}
	if node.IsGroup() {
		return node
	}
	return m.ex.Parent(node)
}

func (m *ExplorerModel) markedOrSelected() []*domain.Node {
	if len(m.marked) > 0 {
		out := make([]*domain.Node, 0, len(m.marked))
		for _, n := range m.marked {
			out = append(out, n)
		}
		return out
	}
	if node := m.selectedNode(); node != nil {
		return []*domain.Node{node}
	}
	return nil
}

func (m *ExplorerModel) selectedNode() *domain.Node {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor].node
	}
	return nil
}

func (m *ExplorerModel) setMessage(text string, isErr bool) {
	m.message = text
	m.messageErr = isErr
}

// afterMutation re-derives the visible rows and consumes any pending
// refresh or reveal signal from the explorer.
func (m *ExplorerModel) afterMutation() {
	m.signal.TakeDirty()
	m.reflatten()
	if id, ok := m.signal.TakeReveal(); ok {
		m.revealNode(id)
	}
}

// reflatten rebuilds the visible row list from the forest, descending only
// into expanded groups.
func (m *ExplorerModel) reflatten() {
	m.rows = m.rows[:0]
	var walk func(n *domain.Node, depth int)
	walk = func(n *domain.Node, depth int) {
		m.rows = append(m.rows, row{node: n, depth: depth})
		if n.IsGroup() && n.Expanded() {
			for _, c := range n.Children {
				walk(c, depth+1)
			}
		}
	}
	for _, r := range m.ex.Roots() {
		walk(r, 0)
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// revealNode expands the node's ancestors and moves the cursor onto it.
func (m *ExplorerModel) revealNode(id string) {
	node := m.ex.NodeByID(id)
	if node == nil {
		return
	}
	for p := m.ex.Parent(node); p != nil; p = m.ex.Parent(p) {
		if !p.Expanded() {
			p.SetState(domain.StateExpanded)
		}
	}
	m.reflatten()
	m.moveCursorTo(id)
}

func (m *ExplorerModel) moveCursorTo(id string) {
	for i, r := range m.rows {
		if r.node.ID == id {
			m.cursor = i
			return
		}
	}
}

// View renders the tree view.
func (m *ExplorerModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Custom Explorer"))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(styles.StatusInfo.Render("Empty. Press n to add a group, i to import a directory."))
		b.WriteString("\n")
	}

	start, end := m.viewport()
	for _, r := range m.rows[start:end] {
		b.WriteString(m.renderRow(r))
		b.WriteString("\n")
	}

	if m.message != "" {
		style := styles.StatusInfo
		if m.messageErr {
			style = styles.StatusError
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(styles.Help.Render(
		"n new · a file · i import · r rename · d delete · space mark · m move · p paste · C/E fold · q quit"))
	return styles.App.Render(b.String())
}

func (m *ExplorerModel) renderRow(r row) string {
	node := r.node
	indent := strings.Repeat("  ", r.depth)

	icon := "· "
	if node.IsGroup() {
		if node.Expanded() {
			icon = "▾ "
		} else {
			icon = "▸ "
		}
	}

	label := node.Label
	switch m.ex.SeverityOf(node) {
	case domain.SeverityError:
		label = styles.SeverityError.Render(label)
	case domain.SeverityWarning:
		label = styles.SeverityWarning.Render(label)
	default:
		if node.IsGroup() {
			label = styles.NodeGroup.Render(label)
		} else {
			label = styles.NodeFile.Render(label)
		}
	}

	if _, ok := m.marked[node.ID]; ok {
		label = styles.NodeMoveSource.Render("✚ ") + label
	}
	if m.selectedNode() == node {
		label = styles.NodeSelected.Render("» ") + label
	}

	return indent + icon + label
}

// viewport clamps the rendered window around the cursor.
func (m *ExplorerModel) viewport() (int, int) {
	visible := m.height - 6
	if visible < 1 || visible >= len(m.rows) {
		return 0, len(m.rows)
	}
	start := m.cursor - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
		start = end - visible
	}
	return start, end
}
