// Package explorer owns the node forest and its consistency machinery: the
// arena-backed node store, the two derived lookup indexes, canonical
// sorting, the directory import pipeline, drag-and-drop reconciliation, and
// the external-event reconciler.
//
// All mutation entry points run synchronously on the host's single event
// loop; the only invariant callers must respect is that the indexes are
// never read between a structural mutation and its paired rebuild, which
// the commit helper enforces by running sort, reindex, persist, and notify
// as one tail.
package explorer

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/kamahir0/custom-explorer/internal/domain"
	"github.com/kamahir0/custom-explorer/internal/logging"
	"github.com/kamahir0/custom-explorer/internal/ports"
)

// StateKey is the single persistence key the forest is stored under.
const StateKey = "customExplorer.tree"

// Explorer is the process-scoped forest plus its derived indexes.
type Explorer struct {
	roots []*domain.Node

	// Arena indexes, maintained incrementally on every attach/detach.
	byID     map[string]*domain.Node
	parentOf map[string]string // child ID -> parent ID; roots are absent

	// Lookup indexes, rebuilt wholesale by reindex. Valid only for the
	// forest state as of the last rebuild.
	byPath     map[string]*domain.Node
	byTreePath map[string]*domain.Node

	store    ports.StateStore
	fs       ports.FileSystem
	settings ports.Settings
	notifier ports.Notifier
	diags    ports.Diagnostics
}

// Option configures optional collaborators.
type Option func(*Explorer)

// WithNotifier wires the host UI refresh surface.
func WithNotifier(n ports.Notifier) Option {
	return func(e *Explorer) { e.notifier = n }
}

// WithDiagnostics wires the problem-aggregation source used for severity
// decoration.
func WithDiagnostics(d ports.Diagnostics) Option {
	return func(e *Explorer) { e.diags = d }
}

type noDiagnostics struct{}

func (noDiagnostics) SeverityOf(string) domain.Severity { return domain.SeverityNone }

// New creates an empty explorer over the given collaborators. Call Load to
// bring in the persisted forest.
func New(store ports.StateStore, fs ports.FileSystem, settings ports.Settings, opts ...Option) *Explorer {
	e := &Explorer{
		byID:       make(map[string]*domain.Node),
		parentOf:   make(map[string]string),
		byPath:     make(map[string]*domain.Node),
		byTreePath: make(map[string]*domain.Node),
		store:      store,
		fs:         fs,
		settings:   settings,
		notifier:   ports.NopNotifier{},
		diags:      noDiagnostics{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetNotifier replaces the refresh surface. The TUI wires itself in after
// the program starts.
func (e *Explorer) SetNotifier(n ports.Notifier) {
	e.notifier = n
}

// Load reads the persisted forest from the state store. A missing key
// yields an empty forest. Node IDs are regenerated when absent or
// duplicated in the stored form.
func (e *Explorer) Load() error {
	data, ok, err := e.store.Load(StateKey)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if ok && len(data) > 0 {
		var roots []*domain.Node
		if err := json.Unmarshal(data, &roots); err != nil {
			return fmt.Errorf("decode state: %w", err)
		}
		e.roots = roots
	}
	e.rebuildArena()
	domain.SortForest(e.roots)
	e.reindex()
	return nil
}

// Roots returns the ordered top-level entries.
func (e *Explorer) Roots() []*domain.Node {
	return e.roots
}

// NodeByID resolves a node by its stable identifier.
func (e *Explorer) NodeByID(id string) *domain.Node {
	return e.byID[id]
}

// NodeByPath resolves a node by its recorded absolute filesystem path.
func (e *Explorer) NodeByPath(path string) *domain.Node {
	return e.byPath[path]
}

// NodeByTreePath resolves a node by its logical slash-joined label path.
func (e *Explorer) NodeByTreePath(treePath string) *domain.Node {
	return e.byTreePath[treePath]
}

// Parent returns the immediate owner of n, or nil for root entries.
func (e *Explorer) Parent(n *domain.Node) *domain.Node {
	if n == nil {
		return nil
	}
	pid, ok := e.parentOf[n.ID]
	if !ok {
		return nil
	}
	return e.byID[pid]
}

// commit is the saveAndRefresh tail every structural mutation must end
// with: canonical sort, index rebuild, persistence write, UI refresh, in
// that order. Batch operations apply all their mutations first and commit
// once.
func (e *Explorer) commit() {
	domain.SortForest(e.roots)
	e.reindex()
	e.persist()
	e.notifier.RefreshAll()
}

// commitState is the tail for pure presentation changes. Logical paths are
// unaffected, so the lookup indexes stay valid and are not rebuilt; the
// refresh targets the affected node's parent, or the whole tree when
// refreshID is empty.
func (e *Explorer) commitState(refreshID string) {
	domain.SortForest(e.roots)
	e.persist()
	if refreshID == "" {
		e.notifier.RefreshAll()
	} else {
		e.notifier.RefreshNode(refreshID)
	}
}

// persist overwrites the stored forest wholesale. A failed write never
// fails the enclosing operation; the in-memory forest stays authoritative.
func (e *Explorer) persist() {
	data, err := json.Marshal(e.roots)
	if err != nil {
		logging.L().Error("encode state", zap.Error(err))
		return
	}
	if err := e.store.Save(StateKey, data); err != nil {
		logging.L().Warn("state save failed", zap.Error(err))
	}
}

// place appends n under parent (or to the forest root) and registers its
// subtree in the arena. It does not touch the parent's presentation state.
func (e *Explorer) place(n *domain.Node, parent *domain.Node) {
	if parent != nil && parent.IsGroup() {
		parent.Children = append(parent.Children, n)
		e.register(n, parent.ID)
	} else {
		e.roots = append(e.roots, n)
		e.register(n, "")
	}
}

// attach is place plus the expand-the-parent rule applied by explicit adds
// and drops.
func (e *Explorer) attach(n *domain.Node, parent *domain.Node) {
	e.place(n, parent)
	if parent != nil && parent.IsGroup() && !parent.Expanded() {
		parent.SetState(domain.StateExpanded)
	}
}

// detach removes n from its sibling list and drops its parent link. The
// subtree stays registered so it can be reattached (moves) or unregistered
// (removals) by the caller.
func (e *Explorer) detach(n *domain.Node) bool {
	pid, ok := e.parentOf[n.ID]
	if !ok {
		for i, r := range e.roots {
			if r.ID == n.ID {
				e.roots = append(e.roots[:i], e.roots[i+1:]...)
				return true
			}
		}
		return false
	}
	parent := e.byID[pid]
	if parent == nil {
		return false
	}
	for i, c := range parent.Children {
		if c.ID == n.ID {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			delete(e.parentOf, n.ID)
			return true
		}
	}
	return false
}

// register records n and its descendants in the arena indexes.
func (e *Explorer) register(n *domain.Node, parentID string) {
	if parentID == "" {
		delete(e.parentOf, n.ID)
	} else {
		e.parentOf[n.ID] = parentID
	}
	e.byID[n.ID] = n
	for _, c := range n.Children {
		e.register(c, n.ID)
	}
}

// unregister removes n's subtree from the arena indexes.
func (e *Explorer) unregister(n *domain.Node) {
	n.Walk(func(d *domain.Node) bool {
		delete(e.byID, d.ID)
		delete(e.parentOf, d.ID)
		return true
	})
}

// rebuildArena rebuilds byID and parentOf from the forest, repairing IDs
// that are missing or duplicated in a freshly loaded state.
func (e *Explorer) rebuildArena() {
	e.byID = make(map[string]*domain.Node)
	e.parentOf = make(map[string]string)
	for _, r := range e.roots {
		e.normalize(r, "")
	}
}

func (e *Explorer) normalize(n *domain.Node, parentID string) {
	if n.ID == "" || e.byID[n.ID] != nil {
		fresh := domain.NewGroup(n.Label)
		n.ID = fresh.ID
	}
	if !n.IsGroup() {
		n.State = domain.StateNone
		n.Children = nil
	}
	e.byID[n.ID] = n
	if parentID != "" {
		e.parentOf[n.ID] = parentID
	}
	for _, c := range n.Children {
		e.normalize(c, n.ID)
	}
}
