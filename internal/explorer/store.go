package explorer

import (
	"path/filepath"
	"strings"

	"github.com/kamahir0/custom-explorer/internal/domain"
)

// AddGroup creates a group node under parent (or at the forest root when
// parent is nil or not a group) and expands the parent.
func (e *Explorer) AddGroup(label string, parent *domain.Node) (*domain.Node, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, &ValidationError{Field: "label", Message: "label is required"}
	}
	g := domain.NewGroup(label)
	e.attach(g, parent)
	e.commit()
	return g, nil
}

// AddFile creates a file node labeled by the path's basename, with the same
// placement rule as AddGroup. A basename matching the exclusion predicate
// is silently a no-op; the second result reports whether a node was added.
func (e *Explorer) AddFile(path string, parent *domain.Node) (*domain.Node, bool) {
	n, added := e.addFileQuiet(path, parent)
	if added {
		e.commit()
	}
	return n, added
}

func (e *Explorer) addFileQuiet(path string, parent *domain.Node) (*domain.Node, bool) {
	path = filepath.Clean(path)
	if e.excluded(filepath.Base(path)) {
		return nil, false
	}
	f := domain.NewFile(path)
	e.attach(f, parent)
	return f, true
}

// Rename changes a node's display label in place. FilePath is untouched:
// renaming is a logical-view operation, never a disk rename.
func (e *Explorer) Rename(n *domain.Node, newLabel string) error {
	if n == nil || e.byID[n.ID] == nil {
		return ErrNotFound
	}
	newLabel = strings.TrimSpace(newLabel)
	if newLabel == "" {
		return &ValidationError{Field: "label", Message: "label is required"}
	}
	n.Label = newLabel
	e.commit()
	return nil
}

// Remove deletes n and its subtree. With save false the commit tail is
// deferred, letting batch callers pay for one sort/reindex/persist/refresh
// cycle instead of one per node. Returns whether a removal occurred.
func (e *Explorer) Remove(n *domain.Node, save bool) bool {
	if n == nil || e.byID[n.ID] == nil {
		return false
	}
	if !e.detach(n) {
		return false
	}
	e.unregister(n)
	if save {
		e.commit()
	}
	return true
}

// RemoveBatch removes a multi-selection with a single deferred commit.
// Nodes whose ancestor was removed earlier in the batch are already gone
// and do not count.
func (e *Explorer) RemoveBatch(nodes []*domain.Node) int {
	removed := 0
	for _, n := range nodes {
		if e.Remove(n, false) {
			removed++
		}
	}
	if removed > 0 {
		e.commit()
	}
	return removed
}

// excluded applies the configured suffix predicate to a basename. The
// suffix set is read from settings on every call.
func (e *Explorer) excluded(name string) bool {
	for _, suffix := range e.settings.ExcludedSuffixes() {
		if suffix != "" && strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
