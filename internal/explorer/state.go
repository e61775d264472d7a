package explorer

import "github.com/kamahir0/custom-explorer/internal/domain"

// Toggle flips one group's presentation flag. Presentation changes skip the
// index rebuild because logical paths are unaffected.
func (e *Explorer) Toggle(n *domain.Node) {
	if n == nil || !n.IsGroup() || e.byID[n.ID] == nil {
		return
	}
	if n.Expanded() {
		n.SetState(domain.StateCollapsed)
	} else {
		n.SetState(domain.StateExpanded)
	}
	e.commitState(e.refreshTarget(n))
}

// ExpandRecursive expands n and every group below it; with nil it expands
// the whole forest.
func (e *Explorer) ExpandRecursive(n *domain.Node) {
	e.setStateRecursive(n, domain.StateExpanded)
}

// CollapseRecursive collapses n and every group below it; with nil it
// collapses the whole forest.
func (e *Explorer) CollapseRecursive(n *domain.Node) {
	e.setStateRecursive(n, domain.StateCollapsed)
}

func (e *Explorer) setStateRecursive(n *domain.Node, st domain.CollapsibleState) {
	refreshID := ""
	if n != nil {
		if e.byID[n.ID] == nil {
			return
		}
		resetState(n, st)
		refreshID = e.refreshTarget(n)
	} else {
		for _, r := range e.roots {
			resetState(r, st)
		}
	}
	e.commitState(refreshID)
}

// resetState unconditionally reapplies the flag to every group in the
// subtree, bumping each presentation version so the host re-renders them.
func resetState(n *domain.Node, st domain.CollapsibleState) {
	n.Walk(func(d *domain.Node) bool {
		if d.IsGroup() {
			d.SetState(st)
		}
		return true
	})
}

// refreshTarget picks the node whose subtree the host must re-render after
// a presentation change on n: its parent, or the whole tree for roots.
func (e *Explorer) refreshTarget(n *domain.Node) string {
	if p := e.Parent(n); p != nil {
		return p.ID
	}
	return ""
}
