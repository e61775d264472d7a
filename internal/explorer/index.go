package explorer

import "github.com/kamahir0/custom-explorer/internal/domain"

// reindex derives the two lookup maps from the current forest by full
// traversal and recomputes every node's cached tree path. It runs as part
// of every structural commit; both maps describe exactly the forest state
// as of this rebuild.
func (e *Explorer) reindex() {
	e.byPath = make(map[string]*domain.Node)
	e.byTreePath = make(map[string]*domain.Node)
	for _, r := range e.roots {
		e.indexSubtree(r, "")
	}
}

func (e *Explorer) indexSubtree(n *domain.Node, prefix string) {
	tp := n.Label
	if prefix != "" {
		tp = prefix + "/" + n.Label
	}
	n.TreePath = tp

	if n.FilePath != "" {
		e.byPath[n.FilePath] = n
	}
	// Sibling labels may collide; the first (canonically sorted) node wins,
	// keeping tree-path resolution deterministic.
	if _, taken := e.byTreePath[tp]; !taken {
		e.byTreePath[tp] = n
	}

	for _, c := range n.Children {
		e.indexSubtree(c, tp)
	}
}
