package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator performs locale-aware label comparison. The explorer runs on a
// single event loop, so sharing one collator is safe.
var collator = collate.New(language.Und, collate.IgnoreCase)

// Less is the canonical sibling comparator: groups sort before files, ties
// within the same type break by locale-aware ascending label order.
func Less(a, b *Node) bool {
	if a.Type != b.Type {
		return a.Type == TypeGroup
	}
	return collator.CompareString(a.Label, b.Label) < 0
}

// SortSiblings orders one sibling list canonically.
func SortSiblings(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return Less(nodes[i], nodes[j])
	})
}

// SortForest applies the canonical order to every sibling list in the
// forest, depth-first. The result is independent of insertion history.
func SortForest(roots []*Node) {
	SortSiblings(roots)
	for _, r := range roots {
		sortSubtree(r)
	}
}

func sortSubtree(n *Node) {
	if len(n.Children) == 0 {
		return
	}
	SortSiblings(n.Children)
	for _, c := range n.Children {
		sortSubtree(c)
	}
}
