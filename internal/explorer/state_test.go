package explorer

import (
	"testing"

	"github.com/kamahir0/custom-explorer/internal/domain"
)

func TestToggle(t *testing.T) {
	f := newFixture(t)
	g := mustAddGroup(t, f.ex, "g", nil)
	leaf, _ := f.ex.AddFile("/p/leaf.txt", g)

	g.SetState(domain.StateCollapsed)
	version := g.Version

	f.ex.Toggle(g)
	if !g.Expanded() {
		t.Error("toggle did not expand")
	}
	if g.Version <= version {
		t.Error("presentation version not bumped")
	}

	f.ex.Toggle(g)
	if g.Expanded() {
		t.Error("toggle did not collapse")
	}

	// Files have no presentation state to toggle.
	f.ex.Toggle(leaf)
	if leaf.State != domain.StateNone {
		t.Errorf("file state = %v", leaf.State)
	}
}

func TestCollapseRecursiveTargeted(t *testing.T) {
	f := newFixture(t)
	top := mustAddGroup(t, f.ex, "top", nil)
	mid := mustAddGroup(t, f.ex, "mid", top)
	deep := mustAddGroup(t, f.ex, "deep", mid)

	f.ex.ExpandRecursive(nil)
	saves := f.store.saves
	f.notifier.refreshNode = nil

	f.ex.CollapseRecursive(mid)

	if mid.Expanded() || deep.Expanded() {
		t.Error("subtree not collapsed")
	}
	if !top.Expanded() {
		t.Error("node outside the target subtree was collapsed")
	}
	if f.store.saves-saves != 1 {
		t.Errorf("persistence writes = %d, want 1", f.store.saves-saves)
	}
	// Targeted refresh of the affected node's parent, not the whole tree.
	if len(f.notifier.refreshNode) != 1 || f.notifier.refreshNode[0] != top.ID {
		t.Errorf("refreshed = %v, want [%s]", f.notifier.refreshNode, top.ID)
	}
}

func TestExpandRecursiveWholeForest(t *testing.T) {
	f := newFixture(t)
	a := mustAddGroup(t, f.ex, "a", nil)
	sub := mustAddGroup(t, f.ex, "sub", a)
	b := mustAddGroup(t, f.ex, "b", nil)
	f.ex.CollapseRecursive(nil)

	refreshes := f.notifier.refreshAll
	f.ex.ExpandRecursive(nil)

	for _, g := range []*domain.Node{a, sub, b} {
		if !g.Expanded() {
			t.Errorf("%q not expanded", g.Label)
		}
	}
	if f.notifier.refreshAll-refreshes != 1 {
		t.Errorf("whole-forest reset refreshes = %d, want 1", f.notifier.refreshAll-refreshes)
	}
}

func TestRecursiveResetAlwaysBumpsVersion(t *testing.T) {
	f := newFixture(t)
	g := mustAddGroup(t, f.ex, "g", nil)
	f.ex.CollapseRecursive(nil)
	version := g.Version

	// Re-applying the same flag still forces a re-render.
	f.ex.CollapseRecursive(nil)
	if g.Version <= version {
		t.Error("reapplying state did not bump the presentation version")
	}
}
