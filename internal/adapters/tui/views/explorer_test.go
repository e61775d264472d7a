package views

import (
	"testing"

	"github.com/kamahir0/custom-explorer/internal/explorer"
	"github.com/kamahir0/custom-explorer/internal/ports"
)

type memStore struct {
	data map[string][]byte
}

func (s *memStore) Load(key string) ([]byte, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStore) Save(key string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Close() error { return nil }

type memFS struct{}

func (memFS) Exists(string) bool { return false }

func (memFS) IsDir(string) (bool, error) { return false, nil }

func (memFS) ReadDir(string) ([]ports.DirEntry, error) { return nil, nil }

type memSettings struct{}

func (memSettings) ExcludedSuffixes() []string { return nil }

func newTestModel(t *testing.T) (*ExplorerModel, *explorer.Explorer) {
	t.Helper()
	ex := explorer.New(&memStore{data: map[string][]byte{}}, memFS{}, memSettings{})
	if err := ex.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return NewExplorerModel(ex), ex
}

func TestReflatten_SkipsCollapsedSubtrees(t *testing.T) {
	m, ex := newTestModel(t)

	docs, err := ex.AddGroup("docs", nil)
	if err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if _, err := ex.AddGroup("guides", docs); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	m.reflatten()

	// Adding expands the parent chain, so both groups are visible.
	if len(m.rows) != 2 {
		t.Fatalf("expected 2 visible rows, got %d", len(m.rows))
	}

	ex.Toggle(docs)
	m.reflatten()

	if len(m.rows) != 1 {
		t.Fatalf("expected collapsed forest to show 1 row, got %d", len(m.rows))
	}
	if m.rows[0].node != docs {
		t.Errorf("expected docs as the only row, got %q", m.rows[0].node.Label)
	}
}

func TestInsertTarget_FileSelectsParent(t *testing.T) {
	m, ex := newTestModel(t)

	docs, err := ex.AddGroup("docs", nil)
	if err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if _, err := ex.AddGroup("guides", docs); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	m.reflatten()

	// Cursor on a root group targets that group.
	m.cursor = 0
	if got := m.insertTarget(); got != docs {
		t.Errorf("expected docs as target, got %v", got)
	}

	// An empty forest targets the root.
	m.rows = nil
	if got := m.insertTarget(); got != nil {
		t.Errorf("expected nil target for empty rows, got %v", got)
	}
}

func TestApplyInput_EmptyValueMutatesNothing(t *testing.T) {
	m, ex := newTestModel(t)

	m.applyInput(InputDoneMsg{Action: ActionNewGroup, Value: "   "})

	if len(ex.Roots()) != 0 {
		t.Errorf("abandoned prompt created %d roots", len(ex.Roots()))
	}
}

func TestRevealNode_ExpandsAncestorsAndMovesCursor(t *testing.T) {
	m, ex := newTestModel(t)

	docs, err := ex.AddGroup("docs", nil)
	if err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	guides, err := ex.AddGroup("guides", docs)
	if err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	ex.CollapseRecursive(nil)
	m.reflatten()

	m.revealNode(guides.ID)

	if !docs.Expanded() {
		t.Error("expected docs expanded after reveal")
	}
	if got := m.selectedNode(); got != guides {
		t.Errorf("expected cursor on guides, got %v", got)
	}
}
