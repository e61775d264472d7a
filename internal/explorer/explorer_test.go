package explorer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/kamahir0/custom-explorer/internal/domain"
	"github.com/kamahir0/custom-explorer/internal/ports"
)

// --- test fakes ---

type fakeStore struct {
	data  map[string][]byte
	saves int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) Load(key string) ([]byte, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Save(key string, value []byte) error {
	s.saves++
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *fakeStore) Close() error { return nil }

type fakeFS struct {
	isDir   map[string]bool
	entries map[string][]ports.DirEntry
	fail    map[string]error
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		isDir:   make(map[string]bool),
		entries: make(map[string][]ports.DirEntry),
		fail:    make(map[string]error),
	}
}

func (f *fakeFS) addDir(path string)  { f.ensure(filepath.Clean(path), true) }
func (f *fakeFS) addFile(path string) { f.ensure(filepath.Clean(path), false) }

func (f *fakeFS) ensure(path string, dir bool) {
	if _, ok := f.isDir[path]; ok {
		return
	}
	f.isDir[path] = dir
	parent := filepath.Dir(path)
	if parent != path {
		f.ensure(parent, true)
		f.entries[parent] = append(f.entries[parent], ports.DirEntry{
			Name: filepath.Base(path), Dir: dir,
		})
	}
}

func (f *fakeFS) Exists(path string) bool {
	_, ok := f.isDir[path]
	return ok
}

func (f *fakeFS) IsDir(path string) (bool, error) {
	dir, ok := f.isDir[path]
	if !ok {
		return false, errors.New("no such path")
	}
	return dir, nil
}

func (f *fakeFS) ReadDir(path string) ([]ports.DirEntry, error) {
	if err := f.fail[path]; err != nil {
		return nil, err
	}
	return f.entries[path], nil
}

type fakeSettings struct {
	suffixes []string
}

func (s *fakeSettings) ExcludedSuffixes() []string { return s.suffixes }

type recNotifier struct {
	refreshAll  int
	refreshNode []string
	revealed    []string
	visible     bool
}

func (n *recNotifier) RefreshAll() { n.refreshAll++ }

func (n *recNotifier) RefreshNode(id string) { n.refreshNode = append(n.refreshNode, id) }

func (n *recNotifier) Reveal(id string) { n.revealed = append(n.revealed, id) }

func (n *recNotifier) Visible() bool { return n.visible }

type fakeDiags struct {
	severities map[string]domain.Severity
	lookups    int
}

func (d *fakeDiags) SeverityOf(path string) domain.Severity {
	d.lookups++
	return d.severities[path]
}

type fixture struct {
	ex       *Explorer
	store    *fakeStore
	fs       *fakeFS
	settings *fakeSettings
	notifier *recNotifier
	diags    *fakeDiags
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    newFakeStore(),
		fs:       newFakeFS(),
		settings: &fakeSettings{},
		notifier: &recNotifier{},
		diags:    &fakeDiags{severities: make(map[string]domain.Severity)},
	}
	f.ex = New(f.store, f.fs, f.settings,
		WithNotifier(f.notifier), WithDiagnostics(f.diags))
	if err := f.ex.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return f
}

func mustAddGroup(t *testing.T, ex *Explorer, label string, parent *domain.Node) *domain.Node {
	t.Helper()
	g, err := ex.AddGroup(label, parent)
	if err != nil {
		t.Fatalf("AddGroup(%q): %v", label, err)
	}
	return g
}

// --- node store ---

func TestAddGroupPlacement(t *testing.T) {
	f := newFixture(t)

	b := mustAddGroup(t, f.ex, "b", nil)
	a := mustAddGroup(t, f.ex, "a", nil)
	child := mustAddGroup(t, f.ex, "child", b)

	roots := f.ex.Roots()
	if len(roots) != 2 {
		t.Fatalf("roots = %d, want 2", len(roots))
	}
	if roots[0] != a || roots[1] != b {
		t.Errorf("roots not canonically sorted: %q, %q", roots[0].Label, roots[1].Label)
	}
	if !b.Expanded() {
		t.Error("parent not expanded after add")
	}
	if got := f.ex.Parent(child); got != b {
		t.Errorf("Parent(child) = %v, want b", got)
	}
	if f.ex.Parent(a) != nil {
		t.Error("root node has a parent")
	}
}

func TestAddGroupEmptyLabel(t *testing.T) {
	f := newFixture(t)
	saves := f.store.saves

	tests := []string{"", "   ", "\t"}
	for _, label := range tests {
		if _, err := f.ex.AddGroup(label, nil); err == nil {
			t.Errorf("AddGroup(%q) did not fail", label)
		} else {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("AddGroup(%q) error = %T, want *ValidationError", label, err)
			}
		}
	}

	if len(f.ex.Roots()) != 0 {
		t.Error("forest mutated by rejected add")
	}
	if f.store.saves != saves {
		t.Error("rejected add was persisted")
	}
}

func TestAddFileExclusion(t *testing.T) {
	f := newFixture(t)
	f.settings.suffixes = []string{".meta"}

	if _, ok := f.ex.AddFile("/proj/x.meta", nil); ok {
		t.Error("excluded file was added")
	}
	n, ok := f.ex.AddFile("/proj/x.txt", nil)
	if !ok {
		t.Fatal("plain file not added")
	}
	if n.Label != "x.txt" {
		t.Errorf("label = %q, want x.txt", n.Label)
	}
	if len(f.ex.Roots()) != 1 {
		t.Errorf("roots = %d, want 1", len(f.ex.Roots()))
	}
}

func TestExclusionReadFreshly(t *testing.T) {
	f := newFixture(t)

	if _, ok := f.ex.AddFile("/proj/a.tmp", nil); !ok {
		t.Fatal("no exclusions configured yet, add should pass")
	}

	// The suffix set changes between checks; the next add must see it.
	f.settings.suffixes = []string{".tmp"}
	if _, ok := f.ex.AddFile("/proj/b.tmp", nil); ok {
		t.Error("add did not see the updated suffix set")
	}
}

func TestRenameIsLogicalOnly(t *testing.T) {
	f := newFixture(t)
	n, _ := f.ex.AddFile("/proj/report.md", nil)

	if err := f.ex.Rename(n, "Q3 report"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if n.Label != "Q3 report" {
		t.Errorf("label = %q", n.Label)
	}
	if n.FilePath != "/proj/report.md" {
		t.Errorf("rename touched FilePath: %q", n.FilePath)
	}

	if err := f.ex.Rename(n, "  "); err == nil {
		t.Error("empty rename accepted")
	}
	if err := f.ex.Rename(nil, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("rename(nil) = %v, want ErrNotFound", err)
	}
}

func TestRemoveAbsentNodeIsNoop(t *testing.T) {
	f := newFixture(t)
	n := mustAddGroup(t, f.ex, "g", nil)

	if !f.ex.Remove(n, true) {
		t.Fatal("first remove failed")
	}
	saves := f.store.saves
	if f.ex.Remove(n, true) {
		t.Error("second remove reported success")
	}
	if f.store.saves != saves {
		t.Error("no-op remove was persisted")
	}
}

func TestRemoveBatchSingleCommit(t *testing.T) {
	f := newFixture(t)
	a := mustAddGroup(t, f.ex, "a", nil)
	b := mustAddGroup(t, f.ex, "b", nil)
	c := mustAddGroup(t, f.ex, "c", nil)

	saves := f.store.saves
	refreshes := f.notifier.refreshAll

	if got := f.ex.RemoveBatch([]*domain.Node{a, b, c}); got != 3 {
		t.Errorf("removed = %d, want 3", got)
	}
	if f.store.saves-saves != 1 {
		t.Errorf("persistence writes = %d, want exactly 1", f.store.saves-saves)
	}
	if f.notifier.refreshAll-refreshes != 1 {
		t.Errorf("refreshes = %d, want exactly 1", f.notifier.refreshAll-refreshes)
	}
}

func TestRemoveBatchSkipsCascadedNodes(t *testing.T) {
	f := newFixture(t)
	parent := mustAddGroup(t, f.ex, "parent", nil)
	child := mustAddGroup(t, f.ex, "child", parent)

	// Removing the parent first cascades; the child entry in the batch is
	// already gone and must not count.
	if got := f.ex.RemoveBatch([]*domain.Node{parent, child}); got != 1 {
		t.Errorf("removed = %d, want 1", got)
	}
	if f.ex.NodeByID(child.ID) != nil {
		t.Error("cascaded child still registered")
	}
}

// --- indexes ---

func TestIndexMapsPathToIdenticalNode(t *testing.T) {
	f := newFixture(t)
	g := mustAddGroup(t, f.ex, "docs", nil)
	n, _ := f.ex.AddFile("/proj/readme.md", g)

	if got := f.ex.NodeByPath("/proj/readme.md"); got != n {
		t.Errorf("NodeByPath returned %v, want the identical node", got)
	}

	f.ex.Remove(n, true)
	if f.ex.NodeByPath("/proj/readme.md") != nil {
		t.Error("stale path index entry after removal")
	}
}

func TestTreePathIndex(t *testing.T) {
	f := newFixture(t)
	g := mustAddGroup(t, f.ex, "docs", nil)
	sub := mustAddGroup(t, f.ex, "drafts", g)
	f.ex.AddFile("/proj/a.md", sub)

	tests := []struct {
		treePath string
		want     string
	}{
		{"docs", "docs"},
		{"docs/drafts", "drafts"},
		{"docs/drafts/a.md", "a.md"},
	}
	for _, tt := range tests {
		n := f.ex.NodeByTreePath(tt.treePath)
		if n == nil || n.Label != tt.want {
			t.Errorf("NodeByTreePath(%q) = %v, want label %q", tt.treePath, n, tt.want)
		}
	}

	if sub.TreePath != "docs/drafts" {
		t.Errorf("cached tree path = %q", sub.TreePath)
	}
}

// --- persistence ---

func TestRoundTripPersistence(t *testing.T) {
	f := newFixture(t)
	g := mustAddGroup(t, f.ex, "work", nil)
	sub := mustAddGroup(t, f.ex, "inbox", g)
	f.ex.AddFile("/proj/one.md", sub)
	f.ex.AddFile("/proj/two.md", nil)

	// Reload through the same store into a fresh explorer.
	reloaded := New(f.store, f.fs, f.settings)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}

	count := func(ex *Explorer) int {
		total := 0
		for _, r := range ex.Roots() {
			total += r.Count()
		}
		return total
	}
	if count(reloaded) != count(f.ex) {
		t.Fatalf("node count = %d, want %d", count(reloaded), count(f.ex))
	}

	got := reloaded.NodeByTreePath("work/inbox/one.md")
	if got == nil || got.Type != domain.TypeFile || got.FilePath != "/proj/one.md" {
		t.Errorf("nested file lost on reload: %+v", got)
	}
	if p := reloaded.Parent(got); p == nil || p.Label != "inbox" {
		t.Errorf("parent relationship lost: %v", p)
	}
}

func TestLoadRepairsDuplicateIDs(t *testing.T) {
	f := newFixture(t)
	f.store.data[StateKey] = []byte(`[
		{"id":"dup","type":"group","label":"a"},
		{"id":"dup","type":"group","label":"b"},
		{"type":"file","label":"c.txt","filePath":"/x/c.txt"}
	]`)

	reloaded := New(f.store, f.fs, f.settings)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	seen := make(map[string]bool)
	for _, r := range reloaded.Roots() {
		r.Walk(func(n *domain.Node) bool {
			if n.ID == "" || seen[n.ID] {
				t.Errorf("id %q missing or duplicated", n.ID)
			}
			seen[n.ID] = true
			return true
		})
	}
}
