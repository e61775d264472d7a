package explorer

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kamahir0/custom-explorer/internal/domain"
	"github.com/kamahir0/custom-explorer/internal/logging"
)

// Host artifacts that never become file nodes regardless of configuration.
var reservedNames = map[string]struct{}{
	".DS_Store":   {},
	"Thumbs.db":   {},
	"desktop.ini": {},
}

// ImportDirectory walks a real directory tree and synthesizes a matching
// group subtree under parent. The root group keeps the directory's path for
// later rename/delete tracking and starts expanded; nested groups start
// collapsed. When the directory's own basename matches the exclusion
// predicate the whole import is a no-op and the returned node is nil.
func (e *Explorer) ImportDirectory(dir string, parent *domain.Node) (*domain.Node, error) {
	dir = filepath.Clean(dir)
	if !e.fs.Exists(dir) {
		return nil, &ValidationError{Field: "path", Message: fmt.Sprintf("%s does not exist", dir)}
	}
	isDir, err := e.fs.IsDir(dir)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !isDir {
		return nil, &ValidationError{Field: "path", Message: fmt.Sprintf("%s is not a directory", dir)}
	}

	g := e.importQuiet(dir, parent)
	if g == nil {
		return nil, nil
	}
	e.commit()
	return g, nil
}

// importQuiet builds the subtree without committing, for use inside drop
// batches. Returns nil when the directory basename is excluded.
func (e *Explorer) importQuiet(dir string, parent *domain.Node) *domain.Node {
	name := filepath.Base(dir)
	if e.excluded(name) {
		return nil
	}

	g := domain.NewGroup(name)
	g.FilePath = dir
	g.SetState(domain.StateExpanded)
	e.attach(g, parent)
	e.scanInto(g, dir)
	return g
}

// scanInto recursively mirrors dir's entries under group. A failing
// directory read skips that subtree and continues with its siblings.
func (e *Explorer) scanInto(group *domain.Node, dir string) {
	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		logging.L().Warn("skipping unreadable directory",
			zap.String("dir", dir), zap.Error(err))
		return
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name)
		if entry.Dir {
			sub := domain.NewGroup(entry.Name)
			sub.FilePath = full
			e.place(sub, group)
			e.scanInto(sub, full)
			continue
		}
		if e.excluded(entry.Name) {
			continue
		}
		if _, reserved := reservedNames[entry.Name]; reserved {
			continue
		}
		e.place(domain.NewFile(full), group)
	}
}
