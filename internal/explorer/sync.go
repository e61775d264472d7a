package explorer

import (
	"path/filepath"
	"strings"

	"github.com/kamahir0/custom-explorer/internal/domain"
)

// RenamePair is one external rename notification.
type RenamePair struct {
	OldPath string
	NewPath string
}

// OnRenamed reconciles external rename events. The node indexed at each old
// path gets the new basename as its label and the new path recorded; every
// descendant whose path sits under the old directory is rebased onto the
// new one, so a renamed folder's whole tracked subtree stays correct in one
// pass. The batch commits once.
func (e *Explorer) OnRenamed(pairs []RenamePair) {
	changed := false
	for _, p := range pairs {
		oldPath := filepath.Clean(p.OldPath)
		newPath := filepath.Clean(p.NewPath)
		n := e.byPath[oldPath]
		if n == nil {
			continue
		}
		n.FilePath = newPath
		n.Label = filepath.Base(newPath)
		for _, c := range n.Children {
			rebaseSubtree(c, oldPath, newPath)
		}
		changed = true
	}
	if changed {
		e.commit()
	}
}

// rebaseSubtree rewrites recorded paths under a renamed directory.
func rebaseSubtree(n *domain.Node, oldDir, newDir string) {
	n.Walk(func(d *domain.Node) bool {
		if d.FilePath != "" {
			if rebased, ok := rebasePath(d.FilePath, oldDir, newDir); ok {
				d.FilePath = rebased
			}
		}
		return true
	})
}

// rebasePath moves path from oldDir to newDir. The match is path-segment
// aware: /a/b covers /a/b/f.txt but never /a/bb/f.txt.
func rebasePath(path, oldDir, newDir string) (string, bool) {
	prefix := oldDir + string(filepath.Separator)
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	return filepath.Join(newDir, path[len(prefix):]), true
}

// OnDeleted reconciles external delete events: each deleted path's node is
// removed with a deferred save, then the batch commits once.
func (e *Explorer) OnDeleted(paths []string) {
	removed := 0
	for _, p := range paths {
		if n := e.byPath[filepath.Clean(p)]; n != nil {
			if e.Remove(n, false) {
				removed++
			}
		}
	}
	if removed > 0 {
		e.commit()
	}
}

// OnActiveFileChanged asks the host to reveal the node tracking the newly
// focused file. A no-op while the view is hidden or when no node matches.
func (e *Explorer) OnActiveFileChanged(path string) {
	if !e.notifier.Visible() {
		return
	}
	if n := e.byPath[filepath.Clean(path)]; n != nil {
		e.notifier.Reveal(n.ID)
	}
}

// SeverityOf returns a node's effective decoration severity. Files answer
// from the diagnostics source directly; groups roll up the worst severity
// among their descendants, stopping at the first error since nothing
// dominates it.
func (e *Explorer) SeverityOf(n *domain.Node) domain.Severity {
	if n == nil {
		return domain.SeverityNone
	}
	if !n.IsGroup() {
		return e.diags.SeverityOf(n.FilePath)
	}
	worst := domain.SeverityNone
	n.Walk(func(d *domain.Node) bool {
		if !d.IsGroup() {
			if sev := e.diags.SeverityOf(d.FilePath); sev > worst {
				worst = sev
			}
		}
		return worst < domain.SeverityError
	})
	return worst
}

// OnDiagnosticsChanged re-notifies each affected node and every transitive
// ancestor group, whose rolled-up severity may have changed.
func (e *Explorer) OnDiagnosticsChanged(paths []string) {
	seen := make(map[string]struct{})
	for _, p := range paths {
		n := e.byPath[filepath.Clean(p)]
		if n == nil {
			continue
		}
		for cur := n; cur != nil; cur = e.Parent(cur) {
			if _, done := seen[cur.ID]; done {
				break
			}
			seen[cur.ID] = struct{}{}
			e.notifier.RefreshNode(cur.ID)
		}
	}
}
