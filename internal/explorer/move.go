package explorer

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kamahir0/custom-explorer/internal/domain"
	"github.com/kamahir0/custom-explorer/internal/logging"
)

// Move relocates a set of source nodes onto target. Invalid sources
// (self-moves and moves onto a node's own descendant) are skipped, which is
// what keeps the forest acyclic. Valid sources are detached and reattached:
// under target when it is a group (forced expanded), at the forest root
// otherwise. The whole batch commits once; nothing is persisted or
// refreshed when every source was rejected. Returns whether anything moved.
func (e *Explorer) Move(sources []*domain.Node, target *domain.Node) bool {
	moved := false
	for _, src := range sources {
		if src == nil || e.byID[src.ID] == nil {
			continue
		}
		if !e.canMove(src, target) {
			continue
		}
		if !e.detach(src) {
			continue
		}
		e.attach(src, target)
		moved = true
	}
	if moved {
		e.commit()
	}
	return moved
}

// ValidateMove explains why relocating src onto target would be rejected:
// self-moves and any target sitting inside the source's own subtree,
// checked by walking parent links up from the target. A nil return means
// Move accepts the pair.
func (e *Explorer) ValidateMove(src, target *domain.Node) error {
	if src == nil || e.byID[src.ID] == nil {
		return ErrNotFound
	}
	if target == nil {
		return nil
	}
	if src.ID == target.ID {
		return &MoveError{Source: src.Label, Target: target.Label, Reason: "source and target are the same node"}
	}
	for id := target.ID; ; {
		pid, ok := e.parentOf[id]
		if !ok {
			return nil
		}
		if pid == src.ID {
			return &MoveError{Source: src.Label, Target: target.Label, Reason: "target is inside the moved subtree"}
		}
		id = pid
	}
}

func (e *Explorer) canMove(src, target *domain.Node) bool {
	return e.ValidateMove(src, target) == nil
}

// DropPaths applies an external drop payload: one filesystem path per line,
// optionally with a file:// scheme. Paths that no longer exist are skipped.
// Existing directories run the import pipeline at the drop target; files
// become file nodes there. One commit covers the whole payload. Returns the
// number of entries applied.
func (e *Explorer) DropPaths(payload string, target *domain.Node) int {
	applied := 0
	for _, line := range strings.Split(payload, "\n") {
		p := strings.TrimSpace(line)
		if p == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(p, "file://"); ok {
			p = rest
		}
		p = filepath.Clean(p)

		if !e.fs.Exists(p) {
			logging.L().Warn("dropped path does not exist", zap.String("path", p))
			continue
		}
		isDir, err := e.fs.IsDir(p)
		if err != nil {
			logging.L().Warn("dropped path unreadable",
				zap.String("path", p), zap.Error(err))
			continue
		}

		if isDir {
			if g := e.importQuiet(p, target); g != nil {
				applied++
			}
		} else if _, ok := e.addFileQuiet(p, target); ok {
			applied++
		}
	}
	if applied > 0 {
		e.commit()
	}
	return applied
}
