// Package watcher turns raw fsnotify events into the rename/delete batches
// the sync reconciler consumes.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/kamahir0/custom-explorer/internal/explorer"
	"github.com/kamahir0/custom-explorer/internal/logging"
)

// Batch is one debounced set of reconciled filesystem events.
type Batch struct {
	Renames []explorer.RenamePair
	Deletes []string
}

// Empty reports whether the batch carries no events.
func (b Batch) Empty() bool {
	return len(b.Renames) == 0 && len(b.Deletes) == 0
}

// Watcher watches directories and emits coalesced event batches. Emission
// happens on the watcher goroutine; hosts are expected to marshal the batch
// onto their event loop before touching the explorer.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	emit     func(Batch)
}

// New creates a watcher emitting batches through fn. A zero debounce
// defaults to 200ms.
func New(debounce time.Duration, fn func(Batch)) (*Watcher, error) {
	if debounce == 0 {
		debounce = 200 * time.Millisecond
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fsw: fsw, debounce: debounce, emit: fn}, nil
}

// Watch adds one directory to the watch set.
func (w *Watcher) Watch(dir string) error {
	return w.fsw.Add(dir)
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run consumes events until ctx is done, flushing a coalesced batch once
// the stream has been quiet for the debounce window.
func (w *Watcher) Run(ctx context.Context) {
	var pending []fsnotify.Event
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	flush := func() {
		if len(pending) == 0 {
			return
		}
		batch := Coalesce(pending)
		pending = nil
		if !batch.Empty() {
			w.emit(batch)
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				flush()
				return
			}
			if ev.Op&(fsnotify.Rename|fsnotify.Remove|fsnotify.Create) == 0 {
				continue
			}
			pending = append(pending, ev)
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				flush()
				return
			}
			logging.L().Warn("watch error", zap.Error(err))

		case <-timer.C:
			flush()
		}
	}
}

// Coalesce reconciles one burst of raw events into rename pairs and
// deletions. A rename shows up as a Rename on the old path plus a Create on
// the new one; the two are paired when they share a parent directory within
// the burst. Renames left unpaired are treated as deletions, as are Remove
// events. Creates for paths the explorer does not track are dropped by the
// reconciler downstream, so unpaired Creates are ignored here.
func Coalesce(events []fsnotify.Event) Batch {
	var batch Batch
	consumed := make([]bool, len(events))

	for i, ev := range events {
		if ev.Op&fsnotify.Rename == 0 {
			continue
		}
		oldDir := filepath.Dir(ev.Name)
		paired := false
		for j, cand := range events[i+1:] {
			k := i + 1 + j
			if consumed[k] || cand.Op&fsnotify.Create == 0 {
				continue
			}
			if filepath.Dir(cand.Name) != oldDir {
				continue
			}
			batch.Renames = append(batch.Renames, explorer.RenamePair{
				OldPath: ev.Name,
				NewPath: cand.Name,
			})
			consumed[k] = true
			paired = true
			break
		}
		if !paired {
			batch.Deletes = append(batch.Deletes, ev.Name)
		}
	}

	for _, ev := range events {
		if ev.Op&fsnotify.Remove != 0 {
			batch.Deletes = append(batch.Deletes, ev.Name)
		}
	}

	return batch
}
