package diagnostics

import (
	"path/filepath"
	"sync"

	"github.com/kamahir0/custom-explorer/internal/domain"
	"github.com/kamahir0/custom-explorer/internal/ports"
)

// Registry is an in-memory problem aggregator implementing
// ports.Diagnostics. Producers set per-path severities; an optional
// change callback forwards affected paths to the explorer so decorations
// roll up to ancestor groups.
type Registry struct {
	mu         sync.RWMutex
	severities map[string]domain.Severity
	onChange   func(paths []string)
}

// Ensure Registry implements Diagnostics
var _ ports.Diagnostics = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{severities: make(map[string]domain.Severity)}
}

// OnChange registers the callback invoked with every changed path batch.
func (r *Registry) OnChange(fn func(paths []string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// SeverityOf answers the current severity for a file path.
func (r *Registry) SeverityOf(path string) domain.Severity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.severities[filepath.Clean(path)]
}

// Set records a path's severity. SeverityNone clears the entry.
func (r *Registry) Set(path string, sev domain.Severity) {
	path = filepath.Clean(path)

	r.mu.Lock()
	if sev == domain.SeverityNone {
		delete(r.severities, path)
	} else {
		r.severities[path] = sev
	}
	fn := r.onChange
	r.mu.Unlock()

	if fn != nil {
		fn([]string{path})
	}
}

// Clear drops every recorded severity and reports all previously affected
// paths through the change callback.
func (r *Registry) Clear() {
	r.mu.Lock()
	paths := make([]string, 0, len(r.severities))
	for p := range r.severities {
		paths = append(paths, p)
	}
	r.severities = make(map[string]domain.Severity)
	fn := r.onChange
	r.mu.Unlock()

	if fn != nil && len(paths) > 0 {
		fn(paths)
	}
}
