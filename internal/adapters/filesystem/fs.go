package filesystem

import (
	"os"

	"github.com/kamahir0/custom-explorer/internal/ports"
)

// FS implements ports.FileSystem on the local filesystem.
type FS struct{}

// Ensure FS implements FileSystem
var _ ports.FileSystem = FS{}

// New returns the local filesystem adapter.
func New() FS {
	return FS{}
}

// Exists reports whether path exists.
func (FS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is a directory.
func (FS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// ReadDir lists a directory with per-entry type tags.
func (FS) ReadDir(path string) ([]ports.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	out := make([]ports.DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, ports.DirEntry{Name: e.Name(), Dir: e.IsDir()})
	}
	return out, nil
}
