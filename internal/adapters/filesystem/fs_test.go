package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFSAgainstTempDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	fs := New()

	if !fs.Exists(root) {
		t.Error("Exists(root) = false")
	}
	if fs.Exists(filepath.Join(root, "missing")) {
		t.Error("Exists(missing) = true")
	}

	isDir, err := fs.IsDir(root)
	if err != nil || !isDir {
		t.Errorf("IsDir(root) = %v, %v", isDir, err)
	}
	isDir, err = fs.IsDir(filepath.Join(root, "a.txt"))
	if err != nil || isDir {
		t.Errorf("IsDir(a.txt) = %v, %v", isDir, err)
	}
	if _, err := fs.IsDir(filepath.Join(root, "missing")); err == nil {
		t.Error("IsDir(missing) did not fail")
	}

	entries, err := fs.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	got := make(map[string]bool, len(entries))
	for _, e := range entries {
		got[e.Name] = e.Dir
	}
	if dir, ok := got["sub"]; !ok || !dir {
		t.Errorf("sub entry = %v, %v", dir, ok)
	}
	if dir, ok := got["a.txt"]; !ok || dir {
		t.Errorf("a.txt entry = %v, %v", dir, ok)
	}
}
