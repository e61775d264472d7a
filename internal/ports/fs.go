package ports

// DirEntry is one entry of a directory listing with its type tag.
type DirEntry struct {
	Name string
	Dir  bool
}

// FileSystem is the filesystem collaborator: synchronous existence check,
// file-versus-directory stat, and directory listing. Listing failures are
// reported per call so the import pipeline can skip a subtree and continue.
type FileSystem interface {
	Exists(path string) bool
	IsDir(path string) (bool, error)
	ReadDir(path string) ([]DirEntry, error)
}
