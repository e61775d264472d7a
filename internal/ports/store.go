package ports

// StateStore is the workspace-scoped key/value store the forest persists
// into. The forest is serialized wholesale under a single key and
// overwritten on every save.
type StateStore interface {
	// Load returns the stored value for key. The second result reports
	// whether the key was present.
	Load(key string) ([]byte, bool, error)

	// Save overwrites the value stored for key.
	Save(key string, value []byte) error

	Close() error
}
