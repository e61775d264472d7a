package ports

// Settings is the options source. Implementations must read the underlying
// value on every call rather than caching, so configuration edits take
// effect on the next exclusion check.
type Settings interface {
	// ExcludedSuffixes returns the suffix strings that exclude a basename
	// from add-file and import operations.
	ExcludedSuffixes() []string
}
