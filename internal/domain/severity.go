package domain

// Severity is a node's diagnostic decoration level. Higher values dominate
// when rolling severities up a group subtree.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase severity tag.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "none"
	}
}

// ParseSeverity parses a severity tag; unknown strings map to SeverityNone.
func ParseSeverity(s string) Severity {
	switch s {
	case "error":
		return SeverityError
	case "warning":
		return SeverityWarning
	default:
		return SeverityNone
	}
}
