package ports

import "github.com/kamahir0/custom-explorer/internal/domain"

// Diagnostics is the problem-aggregation collaborator. It answers the
// current severity for a single file path; the explorer derives group
// severities by rolling descendants up itself.
type Diagnostics interface {
	SeverityOf(path string) domain.Severity
}
