package explorer

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound = errors.New("not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MoveError represents a rejected relocation
type MoveError struct {
	Source string
	Target string
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move %s to %s: %s", e.Source, e.Target, e.Reason)
}
