package views

import "github.com/kamahir0/custom-explorer/internal/ports"

// Signal implements ports.Notifier for the TUI. Explorer commits run
// synchronously inside Update, so the notifier just records what happened
// and the view consumes the flags right after each call.
type Signal struct {
	dirty    bool
	revealID string
	visible  bool
}

// Ensure Signal implements Notifier
var _ ports.Notifier = (*Signal)(nil)

// NewSignal returns a notifier marked visible for the lifetime of the TUI.
func NewSignal() *Signal {
	return &Signal{visible: true}
}

func (s *Signal) RefreshAll() { s.dirty = true }

func (s *Signal) RefreshNode(string) { s.dirty = true }

func (s *Signal) Reveal(id string) { s.revealID = id }

func (s *Signal) Visible() bool { return s.visible }

// TakeDirty consumes and returns the pending refresh flag.
func (s *Signal) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// TakeReveal consumes and returns the pending reveal target, if any.
func (s *Signal) TakeReveal() (string, bool) {
	if s.revealID == "" {
		return "", false
	}
	id := s.revealID
	s.revealID = ""
	return id, true
}
