package ports

// Notifier is the host UI's refresh surface. The explorer calls it at the
// end of every committed mutation; implementations translate the calls into
// whatever redraw mechanism the host uses.
type Notifier interface {
	// RefreshAll invalidates the whole tree view.
	RefreshAll()

	// RefreshNode invalidates the subtree rooted at the node with the given
	// ID. An empty ID is equivalent to RefreshAll.
	RefreshNode(id string)

	// Reveal asks the host to scroll to and select the node.
	Reveal(id string)

	// Visible reports whether the tree view is currently showing. Reveal
	// requests are skipped while it is not.
	Visible() bool
}

// NopNotifier satisfies Notifier for hosts without a live view, such as
// one-shot CLI invocations.
type NopNotifier struct{}

func (NopNotifier) RefreshAll() {}

func (NopNotifier) RefreshNode(string) {}

func (NopNotifier) Reveal(string) {}

func (NopNotifier) Visible() bool { return false }
