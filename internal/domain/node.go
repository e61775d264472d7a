package domain

import (
	"encoding/json"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// NodeType distinguishes the two kinds of explorer entries.
type NodeType int

const (
	TypeGroup NodeType = iota
	TypeFile
)

// String returns the lowercase type tag used in persistence and tool output.
func (t NodeType) String() string {
	switch t {
	case TypeGroup:
		return "group"
	case TypeFile:
		return "file"
	default:
		return "unknown"
	}
}

// ParseNodeType parses a type tag back into a NodeType.
func ParseNodeType(s string) NodeType {
	if s == "file" {
		return TypeFile
	}
	return TypeGroup
}

// MarshalJSON stores the type as its string tag so persisted forests stay
// readable and stable across versions.
func (t NodeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses the string tag form.
func (t *NodeType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseNodeType(s)
	return nil
}

// CollapsibleState is the presentation flag of a node.
// Files are always StateNone; groups are collapsed or expanded.
type CollapsibleState int

const (
	StateNone CollapsibleState = iota
	StateCollapsed
	StateExpanded
)

// Node is the single entity of the explorer forest. Groups own an ordered
// child list; file nodes always carry the absolute path of the file they
// reference. A group carries a FilePath only when it was synthesized from a
// real directory by the import pipeline, which is what makes rename and
// delete tracking work for imported folders.
type Node struct {
	ID       string           `json:"id"`
	Type     NodeType         `json:"type"`
	Label    string           `json:"label"`
	FilePath string           `json:"filePath,omitempty"`
	State    CollapsibleState `json:"state,omitempty"`
	Children []*Node          `json:"children,omitempty"`

	// Version is bumped whenever presentation state changes. Identity stays
	// stable; hosts that cache rendered rows key on ViewID instead.
	Version uint64 `json:"-"`

	// TreePath is the root-relative, slash-joined label path. Derived on
	// every index rebuild; not persisted.
	TreePath string `json:"-"`
}

// NewGroup creates an empty group node. New groups start collapsed.
func NewGroup(label string) *Node {
	return &Node{
		ID:    uuid.NewString(),
		Type:  TypeGroup,
		Label: label,
		State: StateCollapsed,
	}
}

// NewFile creates a file node labeled by the path's basename.
func NewFile(path string) *Node {
	return &Node{
		ID:       uuid.NewString(),
		Type:     TypeFile,
		Label:    filepath.Base(path),
		FilePath: path,
	}
}

// IsGroup reports whether the node can hold children.
func (n *Node) IsGroup() bool {
	return n.Type == TypeGroup
}

// Expanded reports whether a group is currently expanded.
func (n *Node) Expanded() bool {
	return n.State == StateExpanded
}

// SetState sets the presentation flag and bumps the presentation version so
// the host UI drops any cached row for this node.
func (n *Node) SetState(s CollapsibleState) {
	n.State = s
	n.Version++
}

// ViewID is the cache key handed to the host UI. It changes on every
// presentation toggle while ID itself stays stable.
func (n *Node) ViewID() string {
	return n.ID + "#" + strconv.FormatUint(n.Version, 10)
}

// Walk visits the node and its descendants depth-first, pre-order. The walk
// stops early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}
