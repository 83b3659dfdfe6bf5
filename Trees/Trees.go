// Package Trees implements an ordered container kept balanced by either
// AVL heights or red-black colors.
//
// Nodes live in an arena and are addressed by index of type S. Index 0 is
// the nil node: it's never a live node, so methods that return a node index
// return 0 when nothing is found. An index stays valid until its node is
// deleted; rotations move nodes around but never move them to another index.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined.
//
// A Tree isn't safe for concurrent use. Wrap it with a mutex if needed.
package Trees

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidArgument is returned for a nil tree, a missing comparator or an index that isn't a live node.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAllocation is returned when the index type S has no room for another node.
	ErrAllocation = errors.New("node allocation failed")
	// ErrNotFound is returned when the element an operation targets isn't in the tree.
	ErrNotFound = errors.New("element not found")
	// ErrCorrupt is returned by Validate.
	ErrCorrupt = errors.New("tree is corrupt")
)

// Strategy selects how a Tree restores balance after a mutation. It is fixed at creation.
type Strategy uint8

const (
	// Height keeps |height(left)-height(right)|<=1 at every node (AVL).
	Height Strategy = iota
	// Color keeps the red-black invariants: the root is black, a red node has
	// only black children and every path down to a leaf has the same number
	// of black nodes.
	Color
)

func (s Strategy) String() string {
	switch s {
	case Height:
		return "height"
	case Color:
		return "color"
	}
	return "unknown"
}

func (s Strategy) valid() bool {
	return s == Height || s == Color
}

// ParseStrategy accepts "height"/"avl" and "color"/"rb"/"red-black", case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "height", "avl":
		return Height, nil
	case "color", "colour", "rb", "red-black", "redblack":
		return Color, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown strategy %q", name)
}

// Visit is called on every node of a traversal with a pointer to the stored
// value and the node's index. v may be modified in place as long as the
// ordering between the value and every other element is kept; breaking it
// silently corrupts the tree. Returning false stops the traversal.
type Visit[T any, S constraints.Unsigned] func(v *T, n S) bool
