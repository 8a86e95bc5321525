// Package ptree defines the node kinds and sentinel errors of the
// process-tree data model.
package ptree

import "errors"

// Kind tags a node with its operator. The operator set is closed and small,
// so consumers dispatch with a switch rather than any virtual mechanism.
type Kind int

const (
	// KindSequence runs its children strictly left to right.
	KindSequence Kind = iota

	// KindParallel interleaves its children's traces.
	KindParallel

	// KindXor runs exactly one of its children.
	KindXor

	// KindRedoLoop runs its body, then zero or more (redo, body) rounds.
	// Exactly two children: body first, redo second.
	KindRedoLoop

	// KindActivity is a leaf producing exactly one event.
	KindActivity

	// KindSilent is a leaf producing no event (tau).
	KindSilent
)

// String returns the operator's textual notation tag.
func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "->"
	case KindParallel:
		return "+"
	case KindXor:
		return "X"
	case KindRedoLoop:
		return "*"
	case KindActivity:
		return "activity"
	case KindSilent:
		return "tau"
	default:
		return "unknown"
	}
}

// Sentinel errors for tree construction and parsing.
var (
	// ErrNilNode indicates a nil child or root was supplied.
	ErrNilNode = errors.New("ptree: nil node")

	// ErrLoopArity indicates a RedoLoop without exactly two children.
	ErrLoopArity = errors.New("ptree: redo loop requires exactly two children (body, redo)")

	// ErrNoChildren indicates an operator node with an empty child list.
	ErrNoChildren = errors.New("ptree: operator node requires at least one child")

	// ErrLeafChildren indicates an Activity or Silent leaf carrying children.
	ErrLeafChildren = errors.New("ptree: leaf node must not have children")

	// ErrUnknownKind indicates a Kind outside the closed operator set.
	ErrUnknownKind = errors.New("ptree: unknown node kind")

	// ErrSharedNode indicates a node reachable through two parents; trees are
	// arena-owned and strictly acyclic.
	ErrSharedNode = errors.New("ptree: node owned by more than one parent")

	// ErrParse indicates the textual notation could not be parsed.
	ErrParse = errors.New("ptree: parse error")

	// ErrTrailingInput indicates well-formed input followed by extra tokens.
	ErrTrailingInput = errors.New("ptree: trailing input after tree")
)
