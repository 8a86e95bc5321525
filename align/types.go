// Package align defines configuration options and sentinel errors for the
// alignment engine.
package align

import "errors"

// Sentinel errors. The engine fails only on programmer errors: every
// well-formed (tree, trace) pair has a finite optimal cost, so there is no
// algorithmic failure path.
var (
	// ErrNilTree indicates a nil tree was passed to Align.
	ErrNilTree = errors.New("align: nil tree")

	// ErrMalformedTree indicates a structural violation reached the engine:
	// a redo loop without exactly two children, an unknown operator kind, or
	// a node without an activity set. ptree.NewTree rejects or fills such
	// trees, so seeing this means the tree was mutated after construction.
	ErrMalformedTree = errors.New("align: malformed process tree")
)

// Options configures the alignment engine.
//
// Fields:
//
//	DisableSeeding - skip the greedy conformant-decomposition walks that seed
//	                 upper bounds for the sequence and redo-loop searches.
//	                 Seeding is semantics-preserving; the switch exists for
//	                 benchmarking and differential testing of the seeded paths.
type Options struct {
	DisableSeeding bool
}

// DefaultOptions returns the production configuration: seeding on.
func DefaultOptions() Options {
	return Options{}
}
