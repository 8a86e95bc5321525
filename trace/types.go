// Package trace defines activity identifiers, the activity interner,
// and sentinel errors shared by the conformance packages.
package trace

import "errors"

// Activity is an opaque dense identifier for one event type.
//
// Two activities are equal iff their ids are equal; no ordering is implied.
// Ids are assigned contiguously from zero by an Alphabet, which lets
// downstream consumers index arrays by Activity.
type Activity int32

// NoActivity is returned by lookups that find nothing. It is never a valid id.
const NoActivity Activity = -1

// Sentinel errors for activity interning.
var (
	// ErrUnknownActivity indicates a name or id that the Alphabet has never seen.
	ErrUnknownActivity = errors.New("trace: unknown activity")
)

// Trace is a finite ordered run of activity ids.
//
// A Trace is a read-only view: the engine and every helper in this module
// treat the underlying array as immutable, so sub-views tr[i:j] may be taken
// and retained freely without copying.
type Trace []Activity
