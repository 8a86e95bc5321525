// Package trace provides the event-side data model for process-tree
// alignment: interned activity identifiers and zero-copy trace views.
//
// 🚀 What lives here?
//
//	  • Activity  — an opaque dense integer identifying one event type
//	  • Alphabet  — a bidirectional interner between activity names and ids
//	  • Trace     — a contiguous, read-only run of activity ids
//	  • Hash/Equal — content-based hashing and comparison for Trace views
//
// ✨ Design rules:
//
//   - Interning is explicit — an Alphabet is a value you construct and pass,
//     never package-level state. Two alphabets never mix.
//   - A Trace is a plain Go slice: sub-slicing tr[i:j] is O(1) and allocates
//     nothing, which the alignment engine relies on throughout.
//   - Hash depends only on the elements in view order, never on the offset of
//     the view inside its backing array, so the same content stored at
//     different positions hashes identically.
//
// The alignment engine itself lives in package align; trees live in ptree.
package trace
