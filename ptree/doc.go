// Package ptree models process trees: hierarchical, declarative
// specifications of the set of traces a process can produce.
//
// 🚀 What is a process tree?
//
//	A rooted tree whose inner nodes are control-flow operators and whose
//	leaves are activities (or the silent marker tau):
//
//	  ->( ... )   Sequence  — children run left to right
//	  +( ... )    Parallel  — children interleave freely
//	  X( ... )    Xor       — exactly one child runs
//	  *( R, Q )   RedoLoop  — body R, then zero or more (Q R) redo rounds
//	  'name'      Activity  — one observable event
//	  tau         Silent    — the empty behavior
//
// ✨ What the package provides:
//
//   - Node constructors (Sequence, Parallel, Xor, RedoLoop, Leaf, Silent)
//   - NewTree — validation of structural invariants, dense node numbering,
//     and a post-order fill of every node's activity set
//   - Parse — the textual notation above, interning names through a
//     trace.Alphabet
//
// Trees are built once and consumed read-only; after NewTree returns, the
// structure must not be mutated. That makes a *Tree safe to share among any
// number of concurrent alignment calls.
//
// Quick example:
//
//	alpha := trace.NewAlphabet()
//	t, err := ptree.Parse("->( +( 'a', 'b' ), X( 'c', 'd' ) )", alpha)
//
// The alignment engine consuming these trees lives in package align.
package ptree
