// Package align computes optimal alignment costs between observed traces
// and process trees — the core operation of conformance checking.
//
// 🚀 What is an alignment cost?
//
//	The minimum number of single-event edits (insert a model-required event,
//	delete an unexplainable trace event) that turns an observed trace into a
//	sequence the process tree accepts. Cost 0 means the trace conforms.
//
// ✨ How the engine works:
//
//	Cost is defined compositionally over the six tree operators, and each
//	operator induces its own combinatorial sub-problem:
//
//	  • Activity / Silent — closed-form costs on the slice length
//	  • Xor               — minimum over children, short-circuit on zero
//	  • Parallel          — activity-set partition of the slice per child
//	  • Sequence          — optimal split of the slice among the children:
//	                        boundary-position candidates for two children,
//	                        a layered-DAG shortest path for three or more
//	  • RedoLoop          — prefix costs against the body plus an all-pairs
//	                        closure over "redo block" segment costs
//
//	Sub-problems repeat heavily, so every completed (node, sub-trace) cost is
//	memoized in a per-call cache keyed by node id and slice content. Slices
//	foreign to a subtree are pruned once at its entry (each alien event costs
//	exactly one deletion wherever it is charged), and greedy conformant
//	decompositions seed upper bounds that drive branch-and-bound pruning.
//
// ⚙️ Usage:
//
//	alpha := trace.NewAlphabet()
//	t, _ := ptree.Parse("->( +( 'a', 'b' ), X( 'c', 'd' ) )", alpha)
//	tr := alpha.InternAll([]string{"b", "a", "d"})
//
//	cost, err := align.Align(t, tr) // 0: the trace conforms
//
// The engine is single-threaded and synchronous within one call, performs no
// I/O, and keeps no state between calls; concurrent calls on the same tree
// are safe because trees are read-only and each call owns its cache.
package align
