// Package treealign is a conformance-checking toolkit: it measures how well
// observed event traces fit a declarative process model.
//
// 🚀 What is treealign?
//
//	A pure-Go library computing optimal alignment costs between traces and
//	process trees — the minimum number of event insertions and deletions
//	turning an observed trace into one the model accepts:
//
//	  • align/  — the recursive dynamic-programming alignment engine
//	  • ptree/  — process-tree model, builder, and textual parser
//	  • trace/  — activity interning and zero-copy trace views
//	  • xes/    — XES event-log reader
//	  • batch/  — directory-scale runs with a JSON cost report
//
// ✨ Why treealign?
//
//   - Exact costs          — memoized search, not sampling or heuristics
//   - Fast on real logs    — trace pruning, upper-bound seeding, and
//     branch-and-bound keep the combinatorics in check
//   - Concurrent by design — trees are read-only, every alignment call owns
//     its cache, so whole logs align in parallel
//   - Small surface        — one entry point, align.Align(tree, trace)
//
// Quick example:
//
//	alpha := trace.NewAlphabet()
//	t, _ := ptree.Parse("->( +( 'a', 'b' ), X( 'c', 'd' ) )", alpha)
//	cost, _ := align.Align(t, alpha.InternAll([]string{"b", "a", "d"}))
//	// cost == 0: the trace conforms
//
// The treealign command wraps the same pipeline for the shell: single
// alignments, whole XES logs, or directory batches.
//
//	go get github.com/katalvlaran/treealign
package treealign
