package align

import (
	"github.com/katalvlaran/treealign/ptree"
	"github.com/katalvlaran/treealign/trace"
)

// alignSequence scores a slice against a sequence node: the slice must be
// split into consecutive (possibly empty) segments, one per child, and the
// segment costs summed. Only the split choice is combinatorial; the engine
// narrows it to genuine operator boundaries and prunes with an upper bound
// from a greedy conformant walk.
func (a *aligner) alignSequence(v opView, tr trace.Trace) (int, error) {
	children := v.children

	// 1) Empty slice: every child aligns the empty trace.
	if len(tr) == 0 {
		sum := 0
		var (
			cost int
			err  error
		)
		for _, child := range children {
			cost, err = a.dynAlign(viewOf(child), tr)
			if err != nil {
				return 0, err
			}
			sum += cost
		}

		return sum, nil
	}

	// 2) Single child: nothing to split.
	if len(children) == 1 {
		return a.dynAlign(viewOf(children[0]), tr)
	}

	// 3) Greedy conformant walk. On traces produced by the model it finds the
	// zero-cost split immediately; otherwise its cost is a valid upper bound
	// that seeds the branch-and-bound below.
	best := unreachable
	if !a.opts.DisableSeeding {
		seed, err := a.seedSequence(v, tr)
		if err != nil {
			return 0, err
		}
		if seed == 0 {
			return 0, nil
		}
		best = seed
	}

	// 4) Two children: direct candidate-split scan.
	if len(children) == 2 {
		return a.alignSequence2(v, tr, best)
	}

	// 5) Three or more children: shortest path over the split-position DAG.
	return a.alignSequenceDAG(v, tr, best)
}

// seedSequence attempts the greedy left-to-right decomposition: each child
// consumes the maximal run of events belonging to its activity set. The walk
// is only promising when the slice is longer than the child list and its
// endpoints belong to the outer children; any other shape bails out.
//
// Returns unreachable when the walk does not consume the whole slice.
func (a *aligner) seedSequence(v opView, tr trace.Trace) (int, error) {
	children := v.children
	if len(tr) <= len(children) ||
		!children[0].Acts().Has(tr[0]) ||
		!children[len(children)-1].Acts().Has(tr[len(tr)-1]) {
		return unreachable, nil
	}

	var (
		pos, old, sum int
		cost          int
		err           error
	)
	for _, child := range children {
		for pos < len(tr) && child.Acts().Has(tr[pos]) {
			pos++
		}
		cost, err = a.dynAlign(viewOf(child), tr[old:pos])
		if err != nil {
			return 0, err
		}
		sum += cost
		old = pos
	}
	if pos < len(tr) {
		// leftover events the walk could not hand to any child in order
		return unreachable, nil
	}

	return sum, nil
}

// alignSequence2 handles the common binary sequence. Candidate splits are the
// two trivial ones plus every boundary position where the event belongs to
// the right child and its predecessor to the left child: splitting inside a
// run of one child's events cannot beat splitting at the run's edge, so only
// boundaries need scoring.
//
// Branch-and-bound: the left segment is scored first and the right segment is
// skipped whenever the left cost alone already reaches the incumbent.
func (a *aligner) alignSequence2(v opView, tr trace.Trace, best int) (int, error) {
	left, right := v.children[0], v.children[1]
	n := len(tr)

	splits := make([]int, 0, n+1)
	splits = append(splits, 0, n)
	var i int
	for i = 1; i < n; i++ {
		if right.Acts().Has(tr[i]) && left.Acts().Has(tr[i-1]) {
			splits = append(splits, i)
		}
	}

	var (
		leftCost, rightCost int
		err                 error
	)
	for _, s := range splits {
		leftCost, err = a.dynAlign(viewOf(left), tr[:s])
		if err != nil {
			return 0, err
		}
		if leftCost >= best {
			continue
		}
		rightCost, err = a.dynAlign(viewOf(right), tr[s:])
		if err != nil {
			return 0, err
		}
		if leftCost+rightCost < best {
			best = leftCost + rightCost
		}
	}

	return best, nil
}

// alignSequenceDAG handles k ≥ 3 children as a shortest path on a layered
// DAG: vertex (i, p) means "children before i consumed tr[:p]", an edge to
// (i+1, q ≥ p) costs dynAlign(childᵢ, tr[p:q]), and the sink is (k, n).
//
// Split positions are reduced to indices where the owning child changes
// (plus both ends): splitting inside a single-owner run cannot reduce cost.
// The search is a depth-first relaxation keeping the best known prefix cost
// per vertex and pruning any path that already reaches the incumbent.
func (a *aligner) alignSequenceDAG(v opView, tr trace.Trace, best int) (int, error) {
	children := v.children
	k := len(children)
	n := len(tr)

	pos := splitPositions(children, tr)
	last := len(pos) - 1 // pos[last] == n

	// bestAt[layer][pi]: cheapest prefix cost reaching vertex (layer, pos[pi])
	bestAt := make([]int, k*len(pos))
	for i := range bestAt {
		bestAt[i] = unreachable
	}

	var dfs func(layer, pi, acc int) error
	dfs = func(layer, pi, acc int) error {
		if acc >= best {
			return nil
		}
		idx := layer*len(pos) + pi
		if acc >= bestAt[idx] {
			return nil
		}
		bestAt[idx] = acc

		// final layer: forced to consume the whole suffix
		if layer == k-1 {
			cost, err := a.dynAlign(viewOf(children[layer]), tr[pos[pi]:n])
			if err != nil {
				return err
			}
			if acc+cost < best {
				best = acc + cost
			}

			return nil
		}

		var (
			qi   int
			cost int
			err  error
		)
		for qi = pi; qi <= last; qi++ {
			cost, err = a.dynAlign(viewOf(children[layer]), tr[pos[pi]:pos[qi]])
			if err != nil {
				return err
			}
			if acc+cost >= best {
				continue
			}
			if err = dfs(layer+1, qi, acc+cost); err != nil {
				return err
			}
		}

		return nil
	}

	if err := dfs(0, 0, 0); err != nil {
		return 0, err
	}

	return best, nil
}

// splitPositions returns 0, n, and every index where the leftmost child
// owning the event differs from the leftmost child owning its predecessor.
// Ascending and duplicate-free by construction.
func splitPositions(children []*ptree.Node, tr trace.Trace) []int {
	pos := make([]int, 0, len(tr)+2)
	pos = append(pos, 0)

	var i int
	for i = 1; i < len(tr); i++ {
		if leftmostOwner(children, tr[i]) != leftmostOwner(children, tr[i-1]) {
			pos = append(pos, i)
		}
	}
	pos = append(pos, len(tr))

	return pos
}

// leftmostOwner returns the index of the first child whose activity set
// contains id. Slices reaching the sequence routine are pruned to the node's
// activity set, so some child always owns the event; -1 is defensive.
func leftmostOwner(children []*ptree.Node, id trace.Activity) int {
	for i, c := range children {
		if c.Acts().Has(id) {
			return i
		}
	}

	return -1
}
