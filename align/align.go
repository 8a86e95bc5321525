package align

import (
	"math"

	"github.com/katalvlaran/treealign/ptree"
	"github.com/katalvlaran/treealign/trace"
)

// unreachable is the sentinel "no cost found yet" value for minimum searches.
// Guarded before every addition so partial sums never overflow.
const unreachable = math.MaxInt

// Align returns the optimal alignment cost of tr against t with the default
// engine configuration.
//
// The cost is the minimum number of event insertions and deletions needed to
// turn tr into a trace accepted by t. It is non-negative, finite, and bounded
// above by len(tr) + t.MinTraceLen(). Align does not mutate the tree or the
// trace and keeps no state between calls; concurrent calls are safe as long
// as each call gets its own trace (trees may be shared).
func Align(t *ptree.Tree, tr trace.Trace) (int, error) {
	return AlignWith(t, tr, DefaultOptions())
}

// AlignWith is Align with an explicit engine configuration.
func AlignWith(t *ptree.Tree, tr trace.Trace, opts Options) (int, error) {
	if t == nil {
		return 0, ErrNilTree
	}

	e := &aligner{cache: newCostCache(t.Len()), opts: opts}

	return e.dynAlign(viewOf(t.Root()), tr)
}

// aligner owns the per-call state of one alignment: the cost cache and the
// configuration. It is used by exactly one goroutine for exactly one call.
type aligner struct {
	cache *costCache
	opts  Options
}

// opView is the engine's operand: either a real tree node or a transient QR
// sequence synthesized by the redo-loop routine. Transient views carry
// negative ids from a range disjoint from tree node ids, so cache keys can
// never collide; they live on the call stack and are never attached to the
// tree.
type opView struct {
	id       int
	kind     ptree.Kind
	activity trace.Activity
	children []*ptree.Node
	acts     ptree.ActivitySet
}

// viewOf adapts a tree node for the engine.
func viewOf(n *ptree.Node) opView {
	return opView{
		id:       n.ID(),
		kind:     n.Kind(),
		activity: n.Activity(),
		children: n.Children(),
		acts:     n.Acts(),
	}
}

// qrViewOf builds the transient Sequence(redo, body) view the redo-loop
// routine scores middle-of-loop segments with. Its activity set equals the
// loop's (the union over both children), and its id is the loop's id mapped
// into the reserved negative range.
func qrViewOf(loop opView) opView {
	return opView{
		id:       -(loop.id + 1),
		kind:     ptree.KindSequence,
		activity: trace.NoActivity,
		children: []*ptree.Node{loop.children[1], loop.children[0]},
		acts:     loop.acts,
	}
}

// dynAlign is the dispatcher: cache lookup, alien pruning, operator
// dispatch, cache store.
//
// Every alien event (an id outside v's activity set) must incur exactly one
// deletion no matter where in the recursion it is charged, so charging all of
// them here and recursing on the pruned slice preserves optimality — and lets
// traces that differ only in aliens share one cache entry.
func (a *aligner) dynAlign(v opView, tr trace.Trace) (int, error) {
	// 1) Memoization hit?
	if cost, ok := a.cache.lookup(v.id, tr); ok {
		return cost, nil
	}

	// A node without an activity set was never finalized by ptree.NewTree.
	if v.acts == nil {
		return 0, ErrMalformedTree
	}

	// 2) Prune events foreign to this subtree, charging one deletion each.
	// The split reductions below assume alien-free slices, so this step is
	// unconditional.
	if pruned, aliens := pruneForeign(v.acts, tr); aliens > 0 {
		inner, err := a.dynAlign(v, pruned)
		if err != nil {
			return 0, err
		}
		cost := inner + aliens
		a.cache.store(v.id, tr, cost)

		return cost, nil
	}

	// 3) Operator dispatch.
	var (
		cost int
		err  error
	)
	switch v.kind {
	case ptree.KindActivity:
		cost = alignActivity(v.activity, tr)
	case ptree.KindSilent:
		cost = len(tr)
	case ptree.KindXor:
		cost, err = a.alignXor(v, tr)
	case ptree.KindParallel:
		cost, err = a.alignParallel(v, tr)
	case ptree.KindSequence:
		cost, err = a.alignSequence(v, tr)
	case ptree.KindRedoLoop:
		cost, err = a.alignLoop(v, tr)
	default:
		return 0, ErrMalformedTree
	}
	if err != nil {
		return 0, err
	}

	// 4) Record and return.
	a.cache.store(v.id, tr, cost)

	return cost, nil
}

// pruneForeign returns tr restricted to ids in acts, plus the count of
// removed aliens. When nothing is foreign it returns tr itself unchanged.
func pruneForeign(acts ptree.ActivitySet, tr trace.Trace) (trace.Trace, int) {
	aliens := 0
	for _, id := range tr {
		if !acts.Has(id) {
			aliens++
		}
	}
	if aliens == 0 {
		return tr, 0
	}

	pruned := make(trace.Trace, 0, len(tr)-aliens)
	for _, id := range tr {
		if acts.Has(id) {
			pruned = append(pruned, id)
		}
	}

	return pruned, aliens
}

// alignActivity scores a slice against a single-activity leaf: keep one
// matching event and delete the rest, or delete everything and insert the
// missing activity.
func alignActivity(act trace.Activity, tr trace.Trace) int {
	if trace.Contains(tr, act) {
		return len(tr) - 1
	}

	return len(tr) + 1
}

// alignXor scores a slice against an exclusive choice: the cheapest child
// wins. Conformance with any child ends the scan early.
func (a *aligner) alignXor(v opView, tr trace.Trace) (int, error) {
	best := unreachable
	var (
		cost int
		err  error
	)
	for _, child := range v.children {
		cost, err = a.dynAlign(viewOf(child), tr)
		if err != nil {
			return 0, err
		}
		if cost == 0 {
			return 0, nil
		}
		if cost < best {
			best = cost
		}
	}

	return best, nil
}

// alignParallel scores a slice against an interleaving: walk the slice once,
// routing each event to the first child whose activity set contains it, and
// charge one deletion per event no child claims.
//
// First-match-wins is the defined semantics of this operator. When children
// have disjoint activity sets (the well-formed case) the partition is exact;
// with overlapping sets the leftmost child absorbs shared events and the
// result is an upper bound.
func (a *aligner) alignParallel(v opView, tr trace.Trace) (int, error) {
	subTraces := make([]trace.Trace, len(v.children))
	unmatched := 0

	var i int
	for _, id := range tr {
		matched := false
		for i = range v.children {
			if v.children[i].Acts().Has(id) {
				subTraces[i] = append(subTraces[i], id)
				matched = true

				break
			}
		}
		if !matched {
			unmatched++
		}
	}

	cost := unmatched
	var (
		childCost int
		err       error
	)
	for i = range v.children {
		childCost, err = a.dynAlign(viewOf(v.children[i]), subTraces[i])
		if err != nil {
			return 0, err
		}
		cost += childCost
	}

	return cost, nil
}
