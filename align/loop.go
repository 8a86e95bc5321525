package align

import (
	"github.com/katalvlaran/treealign/trace"
)

// alignLoop scores a slice against a redo loop *(R, Q), whose language is
// R (Q R)*: one mandatory body execution, then any number of redo rounds.
//
// The slice is viewed as a body prefix followed by a chain of QR blocks:
//
//	cost = min over i of  rCost[i] + qrCost[i][n]
//
// where rCost[i] aligns tr[:i] against R and qrCost[i][j] is the cheapest way
// to explain tr[i:j] as one or more QR blocks. Single-block costs come from a
// transient Sequence(Q, R) view scored by the sequence routine; multi-block
// costs emerge from an all-pairs relaxation closure over the single-block
// table, which converges in at most n passes.
func (a *aligner) alignLoop(v opView, tr trace.Trace) (int, error) {
	if len(v.children) != 2 {
		return 0, ErrMalformedTree
	}

	body := viewOf(v.children[0])
	n := len(tr)

	// 1) Empty slice: the mandatory body execution still has to happen.
	if n == 0 {
		return a.dynAlign(body, tr)
	}

	// 2) Greedy decomposition upper bound; 0 means the trace conforms.
	best := unreachable
	if !a.opts.DisableSeeding {
		seed, err := a.seedLoop(v, tr)
		if err != nil {
			return 0, err
		}
		if seed == 0 {
			return 0, nil
		}
		best = seed
	}

	// 3) Single-block QR costs for every segment. qrCost[i][i] = 0 encodes
	// "no redo block here", not the cost of aligning empty against QR.
	qr := qrViewOf(v)
	qrCost := make([][]int, n+1)
	var (
		i, j, m int
		cost    int
		err     error
	)
	for i = 0; i <= n; i++ {
		qrCost[i] = make([]int, n+1)
		for j = i + 1; j <= n; j++ {
			cost, err = a.dynAlign(qr, tr[i:j])
			if err != nil {
				return 0, err
			}
			qrCost[i][j] = cost
		}
	}

	// 4) All-pairs relaxation: a segment may be cheaper as two chained QR
	// blocks than as one. Iterate to a fixed point, at most n passes.
	var (
		change  bool
		newCost int
	)
	for pass := 0; pass < n; pass++ {
		change = false
		for i = 0; i <= n; i++ {
			for j = i + 1; j <= n; j++ {
				if qrCost[i][j] == 0 {
					continue
				}
				for m = i + 1; m < j; m++ {
					newCost = qrCost[i][m] + qrCost[m][j]
					if newCost < qrCost[i][j] {
						qrCost[i][j] = newCost
						change = true
					}
				}
			}
		}
		if !change {
			break
		}
	}

	// 5) Close over the body prefix choice.
	var rCost int
	for i = 0; i <= n; i++ {
		rCost, err = a.dynAlign(body, tr[:i])
		if err != nil {
			return 0, err
		}
		if rCost+qrCost[i][n] < best {
			best = rCost + qrCost[i][n]
		}
	}

	return best, nil
}

// seedLoop attempts the greedy decomposition of the slice into alternating
// runs: events inside the body's activity set go to R, events outside go to
// Q. That is one feasible way to explain the slice as R (Q R)*, so its cost
// is a valid upper bound — and exactly 0 on conformant traces whose rounds
// never interleave.
//
// The walk only applies when the slice starts and ends inside the body's
// set (the decomposition must open with R and close with R); any other shape
// returns unreachable.
func (a *aligner) seedLoop(v opView, tr trace.Trace) (int, error) {
	bodyActs := v.children[0].Acts()
	n := len(tr)
	if !bodyActs.Has(tr[0]) || !bodyActs.Has(tr[n-1]) {
		return unreachable, nil
	}

	body := viewOf(v.children[0])
	redo := viewOf(v.children[1])

	var (
		total, i, j int
		cost        int
		err         error
	)
	inside := true
	for i < n {
		j = i
		for j < n && bodyActs.Has(tr[j]) == inside {
			j++
		}
		if inside {
			cost, err = a.dynAlign(body, tr[i:j])
		} else {
			cost, err = a.dynAlign(redo, tr[i:j])
		}
		if err != nil {
			return 0, err
		}
		total += cost
		i = j
		inside = !inside
	}

	return total, nil
}
