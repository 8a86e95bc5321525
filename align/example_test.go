package align_test

import (
	"fmt"

	"github.com/katalvlaran/treealign/align"
	"github.com/katalvlaran/treealign/ptree"
	"github.com/katalvlaran/treealign/trace"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A claim process: registration and triage may interleave, then exactly one
//	of approve / reject closes the case.
//
//	  ->( +( 'register', 'triage' ), X( 'approve', 'reject' ) )
//
//	The observed trace triaged before registering (fine for the parallel
//	stage) and then closed with approve: fully conformant, cost 0. The second
//	trace skipped triage: one insertion, cost 1.
//
// Complexity: polynomial in trace length for this model shape.
func ExampleAlign() {
	alpha := trace.NewAlphabet()
	tree, err := ptree.Parse("->( +( 'register', 'triage' ), X( 'approve', 'reject' ) )", alpha)
	if err != nil {
		fmt.Println("parse error:", err)

		return
	}

	conformant := alpha.InternAll([]string{"triage", "register", "approve"})
	skipped := alpha.InternAll([]string{"register", "reject"})

	c0, _ := align.Align(tree, conformant)
	c1, _ := align.Align(tree, skipped)
	fmt.Printf("conformant=%d\nskipped-triage=%d\n", c0, c1)
	// Output:
	// conformant=0
	// skipped-triage=1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_redoLoop
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A reviewing loop *( ->( 'edit', 'submit' ), 'reject' ): every round edits
//	and submits, a rejection sends the work back for another round. The trace
//	below was rejected once and then resubmitted — conformant. Dropping the
//	final submit costs one insertion.
func ExampleAlign_redoLoop() {
	alpha := trace.NewAlphabet()
	tree, err := ptree.Parse("*( ->( 'edit', 'submit' ), 'reject' )", alpha)
	if err != nil {
		fmt.Println("parse error:", err)

		return
	}

	full := alpha.InternAll([]string{"edit", "submit", "reject", "edit", "submit"})
	truncated := alpha.InternAll([]string{"edit", "submit", "reject", "edit"})

	c0, _ := align.Align(tree, full)
	c1, _ := align.Align(tree, truncated)
	fmt.Printf("two-rounds=%d\ntruncated=%d\n", c0, c1)
	// Output:
	// two-rounds=0
	// truncated=1
}
