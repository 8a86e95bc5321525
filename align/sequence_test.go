package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treealign/ptree"
	"github.com/katalvlaran/treealign/trace"
)

// TestSequence_EmptySlice verifies the empty-trace rule: the sum of the
// children's empty costs, for two and for four children.
func TestSequence_EmptySlice(t *testing.T) {
	two := ptree.MustTree(ptree.Sequence(leaf('a'), leaf('b')))
	assert.Equal(t, 2, mustAlign(t, two, nil))

	four := ptree.MustTree(ptree.Sequence(leaf('a'), leaf('b'), leaf('c'), leaf('d')))
	assert.Equal(t, 4, mustAlign(t, four, nil))

	withTau := ptree.MustTree(ptree.Sequence(leaf('a'), ptree.Silent(), ptree.Xor(leaf('b'), ptree.Silent())))
	assert.Equal(t, 1, mustAlign(t, withTau, nil), "tau and the tau-branch of the xor cost nothing")
}

// TestSequence_SingleChild verifies pure delegation.
func TestSequence_SingleChild(t *testing.T) {
	tree := ptree.MustTree(ptree.Sequence(leaf('a')))

	assert.Equal(t, 0, mustAlign(t, tree, tl("a")))
	assert.Equal(t, 2, mustAlign(t, tree, tl("aaa")))
}

// TestSequence_Binary exercises the two-child split scan on ->( 'a', 'b' )
// style models, including order violations.
func TestSequence_Binary(t *testing.T) {
	tree := ptree.MustTree(ptree.Sequence(leaf('a'), leaf('b')))

	cases := []struct {
		name  string
		trace trace.Trace
		want  int
	}{
		{"conformant", tl("ab"), 0},
		{"missing right", tl("a"), 1},
		{"missing left", tl("b"), 1},
		{"swapped order", tl("ba"), 2},
		{"stutter left", tl("aab"), 1},
		{"stutter right", tl("abbbb"), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustAlign(t, tree, tc.trace))
		})
	}
}

// TestSequence_PrefixSuffixBound verifies the structural bound: for a binary
// sequence (A, B) every split's standalone costs dominate the sequence cost.
func TestSequence_PrefixSuffixBound(t *testing.T) {
	seq := parXorTree() // ->( +( a, b, e ), X( c, d ) )
	// standalone copies of the children as their own trees
	parTree := ptree.MustTree(ptree.Parallel(leaf('a'), leaf('b'), leaf('e')))
	xorTree := ptree.MustTree(ptree.Xor(leaf('c'), leaf('d')))

	traces := []trace.Trace{nil, tl("eba"), tl("ebad"), tl("dabe"), tl("babebbdddcbb")}
	var s int
	for _, tr := range traces {
		whole := mustAlign(t, seq, tr)
		for s = 0; s <= len(tr); s++ {
			split := mustAlign(t, parTree, tr[:s]) + mustAlign(t, xorTree, tr[s:])
			assert.GreaterOrEqual(t, split, whole, "split %d of %v", s, tr)
		}
	}
}

// TestSequence_ThreeChildren drives the layered-DAG search: ->( a, b, c ).
func TestSequence_ThreeChildren(t *testing.T) {
	tree := ptree.MustTree(ptree.Sequence(leaf('a'), leaf('b'), leaf('c')))

	cases := []struct {
		name  string
		trace trace.Trace
		want  int
	}{
		{"conformant", tl("abc"), 0},
		{"middle missing", tl("ac"), 1},
		{"swap tail", tl("acb"), 2},
		{"duplicated run", tl("abcabc"), 3},
		{"only middle", tl("b"), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustAlign(t, tree, tc.trace))
		})
	}
}

// TestSequence_ManyChildren mixes operator children under one wide sequence:
// ->( X( a, b ), +( c, d ), 'e', tau, 'f' ).
func TestSequence_ManyChildren(t *testing.T) {
	build := func() *ptree.Tree {
		return ptree.MustTree(ptree.Sequence(
			ptree.Xor(leaf('a'), leaf('b')),
			ptree.Parallel(leaf('c'), leaf('d')),
			leaf('e'),
			ptree.Silent(),
			leaf('f'),
		))
	}

	cases := []struct {
		name  string
		trace trace.Trace
		want  int
	}{
		{"conformant a-branch", tl("adcef"), 0},
		{"conformant b-branch", tl("bcdef"), 0},
		{"choice missing", tl("cdef"), 1},
		{"empty", nil, 5},
		{"everything wrong", tl("zz"), 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustAlign(t, build(), tc.trace))
		})
	}
}

// TestSequence_RunBoundariesOnly documents why interior splits are skipped:
// a long single-owner run still aligns optimally.
func TestSequence_RunBoundariesOnly(t *testing.T) {
	tree := ptree.MustTree(ptree.Sequence(
		ptree.RedoLoop(leaf('a'), ptree.Silent()), // a+
		ptree.RedoLoop(leaf('b'), ptree.Silent()), // b+
	))

	assert.Equal(t, 0, mustAlign(t, tree, tl("aaaabbb")))
	assert.Equal(t, 1, mustAlign(t, tree, tl("aaaa")), "b side is mandatory")
	assert.Equal(t, 1, mustAlign(t, tree, tl("abab")), "the stray second a is deleted")
}

// TestSequence_DeepNesting pushes recursion through alternating operators.
func TestSequence_DeepNesting(t *testing.T) {
	tree := ptree.MustTree(ptree.Sequence(
		ptree.Xor(
			ptree.Sequence(leaf('a'), leaf('b')),
			ptree.Parallel(leaf('c'), leaf('d')),
		),
		ptree.RedoLoop(leaf('e'), ptree.Xor(leaf('f'), ptree.Silent())),
	))

	require.Equal(t, 3, tree.MinTraceLen())

	assert.Equal(t, 0, mustAlign(t, tree, tl("abe")))
	assert.Equal(t, 0, mustAlign(t, tree, tl("dce")))
	assert.Equal(t, 0, mustAlign(t, tree, tl("abefeee")), "loop rounds with and without f")
	assert.Equal(t, 1, mustAlign(t, tree, tl("ab")), "mandatory loop body missing")
	assert.Equal(t, 2, mustAlign(t, tree, tl("e")), "whole choice missing")
}
