package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treealign/trace"
)

// TestAlphabet_InternAssignsDenseIDs verifies that ids are handed out
// contiguously from zero in interning order and that re-interning is stable.
func TestAlphabet_InternAssignsDenseIDs(t *testing.T) {
	alpha := trace.NewAlphabet()

	a := alpha.Intern("register")
	b := alpha.Intern("review")
	c := alpha.Intern("archive")

	assert.Equal(t, trace.Activity(0), a, "first name gets id 0")
	assert.Equal(t, trace.Activity(1), b, "second name gets id 1")
	assert.Equal(t, trace.Activity(2), c, "third name gets id 2")
	assert.Equal(t, a, alpha.Intern("register"), "re-interning must not mint a new id")
	assert.Equal(t, 3, alpha.Len(), "three distinct names interned")
}

// TestAlphabet_LookupAndName verifies both directions of the mapping,
// including the miss cases.
func TestAlphabet_LookupAndName(t *testing.T) {
	alpha := trace.NewAlphabet()
	id := alpha.Intern("pay")

	got, ok := alpha.Lookup("pay")
	require.True(t, ok, "interned name must be found")
	assert.Equal(t, id, got)

	_, ok = alpha.Lookup("refund")
	assert.False(t, ok, "never-interned name must miss")

	name, ok := alpha.Name(id)
	require.True(t, ok, "assigned id must resolve")
	assert.Equal(t, "pay", name)

	_, ok = alpha.Name(trace.Activity(99))
	assert.False(t, ok, "unassigned id must miss")
	_, ok = alpha.Name(trace.NoActivity)
	assert.False(t, ok, "NoActivity must miss")
}

// TestAlphabet_InternAll verifies bulk interning preserves order and
// duplicates map to the same id.
func TestAlphabet_InternAll(t *testing.T) {
	alpha := trace.NewAlphabet()
	tr := alpha.InternAll([]string{"a", "b", "a", "c", "b"})

	assert.Equal(t, trace.Trace{0, 1, 0, 2, 1}, tr)
	assert.Equal(t, 3, alpha.Len())
}

// TestHash_OffsetIndependence verifies the core cache requirement: the same
// content at different offsets of different backing arrays hashes identically.
func TestHash_OffsetIndependence(t *testing.T) {
	backing1 := trace.Trace{7, 1, 2, 3, 9}
	backing2 := trace.Trace{1, 2, 3}

	h1 := trace.Hash(backing1[1:4]) // view over [1,2,3] at offset 1
	h2 := trace.Hash(backing2)      // same content at offset 0

	assert.Equal(t, h2, h1, "hash must depend on content only, not offset")
}

// TestHash_DistinguishesContent checks a few unequal contents do not collide
// (not a guarantee in general, but these must differ for FNV-1a).
func TestHash_DistinguishesContent(t *testing.T) {
	assert.NotEqual(t, trace.Hash(trace.Trace{1}), trace.Hash(trace.Trace{2}))
	assert.NotEqual(t, trace.Hash(trace.Trace{1, 2}), trace.Hash(trace.Trace{2, 1}))
	assert.NotEqual(t, trace.Hash(nil), trace.Hash(trace.Trace{0}))
}

// TestEqual covers length mismatch, content mismatch, and the empty cases.
func TestEqual(t *testing.T) {
	assert.True(t, trace.Equal(nil, trace.Trace{}), "nil and empty are equal")
	assert.True(t, trace.Equal(trace.Trace{1, 2}, trace.Trace{1, 2}))
	assert.False(t, trace.Equal(trace.Trace{1, 2}, trace.Trace{1, 2, 3}))
	assert.False(t, trace.Equal(trace.Trace{1, 2}, trace.Trace{1, 3}))
}

// TestContains covers hit, miss, and empty.
func TestContains(t *testing.T) {
	tr := trace.Trace{4, 5, 6}
	assert.True(t, trace.Contains(tr, 5))
	assert.False(t, trace.Contains(tr, 7))
	assert.False(t, trace.Contains(nil, 0))
}

// TestSubSlicingSharesBacking documents the zero-copy contract the engine
// relies on: a sub-view aliases the parent's storage.
func TestSubSlicingSharesBacking(t *testing.T) {
	tr := trace.Trace{0, 1, 2, 3}
	sub := tr[1:3]

	require.Len(t, sub, 2)
	assert.Equal(t, &tr[1], &sub[0], "sub-view must alias the backing array")
}
