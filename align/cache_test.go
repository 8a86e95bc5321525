package align

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/treealign/ptree"
	"github.com/katalvlaran/treealign/trace"
)

// TestCostCache_RoundTrip covers store/lookup on tree-node ids.
func TestCostCache_RoundTrip(t *testing.T) {
	c := newCostCache(3)

	_, ok := c.lookup(0, trace.Trace{1, 2})
	assert.False(t, ok, "empty cache misses")

	c.store(0, trace.Trace{1, 2}, 7)
	cost, ok := c.lookup(0, trace.Trace{1, 2})
	assert.True(t, ok)
	assert.Equal(t, 7, cost)

	_, ok = c.lookup(1, trace.Trace{1, 2})
	assert.False(t, ok, "same content under another node id misses")

	_, ok = c.lookup(0, trace.Trace{1, 3})
	assert.False(t, ok, "different content misses")
}

// TestCostCache_OffsetIndependentLookup pins the zero-copy requirement:
// a view stored at one offset is found by an equal-content view at another.
func TestCostCache_OffsetIndependentLookup(t *testing.T) {
	c := newCostCache(1)

	backing := trace.Trace{9, 4, 5, 6, 9}
	c.store(0, backing[1:4], 3)

	cost, ok := c.lookup(0, trace.Trace{4, 5, 6})
	assert.True(t, ok, "equal content at offset 0 must hit")
	assert.Equal(t, 3, cost)
}

// TestCostCache_NegativeIDs verifies the disjoint id range used by transient
// QR sequence views.
func TestCostCache_NegativeIDs(t *testing.T) {
	c := newCostCache(2)

	c.store(-1, trace.Trace{1}, 4)
	c.store(1, trace.Trace{1}, 5)

	cost, ok := c.lookup(-1, trace.Trace{1})
	assert.True(t, ok)
	assert.Equal(t, 4, cost, "temp id entry")

	cost, ok = c.lookup(1, trace.Trace{1})
	assert.True(t, ok)
	assert.Equal(t, 5, cost, "tree id entry unaffected")

	_, ok = c.lookup(-2, trace.Trace{1})
	assert.False(t, ok)
}

// TestCostCache_EmptySlices verifies nil and empty slices share one entry.
func TestCostCache_EmptySlices(t *testing.T) {
	c := newCostCache(1)

	c.store(0, nil, 2)
	cost, ok := c.lookup(0, trace.Trace{})
	assert.True(t, ok, "nil and empty have equal content")
	assert.Equal(t, 2, cost)
}

// TestPruneForeign covers the alien-removal helper directly.
func TestPruneForeign(t *testing.T) {
	acts := ptree.ActivitySet{1: {}, 2: {}}

	tr := trace.Trace{1, 9, 2, 9, 9}
	pruned, aliens := pruneForeign(acts, tr)
	assert.Equal(t, 3, aliens)
	assert.Equal(t, trace.Trace{1, 2}, pruned)

	clean := trace.Trace{1, 2, 1}
	same, aliens := pruneForeign(acts, clean)
	assert.Zero(t, aliens)
	assert.Equal(t, &clean[0], &same[0], "alien-free slices are returned unchanged, not copied")
}
