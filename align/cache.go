package align

import (
	"github.com/katalvlaran/treealign/trace"
)

// costCache memoizes completed alignment costs for one engine call:
// node id → (slice content → cost).
//
// Tree nodes carry dense non-negative ids, so their level-one lookup is a
// plain slice index. Transient QR sequence nodes synthesized by the redo-loop
// routine use negative ids from a disjoint range and live in a small side map.
//
// The level-two lookup must treat a transient sub-slice view as equal to a
// stored key with the same content without copying it, so buckets are keyed
// by the content hash and resolved by elementwise comparison. Stored keys are
// the sub-slice views themselves: slices are read-only by module convention
// and share the backing trace, so retaining them copies nothing.
type costCache struct {
	perNode []nodeCache
	temp    map[int]nodeCache
}

// nodeCache is one node's content-keyed cost table.
type nodeCache map[uint64][]cacheEntry

// cacheEntry pairs a stored slice key with its computed cost.
type cacheEntry struct {
	key  trace.Trace
	cost int
}

// newCostCache sizes the dense level for a tree with nodes ids [0, nodes).
func newCostCache(nodes int) *costCache {
	return &costCache{perNode: make([]nodeCache, nodes)}
}

// table returns the level-two table for id, creating it on first use.
func (c *costCache) table(id int) nodeCache {
	if id >= 0 {
		if c.perNode[id] == nil {
			c.perNode[id] = make(nodeCache)
		}

		return c.perNode[id]
	}
	if c.temp == nil {
		c.temp = make(map[int]nodeCache)
	}
	if c.temp[id] == nil {
		c.temp[id] = make(nodeCache)
	}

	return c.temp[id]
}

// lookup returns the memoized cost for (id, tr) and whether one exists.
// No allocation: the hash is computed over the view and buckets are scanned
// with elementwise comparison.
func (c *costCache) lookup(id int, tr trace.Trace) (int, bool) {
	var tbl nodeCache
	if id >= 0 {
		tbl = c.perNode[id]
	} else {
		tbl = c.temp[id]
	}
	if tbl == nil {
		return 0, false
	}

	for _, e := range tbl[trace.Hash(tr)] {
		if trace.Equal(e.key, tr) {
			return e.cost, true
		}
	}

	return 0, false
}

// store records cost for (id, tr). Entries are never invalidated within one
// engine call; the whole cache is dropped when the call returns.
func (c *costCache) store(id int, tr trace.Trace, cost int) {
	tbl := c.table(id)
	h := trace.Hash(tr)
	tbl[h] = append(tbl[h], cacheEntry{key: tr, cost: cost})
}
