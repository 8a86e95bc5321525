package trace

// FNV-1a parameters, applied per activity id so the hash depends only on the
// elements in view order, never on the view's offset in its backing array.
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// Hash returns a content hash of tr.
//
// Two views with elementwise-equal content hash identically regardless of
// where each view sits inside its backing trace. The empty trace hashes to
// the FNV offset basis.
//
// Complexity: O(len(tr)), zero allocations.
func Hash(tr Trace) uint64 {
	h := fnvOffset64
	var a Activity
	for _, a = range tr {
		// fold each id byte by byte, little-endian
		v := uint32(a)
		h = (h ^ uint64(v&0xff)) * fnvPrime64
		h = (h ^ uint64(v>>8&0xff)) * fnvPrime64
		h = (h ^ uint64(v>>16&0xff)) * fnvPrime64
		h = (h ^ uint64(v>>24&0xff)) * fnvPrime64
	}

	return h
}

// Equal reports whether a and b have elementwise-equal content.
func Equal(a, b Trace) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Contains reports whether id occurs anywhere in tr.
func Contains(tr Trace, id Activity) bool {
	for _, a := range tr {
		if a == id {
			return true
		}
	}

	return false
}
