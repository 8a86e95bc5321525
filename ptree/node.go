package ptree

import (
	"github.com/katalvlaran/treealign/trace"
)

// ActivitySet is the union of activity ids reachable in a subtree.
// Membership checks are O(1); the alignment engine leans on that to answer
// child-ownership questions without walking subtrees.
type ActivitySet map[trace.Activity]struct{}

// Has reports whether id belongs to the set.
func (s ActivitySet) Has(id trace.Activity) bool {
	_, ok := s[id]

	return ok
}

// Add inserts id into the set.
func (s ActivitySet) Add(id trace.Activity) { s[id] = struct{}{} }

// AddAll inserts every member of other into the set.
func (s ActivitySet) AddAll(other ActivitySet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Len reports the number of distinct ids in the set.
func (s ActivitySet) Len() int { return len(s) }

// Node is one operator or leaf of a process tree.
//
// Nodes are created by the package constructors and finalized by NewTree;
// after finalization a node is read-only. Every node is owned by exactly one
// parent (the tree is an arena-owned acyclic structure, never shared).
type Node struct {
	id       int
	kind     Kind
	activity trace.Activity
	children []*Node
	acts     ActivitySet
}

// ID returns the node's dense identifier, assigned by NewTree in post-order.
// Ids are non-negative and unique within one tree.
func (n *Node) ID() int { return n.id }

// Kind returns the node's operator tag.
func (n *Node) Kind() Kind { return n.kind }

// Activity returns the leaf's activity id; meaningful only for KindActivity.
func (n *Node) Activity() trace.Activity { return n.activity }

// Children returns the node's ordered children. Callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// Acts returns the node's precomputed activity set. Nil until NewTree runs.
func (n *Node) Acts() ActivitySet { return n.acts }

// Sequence builds an unfinalized sequence node over children.
func Sequence(children ...*Node) *Node {
	return &Node{id: -1, kind: KindSequence, activity: trace.NoActivity, children: children}
}

// Parallel builds an unfinalized parallel node over children.
func Parallel(children ...*Node) *Node {
	return &Node{id: -1, kind: KindParallel, activity: trace.NoActivity, children: children}
}

// Xor builds an unfinalized exclusive-choice node over children.
func Xor(children ...*Node) *Node {
	return &Node{id: -1, kind: KindXor, activity: trace.NoActivity, children: children}
}

// RedoLoop builds an unfinalized redo loop: body runs first, then zero or
// more (redo, body) rounds. The language is body (redo body)*.
func RedoLoop(body, redo *Node) *Node {
	return &Node{id: -1, kind: KindRedoLoop, activity: trace.NoActivity, children: []*Node{body, redo}}
}

// Leaf builds an activity leaf for id.
func Leaf(id trace.Activity) *Node {
	return &Node{id: -1, kind: KindActivity, activity: id}
}

// Silent builds a tau leaf.
func Silent() *Node {
	return &Node{id: -1, kind: KindSilent, activity: trace.NoActivity}
}

// Tree is a finalized, validated process tree.
//
// A Tree is immutable after construction and may be shared freely among
// concurrent readers.
type Tree struct {
	root  *Node
	nodes []*Node // index == Node.ID
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Len reports the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given id, or nil if out of range.
func (t *Tree) Node(id int) *Node {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}

	return t.nodes[id]
}

// Acts returns the activity set of the whole tree.
func (t *Tree) Acts() ActivitySet { return t.root.acts }

// MinTraceLen returns the length of the shortest trace in the tree's
// language: the minimum number of events any accepted run must contain.
func (t *Tree) MinTraceLen() int { return minTraceLen(t.root) }

func minTraceLen(n *Node) int {
	switch n.kind {
	case KindActivity:
		return 1
	case KindSilent:
		return 0
	case KindXor:
		best := -1
		for _, c := range n.children {
			if m := minTraceLen(c); best < 0 || m < best {
				best = m
			}
		}

		return best
	case KindSequence, KindParallel:
		sum := 0
		for _, c := range n.children {
			sum += minTraceLen(c)
		}

		return sum
	case KindRedoLoop:
		// mandatory single body execution
		return minTraceLen(n.children[0])
	default:
		return 0
	}
}

// NewTree validates root's structural invariants, assigns dense node ids in
// post-order, and fills every node's activity set bottom-up.
//
// Invariants enforced:
//   - no nil nodes anywhere;
//   - RedoLoop has exactly two children;
//   - Sequence, Parallel, Xor have at least one child;
//   - Activity and Silent are childless;
//   - every node is owned by exactly one parent (no sharing, no cycles).
//
// Complexity: O(nodes + total activity-set size), one traversal.
func NewTree(root *Node) (*Tree, error) {
	if root == nil {
		return nil, ErrNilNode
	}

	t := &Tree{root: root}
	seen := make(map[*Node]struct{})
	if err := t.finalize(root, seen); err != nil {
		return nil, err
	}

	return t, nil
}

// MustTree is NewTree for static trees in tests and examples; it panics on
// the construction errors NewTree would return.
func MustTree(root *Node) *Tree {
	t, err := NewTree(root)
	if err != nil {
		panic(err)
	}

	return t
}

// finalize walks post-order: children first, then numbering and set fill.
func (t *Tree) finalize(n *Node, seen map[*Node]struct{}) error {
	if n == nil {
		return ErrNilNode
	}
	if _, dup := seen[n]; dup {
		return ErrSharedNode
	}
	seen[n] = struct{}{}

	// 1) Arity checks per kind
	switch n.kind {
	case KindActivity, KindSilent:
		if len(n.children) != 0 {
			return ErrLeafChildren
		}
	case KindRedoLoop:
		if len(n.children) != 2 {
			return ErrLoopArity
		}
	case KindSequence, KindParallel, KindXor:
		if len(n.children) == 0 {
			return ErrNoChildren
		}
	default:
		return ErrUnknownKind
	}

	// 2) Recurse into children
	var err error
	for _, c := range n.children {
		if err = t.finalize(c, seen); err != nil {
			return err
		}
	}

	// 3) Number this node and register it
	n.id = len(t.nodes)
	t.nodes = append(t.nodes, n)

	// 4) Fill the activity set as the union over children
	n.acts = make(ActivitySet)
	if n.kind == KindActivity {
		n.acts.Add(n.activity)
	}
	for _, c := range n.children {
		n.acts.AddAll(c.acts)
	}

	return nil
}
