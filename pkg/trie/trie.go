package trie

// node is a single trie node. Children are keyed by token, and the terminal
// state is a dedicated field rather than a reserved child key, so any token
// value the caller can produce is storable without colliding with the marker.
type node[K comparable, V any] struct {
	children map[K]*node[K, V]
	value    V
	leaf     bool // a stored sequence ends at this node
}

func newNode[K comparable, V any]() *node[K, V] {
	return &node[K, V]{}
}

// child returns the child for the given token, or nil.
func (n *node[K, V]) child(token K) *node[K, V] {
	return n.children[token]
}

// childOrNew returns the child for the given token, creating it if needed.
func (n *node[K, V]) childOrNew(token K) *node[K, V] {
	if c, ok := n.children[token]; ok {
		return c
	}
	if n.children == nil {
		n.children = map[K]*node[K, V]{}
	}
	c := newNode[K, V]()
	n.children[token] = c
	return c
}

// tree is the shared engine behind Map and Set. It owns the root exclusively,
// every non-root node has exactly one parent, and size caches the number of
// terminal markers reachable from the root.
type tree[K comparable, V any] struct {
	root *node[K, V]
	size int
}

func newTree[K comparable, V any]() tree[K, V] {
	return tree[K, V]{root: newNode[K, V]()}
}

// walk follows seq from the root without creating anything.
// Returns nil as soon as a token has no child.
func (t *tree[K, V]) walk(seq []K) *node[K, V] {
	current := t.root
	for _, token := range seq {
		current = current.child(token)
		if current == nil {
			return nil
		}
	}
	return current
}

// insert stores seq, creating nodes along the path as needed, and sets (or
// overwrites) the terminal payload. Inserting a sequence that is already
// stored replaces the payload and leaves size unchanged.
func (t *tree[K, V]) insert(seq []K, value V) {
	current := t.root
	for _, token := range seq {
		current = current.childOrNew(token)
	}
	if !current.leaf {
		current.leaf = true
		t.size++
	}
	current.value = value
}

// update is insert with the payload computed from the previous one. fn
// receives the old payload and whether seq was already stored, so callers can
// keep counters or merge values in a single traversal.
func (t *tree[K, V]) update(seq []K, fn func(old V, ok bool) V) {
	current := t.root
	for _, token := range seq {
		current = current.childOrNew(token)
	}
	current.value = fn(current.value, current.leaf)
	if !current.leaf {
		current.leaf = true
		t.size++
	}
}

func (t *tree[K, V]) get(seq []K) (V, bool) {
	if n := t.walk(seq); n != nil && n.leaf {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (t *tree[K, V]) has(seq []K) bool {
	n := t.walk(seq)
	return n != nil && n.leaf
}

// delete removes seq if it is stored and returns whether it did. While
// walking down it keeps the deepest ancestor that must survive the removal
// (it is terminal itself, has another child, or is the root); if the final
// node ends up with no children the whole dead chain below that ancestor is
// cut in one step. A miss leaves the tree untouched.
func (t *tree[K, V]) delete(seq []K) bool {
	var pruneFrom *node[K, V]
	var pruneToken K

	current := t.root
	for _, token := range seq {
		next := current.child(token)
		if next == nil {
			return false
		}
		if current == t.root || current.leaf || len(current.children) > 1 {
			pruneFrom, pruneToken = current, token
		}
		current = next
	}
	if !current.leaf {
		return false
	}

	current.leaf = false
	var zero V
	current.value = zero
	t.size--

	// nodes below pruneFrom exist only to reach the removed sequence
	if len(current.children) == 0 && pruneFrom != nil {
		delete(pruneFrom.children, pruneToken)
	}
	return true
}

// find collects every stored sequence that has prefix as a literal prefix.
// Results come back in depth first order with no committed sibling order.
func (t *tree[K, V]) find(prefix []K) [][]K {
	start := t.walk(prefix)
	if start == nil {
		return nil
	}
	var out [][]K
	cursor := newCursor(start, prefix)
	for {
		seq, _, ok := cursor.Next()
		if !ok {
			return out
		}
		out = append(out, seq)
	}
}

// prefixes returns the stored sequences that are prefixes of seq, shortest
// first. The walk stops at the first missing token, returning what was
// collected so far.
func (t *tree[K, V]) prefixes(seq []K) [][]K {
	var out [][]K
	current := t.root
	if current.leaf {
		out = append(out, []K{})
	}
	for i, token := range seq {
		current = current.child(token)
		if current == nil {
			break
		}
		if current.leaf {
			match := make([]K, i+1)
			copy(match, seq[:i+1])
			out = append(out, match)
		}
	}
	return out
}

func (t *tree[K, V]) clear() {
	t.root = newNode[K, V]()
	t.size = 0
}

// entries builds a fresh cursor over the subtree reached by prefix, or an
// exhausted one if no such node exists.
func (t *tree[K, V]) entries(prefix []K) *Cursor[K, V] {
	return newCursor(t.walk(prefix), prefix)
}
