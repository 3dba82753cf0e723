package trie

// Cursor is a lazy depth first walk over the terminal nodes at or below a
// starting node. It carries its own explicit stack instead of recursing, so
// arbitrarily deep trees cannot blow the call stack, and it is one shot:
// every Keys/Values/Entries call builds a fresh cursor from the tree as it is
// at that moment. A cursor holds read references only, so abandoning one
// early is always safe, but mutating the tree mid walk gives undefined
// results.
type Cursor[K comparable, V any] struct {
	stack []frame[K, V]
}

type frame[K comparable, V any] struct {
	node *node[K, V]
	path []K
}

func newCursor[K comparable, V any](start *node[K, V], prefix []K) *Cursor[K, V] {
	c := &Cursor[K, V]{}
	if start == nil {
		return c
	}
	base := make([]K, len(prefix))
	copy(base, prefix)
	c.stack = []frame[K, V]{{node: start, path: base}}
	return c
}

// Next pops and advances the walk, returning the next stored sequence and
// its payload, or ok=false once the walk is exhausted. The returned slice is
// a fresh copy the caller may keep.
func (c *Cursor[K, V]) Next() ([]K, V, bool) {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		for token, child := range top.node.children {
			path := make([]K, len(top.path)+1)
			copy(path, top.path)
			path[len(top.path)] = token
			c.stack = append(c.stack, frame[K, V]{node: child, path: path})
		}
		if top.node.leaf {
			return top.path, top.node.value, true
		}
	}
	var zero V
	return nil, zero, false
}

// KeyCursor adapts a Cursor to yield stored sequences only.
type KeyCursor[K comparable] struct {
	next func() ([]K, bool)
}

// Next returns the next stored sequence, or ok=false when exhausted.
func (c *KeyCursor[K]) Next() ([]K, bool) {
	return c.next()
}

// ValueCursor adapts a Cursor to yield terminal payloads only.
type ValueCursor[V any] struct {
	next func() (V, bool)
}

// Next returns the next payload, or ok=false when exhausted.
func (c *ValueCursor[V]) Next() (V, bool) {
	return c.next()
}

func keysOf[K comparable, V any](c *Cursor[K, V]) *KeyCursor[K] {
	return &KeyCursor[K]{next: func() ([]K, bool) {
		seq, _, ok := c.Next()
		return seq, ok
	}}
}

func valuesOf[K comparable, V any](c *Cursor[K, V]) *ValueCursor[V] {
	return &ValueCursor[V]{next: func() (V, bool) {
		_, value, ok := c.Next()
		return value, ok
	}}
}
