package trie

// Snapshot is a serializable view of the node graph: a nested mapping from
// token to subtree with the terminal payload held in its own field, never as
// a child key. Meant for diagnostics and tests, it is a deep copy of the
// structure (payloads are copied by value) and does not track later
// mutations of the tree.
type Snapshot[K comparable, V any] struct {
	Value    *V                    `json:"value,omitempty" yaml:"value,omitempty"`
	Children map[K]*Snapshot[K, V] `json:"children,omitempty" yaml:"children,omitempty"`
}

// Leaf reports whether a stored sequence ends at this snapshot node.
func (s *Snapshot[K, V]) Leaf() bool {
	return s.Value != nil
}

func snapshotOf[K comparable, V any](n *node[K, V]) *Snapshot[K, V] {
	snap := &Snapshot[K, V]{}
	if n.leaf {
		value := n.value
		snap.Value = &value
	}
	if len(n.children) > 0 {
		snap.Children = make(map[K]*Snapshot[K, V], len(n.children))
		for token, child := range n.children {
			snap.Children[token] = snapshotOf(child)
		}
	}
	return snap
}
