package trie

// Set is the presence-only variant: the same engine as Map specialized to an
// empty payload, exposing only the operations that make sense without one.
// Use Add/Has/Delete for membership, Find/Prefixes for prefix queries and
// Keys for iteration.
type Set[K comparable] struct {
	t tree[K, struct{}]
}

// NewSet creates an empty set-mode prefix tree.
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{t: newTree[K, struct{}]()}
}

// SetFrom bulk loads a set from sequences, duplicates collapse.
func SetFrom[K comparable](seqs [][]K) *Set[K] {
	s := NewSet[K]()
	for _, seq := range seqs {
		s.Add(seq)
	}
	return s
}

// Add stores seq. Adding an existing sequence leaves Len unchanged.
// The empty sequence is a valid member.
func (s *Set[K]) Add(seq []K) {
	s.t.insert(seq, struct{}{})
}

// Has reports whether seq is stored.
func (s *Set[K]) Has(seq []K) bool {
	return s.t.has(seq)
}

// Delete removes seq and prunes any branch left dead by the removal.
// Deleting an absent sequence returns false and changes nothing.
func (s *Set[K]) Delete(seq []K) bool {
	return s.t.delete(seq)
}

// Find returns every stored sequence having prefix as a literal prefix,
// in depth first order.
func (s *Set[K]) Find(prefix []K) [][]K {
	return s.t.find(prefix)
}

// Prefixes returns the stored sequences that are prefixes of seq,
// shortest first.
func (s *Set[K]) Prefixes(seq []K) [][]K {
	return s.t.prefixes(seq)
}

// Len returns the number of stored sequences.
func (s *Set[K]) Len() int {
	return s.t.size
}

// Clear resets the set to an empty root with Len 0.
func (s *Set[K]) Clear() {
	s.t.clear()
}

// Keys returns a fresh cursor over stored sequences at or below prefix.
func (s *Set[K]) Keys(prefix ...K) *KeyCursor[K] {
	return keysOf(s.t.entries(prefix))
}

// Snapshot returns the node graph as a serializable nested view.
func (s *Set[K]) Snapshot() *Snapshot[K, struct{}] {
	return snapshotOf(s.t.root)
}
