package trie

// Entry pairs a stored sequence with its payload, for bulk loading and
// entry iteration.
type Entry[K comparable, V any] struct {
	Key   []K
	Value V
}

// Map is a prefix tree associating a payload with each stored token
// sequence. The zero value is not usable, create one with NewMap or MapFrom.
//
// Sibling order is a Go map, so Find and the cursors enumerate in depth
// first order with no committed order between siblings. Prefixes is the only
// ordered operation (shortest ancestor first).
//
// A Map is not safe for concurrent mutation. Readers may run concurrently
// with each other but never with Put/Update/Delete/Clear.
type Map[K comparable, V any] struct {
	t tree[K, V]
}

// NewMap creates an empty map-mode prefix tree.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{t: newTree[K, V]()}
}

// MapFrom bulk loads a map from entries, last write wins on duplicate keys.
func MapFrom[K comparable, V any](entries []Entry[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, e := range entries {
		m.Put(e.Key, e.Value)
	}
	return m
}

// Put stores key with the given payload. Storing an existing key replaces
// the payload and leaves Len unchanged. The empty sequence is a valid key.
func (m *Map[K, V]) Put(key []K, value V) {
	m.t.insert(key, value)
}

// Update stores key with a payload computed from the previous one. fn gets
// the old payload and whether key was already stored, so accumulator usage
// (counts, merges) needs no separate read then write.
func (m *Map[K, V]) Update(key []K, fn func(old V, ok bool) V) {
	m.t.update(key, fn)
}

// Get returns the payload stored under key, or ok=false if key is absent.
func (m *Map[K, V]) Get(key []K) (V, bool) {
	return m.t.get(key)
}

// Has reports whether key is stored.
func (m *Map[K, V]) Has(key []K) bool {
	return m.t.has(key)
}

// Delete removes key and prunes any branch left dead by the removal.
// Deleting an absent key returns false and changes nothing.
func (m *Map[K, V]) Delete(key []K) bool {
	return m.t.delete(key)
}

// Find returns every stored key having prefix as a literal prefix,
// in depth first order.
func (m *Map[K, V]) Find(prefix []K) [][]K {
	return m.t.find(prefix)
}

// Prefixes returns the stored keys that are prefixes of seq, shortest first.
func (m *Map[K, V]) Prefixes(seq []K) [][]K {
	return m.t.prefixes(seq)
}

// Len returns the number of stored keys.
func (m *Map[K, V]) Len() int {
	return m.t.size
}

// Clear resets the map to an empty root with Len 0.
func (m *Map[K, V]) Clear() {
	m.t.clear()
}

// Entries returns a fresh cursor over the (key, payload) pairs at or below
// the given starting prefix. With no prefix it walks the whole map.
func (m *Map[K, V]) Entries(prefix ...K) *Cursor[K, V] {
	return m.t.entries(prefix)
}

// Keys returns a fresh cursor over stored keys at or below prefix.
func (m *Map[K, V]) Keys(prefix ...K) *KeyCursor[K] {
	return keysOf(m.t.entries(prefix))
}

// Values returns a fresh cursor over payloads at or below prefix.
func (m *Map[K, V]) Values(prefix ...K) *ValueCursor[V] {
	return valuesOf(m.t.entries(prefix))
}

// Snapshot returns the node graph as a serializable nested view.
func (m *Map[K, V]) Snapshot() *Snapshot[K, V] {
	return snapshotOf(m.t.root)
}
