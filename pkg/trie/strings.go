package trie

// String mode: the same engine over runes, with keys handed in and
// reconstructed as strings. Only the key conversion differs from the token
// sequence mode, the node structure is identical.

// StringSet stores strings as rune sequences with set semantics.
type StringSet struct {
	s *Set[rune]
}

// NewStringSet creates an empty string set.
func NewStringSet() *StringSet {
	return &StringSet{s: NewSet[rune]()}
}

// StringSetFrom bulk loads a string set from words, duplicates collapse.
func StringSetFrom(words []string) *StringSet {
	s := NewStringSet()
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add stores word. The empty string is a valid member.
func (s *StringSet) Add(word string) {
	s.s.Add([]rune(word))
}

// Has reports whether word is stored.
func (s *StringSet) Has(word string) bool {
	return s.s.Has([]rune(word))
}

// Delete removes word, pruning dead branches. Returns false on a miss.
func (s *StringSet) Delete(word string) bool {
	return s.s.Delete([]rune(word))
}

// Find returns every stored word starting with prefix, in depth first order.
func (s *StringSet) Find(prefix string) []string {
	return joinRunes(s.s.Find([]rune(prefix)))
}

// Prefixes returns the stored words that are prefixes of word,
// shortest first.
func (s *StringSet) Prefixes(word string) []string {
	return joinRunes(s.s.Prefixes([]rune(word)))
}

// Len returns the number of stored words.
func (s *StringSet) Len() int {
	return s.s.Len()
}

// Clear resets the set to empty.
func (s *StringSet) Clear() {
	s.s.Clear()
}

// Keys returns a fresh cursor over stored words starting with prefix.
func (s *StringSet) Keys(prefix string) *StringCursor {
	return &StringCursor{keys: s.s.Keys([]rune(prefix)...)}
}

// Snapshot returns the node graph as a serializable nested view,
// keyed by rune.
func (s *StringSet) Snapshot() *Snapshot[rune, struct{}] {
	return s.s.Snapshot()
}

// StringMap stores strings as rune sequences, each with a payload.
type StringMap[V any] struct {
	m *Map[rune, V]
}

// NewStringMap creates an empty string map.
func NewStringMap[V any]() *StringMap[V] {
	return &StringMap[V]{m: NewMap[rune, V]()}
}

// Put stores word with the given payload, replacing any previous one.
func (m *StringMap[V]) Put(word string, value V) {
	m.m.Put([]rune(word), value)
}

// Update stores word with a payload computed from the previous one.
func (m *StringMap[V]) Update(word string, fn func(old V, ok bool) V) {
	m.m.Update([]rune(word), fn)
}

// Get returns the payload stored under word, or ok=false if absent.
func (m *StringMap[V]) Get(word string) (V, bool) {
	return m.m.Get([]rune(word))
}

// Has reports whether word is stored.
func (m *StringMap[V]) Has(word string) bool {
	return m.m.Has([]rune(word))
}

// Delete removes word, pruning dead branches. Returns false on a miss.
func (m *StringMap[V]) Delete(word string) bool {
	return m.m.Delete([]rune(word))
}

// Find returns every stored word starting with prefix, in depth first order.
func (m *StringMap[V]) Find(prefix string) []string {
	return joinRunes(m.m.Find([]rune(prefix)))
}

// Prefixes returns the stored words that are prefixes of word,
// shortest first.
func (m *StringMap[V]) Prefixes(word string) []string {
	return joinRunes(m.m.Prefixes([]rune(word)))
}

// Len returns the number of stored words.
func (m *StringMap[V]) Len() int {
	return m.m.Len()
}

// Clear resets the map to empty.
func (m *StringMap[V]) Clear() {
	m.m.Clear()
}

// Keys returns a fresh cursor over stored words starting with prefix.
func (m *StringMap[V]) Keys(prefix string) *StringCursor {
	return &StringCursor{keys: m.m.Keys([]rune(prefix)...)}
}

// Values returns a fresh cursor over payloads of words starting with prefix.
func (m *StringMap[V]) Values(prefix string) *ValueCursor[V] {
	return m.m.Values([]rune(prefix)...)
}

// Entries returns a fresh cursor over (word, payload) pairs of words
// starting with prefix.
func (m *StringMap[V]) Entries(prefix string) *StringEntryCursor[V] {
	return &StringEntryCursor[V]{entries: m.m.Entries([]rune(prefix)...)}
}

// Snapshot returns the node graph as a serializable nested view,
// keyed by rune.
func (m *StringMap[V]) Snapshot() *Snapshot[rune, V] {
	return m.m.Snapshot()
}

// StringCursor yields stored words one at a time.
type StringCursor struct {
	keys *KeyCursor[rune]
}

// Next returns the next stored word, or ok=false when exhausted.
func (c *StringCursor) Next() (string, bool) {
	seq, ok := c.keys.Next()
	if !ok {
		return "", false
	}
	return string(seq), true
}

// StringEntryCursor yields (word, payload) pairs one at a time.
type StringEntryCursor[V any] struct {
	entries *Cursor[rune, V]
}

// Next returns the next pair, or ok=false when exhausted.
func (c *StringEntryCursor[V]) Next() (string, V, bool) {
	seq, value, ok := c.entries.Next()
	if !ok {
		var zero V
		return "", zero, false
	}
	return string(seq), value, true
}

func joinRunes(seqs [][]rune) []string {
	if seqs == nil {
		return nil
	}
	out := make([]string, len(seqs))
	for i, seq := range seqs {
		out[i] = string(seq)
	}
	return out
}
