package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectKeys(c *StringCursor) []string {
	var out []string
	for {
		word, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, word)
	}
}

func TestKeysCursor(t *testing.T) {
	words := StringSetFrom([]string{"roman", "romanesque", "romanesques", "greek"})

	assert.ElementsMatch(t,
		[]string{"roman", "romanesque", "romanesques", "greek"},
		collectKeys(words.Keys("")),
		"an unprefixed cursor should visit every stored word")

	assert.ElementsMatch(t,
		[]string{"roman", "romanesque", "romanesques"},
		collectKeys(words.Keys("rom")),
		"a prefixed cursor should visit the subtree only")

	assert.Empty(t, collectKeys(words.Keys("latin")),
		"a cursor from an absent prefix is exhausted immediately")
}

func TestCursorIsRestartable(t *testing.T) {
	words := StringSetFrom([]string{"rat", "rate", "tar"})

	first := collectKeys(words.Keys(""))
	second := collectKeys(words.Keys(""))
	assert.ElementsMatch(t, first, second, "each Keys call should restart from the beginning")
}

func TestCursorEarlyStopLeavesTreeIntact(t *testing.T) {
	words := StringSetFrom([]string{"rat", "rate", "tar"})

	cursor := words.Keys("")
	_, ok := cursor.Next()
	assert.True(t, ok)
	// abandon the cursor here

	assert.Equal(t, 3, words.Len())
	assert.ElementsMatch(t, []string{"rat", "rate", "tar"}, words.Find(""))
}

func TestCursorIsExhaustedOnce(t *testing.T) {
	words := StringSetFrom([]string{"rat"})

	cursor := words.Keys("")
	_, ok := cursor.Next()
	assert.True(t, ok)
	_, ok = cursor.Next()
	assert.False(t, ok)
	_, ok = cursor.Next()
	assert.False(t, ok, "an exhausted cursor stays exhausted")
}

func TestValuesCursor(t *testing.T) {
	m := NewStringMap[int]()
	m.Put("rat", 1)
	m.Put("rate", 2)
	m.Put("tar", 3)

	var values []int
	cursor := m.Values("ra")
	for {
		v, ok := cursor.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	assert.ElementsMatch(t, []int{1, 2}, values, "values under the prefix only")
}

func TestEntriesCursor(t *testing.T) {
	m := NewStringMap[int]()
	m.Put("rat", 1)
	m.Put("tar", 3)

	got := map[string]int{}
	cursor := m.Entries("")
	for {
		word, v, ok := cursor.Next()
		if !ok {
			break
		}
		got[word] = v
	}
	assert.Equal(t, map[string]int{"rat": 1, "tar": 3}, got)
}

func TestEntriesCursorOverTokenSequences(t *testing.T) {
	m := NewMap[string, int]()
	m.Put([]string{"pkgs", "app"}, 1)
	m.Put([]string{"pkgs", "app", "vendored"}, 2)

	var keys [][]string
	cursor := m.Entries("pkgs")
	for {
		key, _, ok := cursor.Next()
		if !ok {
			break
		}
		keys = append(keys, key)
	}
	assert.ElementsMatch(t, [][]string{
		{"pkgs", "app"},
		{"pkgs", "app", "vendored"},
	}, keys, "yielded keys are full sequences including the starting prefix")
}

// A stored empty sequence lives on the root node and must be visited too.
func TestCursorVisitsRootTerminal(t *testing.T) {
	words := StringSetFrom([]string{"", "a"})

	assert.ElementsMatch(t, []string{"", "a"}, collectKeys(words.Keys("")))
}
