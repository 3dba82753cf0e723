// ## Overview
// Package trie implements a generic prefix tree over sequences of comparable
// tokens. One engine backs three public faces: Map associates a payload with
// every stored sequence, Set keeps membership only, and StringSet/StringMap
// run the same engine over the runes of a string. The tree supports exact
// membership, ancestor prefix matching (all stored sequences that are
// prefixes of a query, shortest first), subtree enumeration, deletion with
// eager pruning of dead branches, and lazy cursor based iteration.
//
// ## Example usage:
//
//	words := trie.StringSetFrom([]string{"roman", "romanesque", "greek"})
//
//	words.Has("roman")     // true
//	words.Has("romanesq")  // false, only a path, not a stored word
//	words.Find("rom")      // [roman romanesque] in some depth first order
//	words.Len()            // 3
//
//	words.Delete("romanesque") // true, and the "esque" branch is pruned
//
//	// token sequences work the same way, here path segments
//	roots := trie.NewSet[string]()
//	roots.Add([]string{"pkgs", "app"})
//	roots.Add([]string{"pkgs", "app", "vendored"})
//
//	// ancestors of a query path, outermost first
//	roots.Prefixes([]string{"pkgs", "app", "src", "util"})
//	// => [[pkgs app]]
//
// Sibling order is unordered. Operations that enumerate more than one
// sequence commit to depth first order only, callers needing a total order
// sort the result. Mutations must not run concurrently with anything else.
package trie
