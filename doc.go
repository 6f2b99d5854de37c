// Package art implements an adaptive radix tree: an ordered-by-construction,
// memory-compact trie over byte-sequence keys that uses four node
// representations (Node4, Node16, Node48, Node256) and adapts between them
// as a node's fan-out grows or shrinks, rather than paying a fixed
// per-node cost regardless of how many children it actually holds.
//
// A Tree maps keys.Keyer keys to arbitrary values with Get/Insert/Remove,
// all single-key operations; there is no ordered traversal API. See
// package keys for the key types a Tree can be built over.
package art
