// Package arttree implements the byte-keyed adaptive radix tree engine:
// search, insert and delete over raw []byte keys and arena-backed nodes.
// It knows nothing about the typed key views callers use; package art
// wraps this engine to expose a keys.Keyer-typed facade.
package arttree

import (
	"github.com/corvidlabs/art/internal/arena"
	"github.com/corvidlabs/art/internal/node"
)

// Tree is a single-owner, non-concurrent adaptive radix tree over []byte
// keys and V-typed values, backed by an arena.Allocator.
type Tree[V any] struct {
	root node.Ref[V]
	size int
	mem  arena.Allocator
}

// New returns an empty tree backed by a.
func New[V any](a arena.Allocator) *Tree[V] {
	return &Tree[V]{mem: a}
}

// Size reports the number of keys currently stored.
func (t *Tree[V]) Size() int { return t.size }

// Root returns the tree's root reference, for structural inspection by
// tests; ordinary callers have no use for it.
func (t *Tree[V]) Root() node.Ref[V] { return t.root }

// Close releases every node and leaf back to the tree's allocator and
// resets the tree to empty.
func (t *Tree[V]) Close() {
	var release func(r node.Ref[V])
	release = func(r node.Ref[V]) {
		if r.Type() != node.TypeNone && r.Type() != node.TypeLeaf {
			n := r.AsNode()
			release(*n.PrefixedChild())
			for b := 0; b < 256; b++ {
				if c := n.FindChild(byte(b)); c != nil {
					release(*c)
				}
			}
		}
		r.Release(t.mem)
	}

	release(t.root)
	t.root = node.Nil[V]()
	t.size = 0
}

func zeroOf[V any]() V {
	var zero V
	return zero
}
