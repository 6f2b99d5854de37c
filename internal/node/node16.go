package node

import (
	"github.com/corvidlabs/art/internal/arena"
	"github.com/corvidlabs/art/internal/simd"
	"github.com/corvidlabs/art/internal/xunsafe"
)

// Node16 holds up to 16 children in parallel, sorted key/child arrays.
// Lookup uses a SWAR byte-parallel compare (see internal/simd) instead of
// a plain scan, which is the entire reason this variant exists separately
// from Node4 rather than just letting Node4 grow to 16 slots.
type Node16[V any] struct {
	base[V]

	keys     [16]byte
	children [16]Ref[V]
}

var _ Node[int] = (*Node16[int])(nil)

func (n *Node16[V]) Ref() Ref[V] { return RefOfNode16(n) }

func (n *Node16[V]) Type() Type { return TypeNode16 }

func (n *Node16[V]) Full() bool { return n.numChildren >= 16 }

// Keys returns the populated key bytes in storage order. It exists for
// structural inspection (tests asserting the sorted-order invariant);
// tree algorithms use FindChild instead.
func (n *Node16[V]) Keys() []byte { return n.keys[:n.numChildren] }

func (n *Node16[V]) FindChild(b byte) *Ref[V] {
	if i, ok := simd.FindByte(n.keys[:n.numChildren], b); ok {
		return &n.children[i]
	}

	return nil
}

// AddChild inserts a child at the position that keeps keys sorted,
// shifting the tail of both arrays right to make room.
func (n *Node16[V]) AddChild(b byte, child Ref[V]) {
	i := 0
	for ; i < n.numChildren; i++ {
		if b < n.keys[i] {
			break
		}
	}

	copy(n.keys[i+1:n.numChildren+1], n.keys[i:n.numChildren])
	copy(n.children[i+1:n.numChildren+1], n.children[i:n.numChildren])

	n.keys[i] = b
	n.children[i] = child
	n.numChildren++
}

// RemoveChild shifts the tail of both arrays left over the removed slot,
// keeping the remaining keys sorted.
func (n *Node16[V]) RemoveChild(child *Ref[V]) {
	idx := xunsafe.AddrOf(child).Sub(xunsafe.AddrOf(&n.children[0]))

	copy(n.keys[idx:n.numChildren-1], n.keys[idx+1:n.numChildren])
	copy(n.children[idx:n.numChildren-1], n.children[idx+1:n.numChildren])

	last := n.numChildren - 1
	n.keys[last] = 0
	n.children[last] = 0
	n.numChildren--
}

func (n *Node16[V]) Minimum() *Leaf[V] {
	if !n.prefixedChild.Empty() {
		return n.prefixedChild.AsLeaf()
	}

	return n.children[0].Minimum()
}

func (n *Node16[V]) Grow(a arena.Allocator) Node[V] {
	g := arena.New(a, Node48[V]{})
	g.base = n.base

	for i := 0; i < n.numChildren; i++ {
		g.children[i] = n.children[i]
		g.index[n.keys[i]] = uint8(i + 1)
	}

	return g
}

func (n *Node16[V]) Shrink(a arena.Allocator) Ref[V] {
	s := arena.New(a, Node4[V]{})
	s.base = n.base

	for i := 0; i < n.numChildren; i++ {
		s.keys[i] = n.keys[i]
		s.children[i] = n.children[i]
	}

	return RefOfNode4(s)
}

func (n *Node16[V]) Release(a arena.Allocator) { arena.Free(a, n) }
