package node

import "github.com/corvidlabs/art/internal/arena"

// Node256 indexes every possible key byte directly: children[b] is the
// slot for byte b, full stop. No index indirection, no linear scan, at
// the cost of always reserving all 256 slots.
type Node256[V any] struct {
	base[V]

	children [256]Ref[V]
}

var _ Node[int] = (*Node256[int])(nil)

func (n *Node256[V]) Ref() Ref[V] { return RefOfNode256(n) }

func (n *Node256[V]) Type() Type { return TypeNode256 }

func (n *Node256[V]) Full() bool { return n.numChildren >= 256 }

func (n *Node256[V]) FindChild(b byte) *Ref[V] {
	if n.children[b].Empty() {
		return nil
	}

	return &n.children[b]
}

func (n *Node256[V]) AddChild(b byte, child Ref[V]) {
	n.children[b] = child
	n.numChildren++
}

func (n *Node256[V]) RemoveChild(child *Ref[V]) {
	for b := range n.children {
		if &n.children[b] == child {
			n.children[b] = 0
			n.numChildren--

			return
		}
	}
}

func (n *Node256[V]) Minimum() *Leaf[V] {
	if !n.prefixedChild.Empty() {
		return n.prefixedChild.AsLeaf()
	}

	for b := range n.children {
		if !n.children[b].Empty() {
			return n.children[b].Minimum()
		}
	}

	return nil
}

func (n *Node256[V]) Grow(a arena.Allocator) Node[V] {
	panic("node: Node256 has no larger variant to grow into")
}

func (n *Node256[V]) Shrink(a arena.Allocator) Ref[V] {
	s := arena.New(a, Node48[V]{})
	s.base = n.base
	s.numChildren = 0

	for b := range n.children {
		if !n.children[b].Empty() {
			slot := s.numChildren
			s.children[slot] = n.children[b]
			s.index[b] = uint8(slot + 1)
			s.numChildren++
		}
	}

	return RefOfNode48(s)
}

func (n *Node256[V]) Release(a arena.Allocator) { arena.Free(a, n) }
