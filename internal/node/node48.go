package node

import "github.com/corvidlabs/art/internal/arena"

// Node48 indexes up to 256 key bytes into a 48-slot child array: index[b]
// holds (slot+1) for a present byte, 0 for absent. This trades the 256
// direct slots of Node256 for a smaller array at the cost of one extra
// indirection per lookup.
type Node48[V any] struct {
	base[V]

	index    [256]uint8
	children [48]Ref[V]
}

var _ Node[int] = (*Node48[int])(nil)

func (n *Node48[V]) Ref() Ref[V] { return RefOfNode48(n) }

func (n *Node48[V]) Type() Type { return TypeNode48 }

func (n *Node48[V]) Full() bool { return n.numChildren >= 48 }

func (n *Node48[V]) FindChild(b byte) *Ref[V] {
	if slot := n.index[b]; slot != 0 {
		return &n.children[slot-1]
	}

	return nil
}

func (n *Node48[V]) AddChild(b byte, child Ref[V]) {
	slot := n.firstFreeSlot()
	n.children[slot] = child
	n.index[b] = uint8(slot + 1)
	n.numChildren++
}

func (n *Node48[V]) firstFreeSlot() int {
	for i := range n.children {
		if n.children[i].Empty() {
			return i
		}
	}

	panic("node: Node48 has no free slot")
}

func (n *Node48[V]) RemoveChild(child *Ref[V]) {
	for b := 0; b < 256; b++ {
		if slot := n.index[b]; slot != 0 && &n.children[slot-1] == child {
			n.children[slot-1] = 0
			n.index[b] = 0
			n.numChildren--

			return
		}
	}
}

func (n *Node48[V]) Minimum() *Leaf[V] {
	if !n.prefixedChild.Empty() {
		return n.prefixedChild.AsLeaf()
	}

	for b := 0; b < 256; b++ {
		if slot := n.index[b]; slot != 0 {
			return n.children[slot-1].Minimum()
		}
	}

	return nil
}

func (n *Node48[V]) Grow(a arena.Allocator) Node[V] {
	g := arena.New(a, Node256[V]{})
	g.base = n.base

	for b := 0; b < 256; b++ {
		if slot := n.index[b]; slot != 0 {
			g.children[b] = n.children[slot-1]
		}
	}

	return g
}

func (n *Node48[V]) Shrink(a arena.Allocator) Ref[V] {
	s := arena.New(a, Node16[V]{})
	s.base = n.base

	i := 0
	for b := 0; b < 256; b++ {
		if slot := n.index[b]; slot != 0 {
			s.keys[i] = byte(b)
			s.children[i] = n.children[slot-1]
			i++
		}
	}

	return RefOfNode16(s)
}

func (n *Node48[V]) Release(a arena.Allocator) { arena.Free(a, n) }
