package node

import (
	"github.com/corvidlabs/art/internal/arena"
	"github.com/corvidlabs/art/internal/xunsafe"
)

// Node4 holds up to 4 children in parallel, sorted key/child arrays, found
// by linear scan. This is the starting and smallest inner variant; every
// new branch point begins life as a Node4.
type Node4[V any] struct {
	base[V]

	keys     [4]byte
	children [4]Ref[V]
}

var _ Node[int] = (*Node4[int])(nil)

func (n *Node4[V]) Ref() Ref[V] { return RefOfNode4(n) }

func (n *Node4[V]) Type() Type { return TypeNode4 }

func (n *Node4[V]) Full() bool { return n.numChildren >= 4 }

// Keys returns the populated key bytes in storage order. It exists for
// structural inspection (tests asserting the sorted-order invariant);
// tree algorithms use FindChild instead.
func (n *Node4[V]) Keys() []byte { return n.keys[:n.numChildren] }

func (n *Node4[V]) FindChild(b byte) *Ref[V] {
	for i := 0; i < n.numChildren; i++ {
		if n.keys[i] == b {
			return &n.children[i]
		}
	}

	return nil
}

// AddChild inserts a child at the position that keeps keys sorted,
// shifting the tail of both arrays right to make room.
func (n *Node4[V]) AddChild(b byte, child Ref[V]) {
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
func (n *Node4[V]) RemoveChild(child *Ref[V]) {
	idx := xunsafe.AddrOf(child).Sub(xunsafe.AddrOf(&n.children[0]))

	copy(n.keys[idx:n.numChildren-1], n.keys[idx+1:n.numChildren])
	copy(n.children[idx:n.numChildren-1], n.children[idx+1:n.numChildren])

	last := n.numChildren - 1
	n.keys[last] = 0
	n.children[last] = 0
	n.numChildren--
}

func (n *Node4[V]) Minimum() *Leaf[V] {
	if !n.prefixedChild.Empty() {
		return n.prefixedChild.AsLeaf()
	}

	return n.children[0].Minimum()
}

func (n *Node4[V]) Grow(a arena.Allocator) Node[V] {
	g := arena.New(a, Node16[V]{})
	g.base = n.base

	for i := 0; i < n.numChildren; i++ {
		g.keys[i] = n.keys[i]
		g.children[i] = n.children[i]
	}

	return g
}

// Shrink collapses this node into its sole remaining child, splicing this
// node's compressed prefix onto the child's. When that sole child is
// PrefixedChild, no edge byte separates the two prefixes, since reaching
// PrefixedChild never consumes a key byte.
func (n *Node4[V]) Shrink(a arena.Allocator) Ref[V] {
	var sole Ref[V]
	var edge byte
	var hasEdge bool

	if !n.prefixedChild.Empty() {
		sole = n.prefixedChild
	} else {
		sole = n.children[0]
		edge = n.keys[0]
		hasEdge = true
	}

	if sole.Type() == TypeLeaf {
		return sole
	}

	child := sole.AsNode()
	childBytes, childLen := child.Prefix()
	parentBytes, parentLen := n.Prefix()

	spliced := make([]byte, 0, MaxPrefixLen)
	spliced = append(spliced, parentBytes...)

	extra := 0
	if hasEdge {
		spliced = append(spliced, edge)
		extra = 1
	}

	spliced = append(spliced, childBytes...)
	if len(spliced) > MaxPrefixLen {
		spliced = spliced[:MaxPrefixLen]
	}

	child.SetPrefix(spliced, parentLen+extra+childLen)

	return sole
}

func (n *Node4[V]) Release(a arena.Allocator) { arena.Free(a, n) }
