// Package node implements the tagged node representation of an adaptive
// radix tree: a leaf plus four inner-node variants (Node4, Node16, Node48,
// Node256) that trade child-slot density for lookup cost, each reached
// through a single word-sized tagged handle (see Ref).
package node

import "github.com/corvidlabs/art/internal/arena"

// MaxPrefixLen is the number of bytes of a compressed key segment stored
// inline in a node's header. Segments longer than this are tracked by
// length only; recovering the bytes past MaxPrefixLen falls back to
// reading a leaf under the node (see the owning tree's prefix check).
const MaxPrefixLen = 8

// Type identifies which variant a Ref points at.
type Type uint8

const (
	TypeNone Type = iota
	TypeLeaf
	TypeNode4
	TypeNode16
	TypeNode48
	TypeNode256
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeLeaf:
		return "leaf"
	case TypeNode4:
		return "node4"
	case TypeNode16:
		return "node16"
	case TypeNode48:
		return "node48"
	case TypeNode256:
		return "node256"
	default:
		return "invalid"
	}
}

// Node is the behavior every inner-node variant implements. Leaf does not
// implement it: tree algorithms check Ref.Type for TypeLeaf first and reach
// inner nodes through Ref.AsNode, which panics on a leaf.
type Node[V any] interface {
	// Ref returns the tagged handle pointing back at this node.
	Ref() Ref[V]

	// Type reports which variant this is.
	Type() Type

	// Full reports whether this node has no free child slot left and must
	// grow to the next variant before another child can be added.
	Full() bool

	// Prefix returns the node's compressed key segment: the bytes held
	// inline (at most MaxPrefixLen of them) and the segment's true length,
	// which may exceed len(bytes).
	Prefix() (bytes []byte, length int)

	// SetPrefix replaces the node's compressed key segment.
	SetPrefix(bytes []byte, length int)

	// PrefixedChild returns the slot reached when a search or insert
	// exhausts the key exactly at this node's depth, i.e. when no further
	// key byte exists to index a regular child with.
	PrefixedChild() *Ref[V]

	// NumChildren reports the number of populated byte-indexed child
	// slots, not counting PrefixedChild.
	NumChildren() int

	// Minimum returns the leftmost leaf reachable under this node.
	Minimum() *Leaf[V]

	// FindChild returns the slot for key byte b, or nil if none is set.
	FindChild(b byte) *Ref[V]

	// AddChild installs child under key byte b. The caller must have
	// already verified !Full().
	AddChild(b byte, child Ref[V])

	// RemoveChild clears the slot holding child, identified by its
	// address within this node's child array.
	RemoveChild(child *Ref[V])

	// Grow allocates the next larger variant, copies this node's header
	// and children into it, and returns it. It does not free the
	// receiver; the caller does that once it has relinked the parent.
	Grow(a arena.Allocator) Node[V]

	// Shrink returns the reference that should replace this node once its
	// occupancy (including PrefixedChild) has dropped low enough. For
	// Node16/48/256 this is the next smaller variant with children copied
	// over. For Node4, which has no smaller inner variant, this is the
	// node's sole remaining child, with this node's compressed prefix
	// spliced onto the front of the child's own prefix (or, if the sole
	// remaining child is PrefixedChild itself, spliced with no
	// intervening byte, since reaching it consumed none). The caller
	// must Release the receiver once it has relinked the parent; Shrink
	// never frees the receiver or the returned reference's target.
	Shrink(a arena.Allocator) Ref[V]

	// Release returns this node's backing memory to a.
	Release(a arena.Allocator)
}

// base is the common header embedded in every inner-node variant.
type base[V any] struct {
	partial       [MaxPrefixLen]byte
	partialLen    int
	numChildren   int
	prefixedChild Ref[V]
}

func (b *base[V]) Prefix() ([]byte, int) {
	n := b.partialLen
	if n > MaxPrefixLen {
		n = MaxPrefixLen
	}

	return b.partial[:n], b.partialLen
}

func (b *base[V]) SetPrefix(data []byte, length int) {
	b.partialLen = length

	n := copy(b.partial[:], data)
	for i := n; i < MaxPrefixLen; i++ {
		b.partial[i] = 0
	}
}

func (b *base[V]) PrefixedChild() *Ref[V] { return &b.prefixedChild }

func (b *base[V]) NumChildren() int { return b.numChildren }

// Occupancy returns the total number of populated slots, including
// PrefixedChild, used to decide whether a node must shrink.
func Occupancy[V any](n Node[V]) int {
	c := n.NumChildren()
	if !n.PrefixedChild().Empty() {
		c++
	}

	return c
}
