package node

import (
	"unsafe"

	"github.com/corvidlabs/art/internal/arena"
)

// Ref is a tagged handle to a node: the low bits of a pointer, which are
// always zero for an arena.Align-aligned allocation, hold a Type tag and
// the remaining bits hold the address. This keeps every child slot and
// tree root a single machine word instead of an (interface, pointer) pair,
// halving the size of every Node4/16/48/256 child array.
type Ref[V any] uintptr

const tagMask = uintptr(arena.Align - 1)

// Nil is the empty reference: no node, no leaf.
func Nil[V any]() Ref[V] { return 0 }

// Empty reports whether r holds no node.
func (r Ref[V]) Empty() bool { return r == 0 }

// Type reports which variant r points at, or TypeNone if r is empty.
func (r Ref[V]) Type() Type {
	if r == 0 {
		return TypeNone
	}

	return Type(uintptr(r) & tagMask)
}

func (r Ref[V]) addr() unsafe.Pointer {
	return unsafe.Pointer(uintptr(r) &^ tagMask)
}

func tag[V any, T any](p *T, t Type) Ref[V] {
	return Ref[V](uintptr(unsafe.Pointer(p)) | uintptr(t))
}

// RefOfLeaf packs a *Leaf[V] into a Ref[V].
func RefOfLeaf[V any](p *Leaf[V]) Ref[V] { return tag[V](p, TypeLeaf) }

// RefOfNode4 packs a *Node4[V] into a Ref[V].
func RefOfNode4[V any](p *Node4[V]) Ref[V] { return tag[V](p, TypeNode4) }

// RefOfNode16 packs a *Node16[V] into a Ref[V].
func RefOfNode16[V any](p *Node16[V]) Ref[V] { return tag[V](p, TypeNode16) }

// RefOfNode48 packs a *Node48[V] into a Ref[V].
func RefOfNode48[V any](p *Node48[V]) Ref[V] { return tag[V](p, TypeNode48) }

// RefOfNode256 packs a *Node256[V] into a Ref[V].
func RefOfNode256[V any](p *Node256[V]) Ref[V] { return tag[V](p, TypeNode256) }

// AsLeaf reinterprets r as a *Leaf[V]. The caller must have checked Type().
func (r Ref[V]) AsLeaf() *Leaf[V] { return (*Leaf[V])(r.addr()) }

// AsNode4 reinterprets r as a *Node4[V]. The caller must have checked Type().
func (r Ref[V]) AsNode4() *Node4[V] { return (*Node4[V])(r.addr()) }

// AsNode16 reinterprets r as a *Node16[V]. The caller must have checked Type().
func (r Ref[V]) AsNode16() *Node16[V] { return (*Node16[V])(r.addr()) }

// AsNode48 reinterprets r as a *Node48[V]. The caller must have checked Type().
func (r Ref[V]) AsNode48() *Node48[V] { return (*Node48[V])(r.addr()) }

// AsNode256 reinterprets r as a *Node256[V]. The caller must have checked Type().
func (r Ref[V]) AsNode256() *Node256[V] { return (*Node256[V])(r.addr()) }

// AsNode reinterprets r as a Node[V]. Panics if r is empty or a leaf.
func (r Ref[V]) AsNode() Node[V] {
	switch r.Type() {
	case TypeNode4:
		return r.AsNode4()
	case TypeNode16:
		return r.AsNode16()
	case TypeNode48:
		return r.AsNode48()
	case TypeNode256:
		return r.AsNode256()
	default:
		panic("node: AsNode called on a non-inner reference")
	}
}

// Minimum returns the leftmost leaf reachable from r, or nil if r is empty.
func (r Ref[V]) Minimum() *Leaf[V] {
	switch r.Type() {
	case TypeLeaf:
		return r.AsLeaf()
	case TypeNone:
		return nil
	default:
		return r.AsNode().Minimum()
	}
}

// Release returns r's backing memory to a. Safe to call on an empty ref.
func (r Ref[V]) Release(a arena.Allocator) {
	switch r.Type() {
	case TypeNone:
		return
	case TypeLeaf:
		arena.Free(a, r.AsLeaf())
	default:
		r.AsNode().Release(a)
	}
}
