package arttree

import (
	"github.com/corvidlabs/art/internal/arena"
	"github.com/corvidlabs/art/internal/assert"
	"github.com/corvidlabs/art/internal/node"
)

// Remove deletes key, returning its value and true if it was present.
func (t *Tree[V]) Remove(key []byte) (V, bool) {
	old, ok := remove(t.mem, &t.root, key, 0)
	if ok {
		t.size--
	}

	return old, ok
}

func remove[V any](a arena.Allocator, ref *node.Ref[V], key []byte, depth int) (V, bool) {
	if ref.Empty() {
		return zeroOf[V](), false
	}

	if ref.Type() == node.TypeLeaf {
		leaf := ref.AsLeaf()
		if !leaf.Matches(key) {
			return zeroOf[V](), false
		}

		old := leaf.Value
		arena.Free(a, leaf)
		*ref = node.Nil[V]()

		return old, true
	}

	n := ref.AsNode()
	if !checkPrefix(n, key, depth) {
		return zeroOf[V](), false
	}

	_, plen := n.Prefix()
	depth += plen

	if depth > len(key) {
		return zeroOf[V](), false
	}

	if depth == len(key) {
		pc := n.PrefixedChild()
		if pc.Empty() || pc.Type() != node.TypeLeaf {
			return zeroOf[V](), false
		}

		leaf := pc.AsLeaf()
		if !leaf.Matches(key) {
			return zeroOf[V](), false
		}

		old := leaf.Value
		arena.Free(a, leaf)
		*pc = node.Nil[V]()

		shrinkIfNeeded(a, ref, n)

		return old, true
	}

	slot := n.FindChild(key[depth])
	if slot == nil {
		return zeroOf[V](), false
	}

	if slot.Type() == node.TypeLeaf {
		leaf := slot.AsLeaf()
		if !leaf.Matches(key) {
			return zeroOf[V](), false
		}

		old := leaf.Value
		arena.Free(a, leaf)
		n.RemoveChild(slot)

		shrinkIfNeeded(a, ref, n)

		return old, true
	}

	return remove(a, slot, key, depth+1)
}

func shrinkIfNeeded[V any](a arena.Allocator, ref *node.Ref[V], n node.Node[V]) {
	if node.Occupancy(n) >= minOccupancy(n.Type()) {
		return
	}

	before := n.Type()
	replacement := n.Shrink(a)
	assert.Logf("remove.shrink", "%s -> %s", before, replacement.Type())
	n.Release(a)
	*ref = replacement
}

func minOccupancy(t node.Type) int {
	switch t {
	case node.TypeNode4:
		return 2
	case node.TypeNode16:
		return 5
	case node.TypeNode48:
		return 17
	case node.TypeNode256:
		return 49
	default:
		return 0
	}
}
