package arttree

import (
	"github.com/corvidlabs/art/internal/arena"
	"github.com/corvidlabs/art/internal/assert"
	"github.com/corvidlabs/art/internal/node"
)

// Insert associates key with value. If key was already present, its old
// value is returned with replaced set; otherwise the tree's size grows by
// one.
func (t *Tree[V]) Insert(key []byte, value V) (old V, replaced bool) {
	old, replaced = insert(t.mem, &t.root, key, 0, value)
	if !replaced {
		t.size++
	}

	return old, replaced
}

func newLeaf[V any](a arena.Allocator, key []byte, value V) *node.Leaf[V] {
	owned := make([]byte, len(key))
	copy(owned, key)

	return arena.New(a, node.Leaf[V]{Key: owned, Value: value})
}

func insert[V any](a arena.Allocator, ref *node.Ref[V], key []byte, depth int, value V) (V, bool) {
	if ref.Empty() {
		*ref = node.RefOfLeaf(newLeaf(a, key, value))

		return zeroOf[V](), false
	}

	if ref.Type() == node.TypeLeaf {
		leaf := ref.AsLeaf()

		if leaf.Matches(key) {
			old := leaf.Value
			leaf.Value = value

			return old, true
		}

		splitLeaf(a, ref, leaf, key, depth, value)

		return zeroOf[V](), false
	}

	n := ref.AsNode()

	_, plen := n.Prefix()
	mismatch := prefixMismatch(n, key, depth)

	if mismatch < plen {
		assert.Assert(depth+mismatch <= len(key), "prefixMismatch %d past end of key (len %d) at depth %d", mismatch, len(key), depth)
		splitPrefix(a, ref, n, key, depth, mismatch, value)

		return zeroOf[V](), false
	}

	depth += plen

	if depth == len(key) {
		pc := n.PrefixedChild()
		if pc.Empty() {
			*pc = node.RefOfLeaf(newLeaf(a, key, value))

			return zeroOf[V](), false
		}

		leaf := pc.AsLeaf()
		old := leaf.Value
		leaf.Value = value

		return old, true
	}

	child := n.FindChild(key[depth])
	if child == nil {
		if n.Full() {
			grown := n.Grow(a)
			assert.Logf("insert.grow", "%s -> %s", n.Type(), grown.Type())
			*ref = grown.Ref()
			n.Release(a)
			n = grown
		}

		n.AddChild(key[depth], node.RefOfLeaf(newLeaf(a, key, value)))

		return zeroOf[V](), false
	}

	return insert(a, child, key, depth+1, value)
}

// splitLeaf replaces the leaf ref points at with a new Node4 holding both
// the pre-existing leaf and a freshly allocated leaf for (key, value) as
// children, branching on the first byte where their keys diverge past
// depth.
func splitLeaf[V any](a arena.Allocator, ref *node.Ref[V], existing *node.Leaf[V], key []byte, depth int, value V) {
	common := longestCommonPrefix(existing.Key, key, depth)

	n4 := arena.New(a, node.Node4[V]{})
	n4.SetPrefix(key[depth:depth+common], common)

	at := depth + common
	placeLeaf(n4, node.RefOfLeaf(existing), existing.Key, at)
	placeLeaf(n4, node.RefOfLeaf(newLeaf(a, key, value)), key, at)

	*ref = node.RefOfNode4(n4)
}

func placeLeaf[V any](n4 *node.Node4[V], leaf node.Ref[V], key []byte, depth int) {
	if depth == len(key) {
		*n4.PrefixedChild() = leaf
		return
	}

	n4.AddChild(key[depth], leaf)
}

// splitPrefix handles a mismatch discovered partway through an inner
// node's compressed prefix: the shared bytes become a new Node4 with the
// old node demoted beneath it (prefix truncated to what comes after the
// divergence) alongside a new leaf for (key, value).
func splitPrefix[V any](a arena.Allocator, ref *node.Ref[V], n node.Node[V], key []byte, depth, mismatch int, value V) {
	inline, plen := n.Prefix()
	assert.Assert(mismatch < plen, "splitPrefix called with mismatch %d >= prefix length %d", mismatch, plen)

	n4 := arena.New(a, node.Node4[V]{})
	n4.SetPrefix(key[depth:depth+mismatch], mismatch)

	var oldEdge byte
	var rem []byte

	remLen := plen - mismatch - 1

	if plen <= node.MaxPrefixLen {
		oldEdge = inline[mismatch]
		if mismatch+1 < len(inline) {
			rem = inline[mismatch+1:]
		}
	} else {
		leaf := n.Minimum()
		oldEdge = leaf.Key[depth+mismatch]

		start := depth + mismatch + 1
		end := start + remLen
		if end > len(leaf.Key) {
			end = len(leaf.Key)
		}
		if end > start {
			rem = leaf.Key[start:end]
		}
	}

	n.SetPrefix(rem, remLen)
	n4.AddChild(oldEdge, n.Ref())

	if depth+mismatch == len(key) {
		*n4.PrefixedChild() = node.RefOfLeaf(newLeaf(a, key, value))
	} else {
		n4.AddChild(key[depth+mismatch], node.RefOfLeaf(newLeaf(a, key, value)))
	}

	*ref = node.RefOfNode4(n4)
}
