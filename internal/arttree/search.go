package arttree

import (
	"github.com/corvidlabs/art/internal/assert"
	"github.com/corvidlabs/art/internal/node"
)

// Get returns the value stored under key, if any.
func (t *Tree[V]) Get(key []byte) (V, bool) {
	if leaf := search(t.root, key); leaf != nil {
		return leaf.Value, true
	}

	return zeroOf[V](), false
}

// GetPtr returns a pointer to the value stored under key, or nil if key
// isn't present. The pointer is invalidated by a later Remove of key.
func (t *Tree[V]) GetPtr(key []byte) *V {
	if leaf := search(t.root, key); leaf != nil {
		return &leaf.Value
	}

	return nil
}

// GetKeyValue returns the stored key and value for key, if present. The
// returned key is the tree's own copy; callers must not mutate it.
func (t *Tree[V]) GetKeyValue(key []byte) ([]byte, V, bool) {
	if leaf := search(t.root, key); leaf != nil {
		return leaf.Key, leaf.Value, true
	}

	return nil, zeroOf[V](), false
}

func search[V any](root node.Ref[V], key []byte) *node.Leaf[V] {
	ref := root
	depth := 0

	for {
		switch ref.Type() {
		case node.TypeNone:
			return nil

		case node.TypeLeaf:
			leaf := ref.AsLeaf()
			if leaf.Matches(key) {
				return leaf
			}

			return nil

		default:
			n := ref.AsNode()
			if !checkPrefix(n, key, depth) {
				return nil
			}

			_, plen := n.Prefix()
			depth += plen

			if depth > len(key) {
				return nil
			}

			if depth == len(key) {
				pc := *n.PrefixedChild()
				if pc.Empty() {
					return nil
				}
				assert.Assert(pc.Type() == node.TypeLeaf, "prefixedChild holds non-leaf type %s", pc.Type())

				leaf := pc.AsLeaf()
				if leaf.Matches(key) {
					return leaf
				}

				return nil
			}

			child := n.FindChild(key[depth])
			if child == nil {
				return nil
			}

			ref = *child
			depth++
		}
	}
}
