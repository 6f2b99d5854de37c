package arttree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/art/internal/arena"
	"github.com/corvidlabs/art/internal/arttree"
	"github.com/corvidlabs/art/internal/node"
)

// walkState accumulates facts about a tree while recursing its node
// structure, so a single pass can check several structural invariants at
// once: occupancy bounds per variant, and that every leaf found during
// the walk is reachable and distinct.
type walkState struct {
	t        *testing.T
	leaves   int
	seenKeys map[string]bool
}

func auditTree[V any](t *testing.T, root node.Ref[V]) int {
	t.Helper()

	ws := &walkState{t: t, seenKeys: map[string]bool{}}
	auditRef(ws, root)

	return ws.leaves
}

func auditRef[V any](ws *walkState, ref node.Ref[V]) {
	switch ref.Type() {
	case node.TypeNone:
		return

	case node.TypeLeaf:
		leaf := ref.AsLeaf()
		ws.leaves++

		key := string(leaf.Key)
		require.False(ws.t, ws.seenKeys[key], "duplicate leaf key %q reachable twice", key)
		ws.seenKeys[key] = true

	default:
		n := ref.AsNode()
		occ := node.Occupancy(n)

		switch n.Type() {
		case node.TypeNode4:
			require.GreaterOrEqual(ws.t, occ, 2)
			require.LessOrEqual(ws.t, occ, 4)
			requireSortedKeys(ws.t, n.(*node.Node4[V]).Keys())
		case node.TypeNode16:
			require.GreaterOrEqual(ws.t, occ, 5)
			require.LessOrEqual(ws.t, occ, 16)
			requireSortedKeys(ws.t, n.(*node.Node16[V]).Keys())
		case node.TypeNode48:
			require.GreaterOrEqual(ws.t, occ, 17)
			require.LessOrEqual(ws.t, occ, 48)
		case node.TypeNode256:
			require.GreaterOrEqual(ws.t, occ, 49)
			require.LessOrEqual(ws.t, occ, 256)
		}

		if pc := *n.PrefixedChild(); !pc.Empty() {
			require.Equal(ws.t, node.TypeLeaf, pc.Type(), "prefixedChild must be a leaf")
			auditRef(ws, pc)
		}

		walkChildren(ws, n)
	}
}

// requireSortedKeys asserts keys is strictly increasing, the invariant
// Node4 and Node16 must hold at rest so Minimum can read off the first
// slot instead of scanning for the smallest byte.
func requireSortedKeys(t *testing.T, keys []byte) {
	t.Helper()

	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1], keys[i], "keys not strictly increasing: %v", keys)
	}
}

func walkChildren[V any](ws *walkState, n node.Node[V]) {
	for b := 0; b < 256; b++ {
		if slot := n.FindChild(byte(b)); slot != nil {
			auditRef(ws, *slot)
		}
	}
}

func TestStructuralInvariantsUnderRandomChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	tr := arttree.New[int](&arena.Recycled{})
	defer tr.Close()

	present := map[int]bool{}

	for round := 0; round < 5000; round++ {
		i := rng.Intn(400)
		k := be32(i)

		if rng.Intn(2) == 0 {
			tr.Insert(k, i)
			present[i] = true
		} else {
			tr.Remove(k)
			delete(present, i)
		}
	}

	for i := range present {
		v, ok := tr.Get(be32(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}

	leaves := auditTree[int](t, tr.Root())
	require.Equal(t, len(present), leaves)
	require.Equal(t, len(present), tr.Size())
}
