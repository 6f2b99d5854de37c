package node_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/art/internal/arena"
	"github.com/corvidlabs/art/internal/node"
)

func TestRefTagging(t *testing.T) {
	var a arena.Recycled

	leaf := arena.New[node.Leaf[int]](&a, node.Leaf[int]{Key: []byte("x"), Value: 1})
	n4 := arena.New(&a, node.Node4[int]{})

	leafRef := node.RefOfLeaf(leaf)
	n4Ref := node.RefOfNode4(n4)

	require.Equal(t, node.TypeLeaf, leafRef.Type())
	require.Equal(t, node.TypeNode4, n4Ref.Type())
	require.Same(t, leaf, leafRef.AsLeaf())
	require.Same(t, n4, n4Ref.AsNode4())
	require.True(t, node.Nil[int]().Empty())
	require.False(t, leafRef.Empty())
}

func TestNode4AddFindRemoveChild(t *testing.T) {
	var a arena.Recycled

	n := &node.Node4[int]{}
	leaves := make([]*node.Leaf[int], 4)

	for i := 0; i < 4; i++ {
		leaves[i] = arena.New(&a, node.Leaf[int]{Value: i})
		n.AddChild(byte('a'+i), node.RefOfLeaf(leaves[i]))
	}

	require.True(t, n.Full())
	require.Equal(t, 4, n.NumChildren())

	for i := 0; i < 4; i++ {
		slot := n.FindChild(byte('a' + i))
		require.NotNil(t, slot)
		require.Same(t, leaves[i], slot.AsLeaf())
	}

	require.Nil(t, n.FindChild('z'))

	mid := n.FindChild('b')
	n.RemoveChild(mid)

	require.Equal(t, 3, n.NumChildren())
	require.Nil(t, n.FindChild('b'))
	require.NotNil(t, n.FindChild('a'))
	require.NotNil(t, n.FindChild('c'))
	require.NotNil(t, n.FindChild('d'))
}

func TestNode4AddChildKeepsKeysSorted(t *testing.T) {
	var a arena.Recycled

	n := &node.Node4[int]{}
	for _, b := range []byte{'c', 'a', 'd', 'b'} {
		leaf := arena.New(&a, node.Leaf[int]{Value: int(b)})
		n.AddChild(b, node.RefOfLeaf(leaf))
	}

	require.Equal(t, []byte{'a', 'b', 'c', 'd'}, n.Keys())

	mid := n.FindChild('b')
	n.RemoveChild(mid)
	require.Equal(t, []byte{'a', 'c', 'd'}, n.Keys())

	for i, b := range n.Keys() {
		slot := n.FindChild(b)
		require.Equal(t, int(b), slot.AsLeaf().Value, "index %d", i)
	}
}

func TestNode16AddChildKeepsKeysSorted(t *testing.T) {
	var a arena.Recycled

	n := &node.Node16[int]{}
	order := []byte{9, 2, 15, 0, 7, 3}
	for _, b := range order {
		leaf := arena.New(&a, node.Leaf[int]{Value: int(b)})
		n.AddChild(b, node.RefOfLeaf(leaf))
	}

	require.Equal(t, []byte{0, 2, 3, 7, 9, 15}, n.Keys())

	mid := n.FindChild(7)
	n.RemoveChild(mid)
	require.Equal(t, []byte{0, 2, 3, 9, 15}, n.Keys())
}

func TestNode4GrowPreservesChildrenAndPrefix(t *testing.T) {
	var a arena.Recycled

	n := &node.Node4[int]{}
	n.SetPrefix([]byte("ab"), 2)

	for i := 0; i < 4; i++ {
		leaf := arena.New(&a, node.Leaf[int]{Value: i})
		n.AddChild(byte('a'+i), node.RefOfLeaf(leaf))
	}

	grown := n.Grow(&a)
	require.Equal(t, node.TypeNode16, grown.Type())
	require.Equal(t, 4, grown.NumChildren())

	bytes, length := grown.Prefix()
	require.Equal(t, 2, length)
	require.Equal(t, []byte("ab"), bytes)

	for i := 0; i < 4; i++ {
		slot := grown.FindChild(byte('a' + i))
		require.NotNil(t, slot)
		require.Equal(t, i, slot.AsLeaf().Value)
	}
}

func TestNode16GrowToNode48AndShrinkBack(t *testing.T) {
	var a arena.Recycled

	n := &node.Node16[int]{}
	for i := 0; i < 16; i++ {
		leaf := arena.New(&a, node.Leaf[int]{Value: i})
		n.AddChild(byte(i), node.RefOfLeaf(leaf))
	}

	require.True(t, n.Full())

	grown := n.Grow(&a)
	require.Equal(t, node.TypeNode48, grown.Type())
	require.Equal(t, 16, grown.NumChildren())

	for i := 0; i < 16; i++ {
		slot := grown.FindChild(byte(i))
		require.NotNil(t, slot)
		require.Equal(t, i, slot.AsLeaf().Value)
	}

	n48 := grown.(*node.Node48[int])
	for i := 16; i < 48; i++ {
		leaf := arena.New(&a, node.Leaf[int]{Value: i})
		n48.AddChild(byte(i), node.RefOfLeaf(leaf))
	}
	require.True(t, n48.Full())

	grown256 := n48.Grow(&a)
	require.Equal(t, node.TypeNode256, grown256.Type())
	for i := 0; i < 48; i++ {
		slot := grown256.FindChild(byte(i))
		require.NotNil(t, slot)
		require.Equal(t, i, slot.AsLeaf().Value)
	}

	backTo48 := grown256.Shrink(&a)
	require.Equal(t, node.TypeNode48, backTo48.Type())
	require.Equal(t, 48, backTo48.AsNode().NumChildren())
}

func TestNode4ShrinkCollapsesIntoByteChild(t *testing.T) {
	var a arena.Recycled

	n := &node.Node4[int]{}
	n.SetPrefix([]byte("ab"), 2)

	child := arena.New(&a, node.Node4[int]{})
	child.SetPrefix([]byte("yz"), 2)

	n.AddChild('x', node.RefOfNode4(child))

	replacement := n.Shrink(&a)
	require.Equal(t, node.TypeNode4, replacement.Type())
	require.Same(t, child, replacement.AsNode4())

	bytes, length := child.Prefix()
	require.Equal(t, 5, length) // "ab" + 'x' + "yz"
	require.Equal(t, []byte("abxyz"), bytes)
}

func TestNode4ShrinkCollapsesIntoPrefixedChild(t *testing.T) {
	var a arena.Recycled

	n := &node.Node4[int]{}
	n.SetPrefix([]byte("ab"), 2)

	leaf := arena.New(&a, node.Leaf[int]{Key: []byte("ab"), Value: 7})
	*n.PrefixedChild() = node.RefOfLeaf(leaf)

	replacement := n.Shrink(&a)
	require.Equal(t, node.TypeLeaf, replacement.Type())
	require.Same(t, leaf, replacement.AsLeaf())
}
