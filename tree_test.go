package art_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	art "github.com/corvidlabs/art"
	"github.com/corvidlabs/art/keys"
)

func TestStringKeyedTree(t *testing.T) {
	tr := art.New[keys.String, int]()
	defer tr.Close()

	old, replaced := tr.Insert("hello", 1)
	require.False(t, replaced)
	require.Zero(t, old)

	v, ok := tr.Get("hello")
	require.True(t, ok)
	require.Equal(t, 1, v)

	old, replaced = tr.Insert("hello", 2)
	require.True(t, replaced)
	require.Equal(t, 1, old)

	p := tr.GetPtr("hello")
	require.NotNil(t, p)
	*p = 99
	v, _ = tr.Get("hello")
	require.Equal(t, 99, v)

	removed, found := tr.Remove("hello")
	require.True(t, found)
	require.Equal(t, 99, removed)
	require.Equal(t, 0, tr.Size())
}

func TestInt32KeyedTree(t *testing.T) {
	tr := art.New[keys.Int32, string]()
	defer tr.Close()

	for i := int32(-5); i <= 5; i++ {
		tr.Insert(keys.Int32(i), "v")
	}

	require.Equal(t, 11, tr.Size())

	for i := int32(-5); i <= 5; i++ {
		v, ok := tr.Get(keys.Int32(i))
		require.True(t, ok)
		require.Equal(t, "v", v)
	}
}

func TestGetKeyValueReturnsQueryOnHit(t *testing.T) {
	tr := art.New[keys.String, int]()
	defer tr.Close()

	tr.Insert("abc", 7)

	k, v, ok := tr.GetKeyValue("abc")
	require.True(t, ok)
	require.Equal(t, keys.String("abc"), k)
	require.Equal(t, 7, v)

	_, _, ok = tr.GetKeyValue("missing")
	require.False(t, ok)
}

func TestWithInitialCapacityStillWorks(t *testing.T) {
	tr := art.New[keys.String, int](art.WithInitialCapacity(128))
	defer tr.Close()

	tr.Insert("a", 1)
	v, ok := tr.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
}
