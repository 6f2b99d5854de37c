package simd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/art/internal/simd"
)

func TestFindByteAcrossLaneBoundary(t *testing.T) {
	keys := []byte{1, 5, 9, 20, 40, 60, 80, 100, 120, 3}

	for wantIdx, b := range keys {
		idx, ok := simd.FindByte(keys, b)
		require.True(t, ok)
		require.Equal(t, wantIdx, idx)
	}

	_, ok := simd.FindByte(keys, 200)
	require.False(t, ok)
}

func TestFindByteEmptyAndShort(t *testing.T) {
	_, ok := simd.FindByte(nil, 1)
	require.False(t, ok)

	idx, ok := simd.FindByte([]byte{7}, 7)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}
