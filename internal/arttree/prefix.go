package arttree

import "github.com/corvidlabs/art/internal/node"

// longestCommonPrefix returns how many bytes a and b share, starting at
// depth into each.
func longestCommonPrefix(a, b []byte, depth int) int {
	max := len(a) - depth
	if rem := len(b) - depth; rem < max {
		max = rem
	}

	i := 0
	for ; i < max; i++ {
		if a[depth+i] != b[depth+i] {
			break
		}
	}

	return i
}

// checkPrefix reports whether n's inline prefix bytes match key starting
// at depth. It only inspects the bytes actually stored inline; a node
// whose logical prefix length exceeds the inline capacity is trusted
// optimistically past that point, and any false match is caught later by
// the terminal leaf's full-key comparison.
func checkPrefix[V any](n node.Node[V], key []byte, depth int) bool {
	bytes, _ := n.Prefix()
	if depth+len(bytes) > len(key) {
		return false
	}

	for i, b := range bytes {
		if key[depth+i] != b {
			return false
		}
	}

	return true
}

// prefixMismatch returns the number of leading bytes of n's prefix that
// match key starting at depth. When n's logical prefix length exceeds the
// inline capacity and every inline byte matches, it recovers the
// remaining bytes from a leaf under n to keep searching for the true
// mismatch point, rather than assuming the unverified tail matches.
func prefixMismatch[V any](n node.Node[V], key []byte, depth int) int {
	bytes, plen := n.Prefix()

	limit := plen
	if limit > node.MaxPrefixLen {
		limit = node.MaxPrefixLen
	}

	if rem := len(key) - depth; rem < limit {
		limit = rem
	}

	i := 0
	for ; i < limit; i++ {
		if key[depth+i] != bytes[i] {
			return i
		}
	}

	if plen <= node.MaxPrefixLen {
		return i
	}

	leaf := n.Minimum()
	if leaf == nil {
		return i
	}

	for i < plen && depth+i < len(key) && depth+i < len(leaf.Key) {
		if key[depth+i] != leaf.Key[depth+i] {
			break
		}

		i++
	}

	return i
}
