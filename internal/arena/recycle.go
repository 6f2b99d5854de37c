package arena

import "math/bits"

// Recycled is an Arena that also maintains per-size-class free lists, so
// that Release'd blocks are reused by a later Alloc of the same size
// instead of permanently retiring that memory until the next Reset.
//
// This matters for ART specifically: insert/remove churn Node4-sized and
// Leaf-sized blocks constantly as nodes grow, shrink and collapse, and a
// plain Arena would otherwise only ever grow.
type Recycled struct {
	Arena

	free [64][]*byte // indexed by size-class (log2 of the aligned size)
}

var _ Allocator = (*Recycled)(nil)

// Alloc returns size bytes, preferring a recycled block of the same size
// class over growing the arena. Fresh blocks are carved at the full size of
// their class, so any block in a class's free list can hold any request
// that maps to that class.
func (r *Recycled) Alloc(size int) *byte {
	if size == 0 {
		return r.Arena.Alloc(size)
	}

	class := sizeClass(size)

	if n := len(r.free[class]); n > 0 {
		p := r.free[class][n-1]
		r.free[class] = r.free[class][:n-1]

		clearBytes(p, alignUp(size))

		return p
	}

	return r.Arena.Alloc(1 << class)
}

// Release returns a block to the free list for its size class so a later
// Alloc of the same size can reuse it.
func (r *Recycled) Release(p *byte, size int) {
	if size == 0 || p == nil {
		return
	}

	class := sizeClass(size)
	r.free[class] = append(r.free[class], p)
}

// Reset drops every free list along with the underlying arena's blocks.
func (r *Recycled) Reset() {
	for i := range r.free {
		r.free[i] = nil
	}

	r.Arena.Reset()
}

func sizeClass(size int) int {
	n := alignUp(size)
	if n <= 0 {
		return 0
	}

	return bits.Len(uint(n - 1))
}

func clearBytes(p *byte, n int) {
	s := unsafeSlice(p, n)
	for i := range s {
		s[i] = 0
	}
}
