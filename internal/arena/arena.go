// Package arena provides a bump allocator used to back the ART node zoo.
//
// Nodes and leaves never escape to individual heap allocations: a Tree
// allocates every Node4/16/48/256 and every Leaf from an Arena, and frees
// them back to it explicitly during shrink/collapse and Remove, instead of
// leaving collection to the garbage collector. This keeps node-heavy
// workloads (millions of small fixed-size structs) off the GC's scan list.
// Tree.Close hands every remaining node and leaf back to the allocator one
// by one; it does not Reset the arena.
//
// This is a trimmed, safety-first rendition of the arena technique: it
// keeps the Allocator contract and the New/Free generic helpers, but
// allocates each block as a normal Go-GC-visible slice rather than
// reaching for manual chunk headers and escape-analysis tricks, since
// nothing in this module's hot path needs those.
package arena

import "unsafe"

// Align is the alignment every Alloc request is rounded up to.
const Align = int(unsafe.Sizeof(uintptr(0)))

// Allocator allocates and releases raw memory blocks.
type Allocator interface {
	// Alloc returns size bytes of zeroed, pointer-aligned memory.
	Alloc(size int) *byte

	// Release returns a previously allocated block back to the allocator.
	// size must match the size passed to the Alloc call that produced p.
	Release(p *byte, size int)
}

// Arena is a single-owner bump allocator. The zero Arena is ready to use.
//
// Arena never reuses memory released via Release; it only grows until
// Reset is called, at which point every block it has handed out becomes
// invalid. Use Recycled instead when a workload frees and re-allocates
// same-sized blocks often (Node4/Leaf churn under insert/remove).
type Arena struct {
	blocks [][]byte // every block this arena has ever allocated, kept alive for GC correctness
	cur    []byte   // the active block; Alloc carves off its front
	used   int      // total bytes handed out, for diagnostics
}

var _ Allocator = (*Arena)(nil)

const minBlockSize = 4 << 10 // 4 KiB

// Alloc allocates size bytes of zeroed, pointer-aligned memory.
func (a *Arena) Alloc(size int) *byte {
	n := alignUp(size)

	if n > len(a.cur) {
		a.grow(n)
	}

	p := &a.cur[0]
	a.cur = a.cur[n:]
	a.used += n

	return p
}

// Release is a no-op for Arena: memory is only reclaimed in bulk by Reset.
func (a *Arena) Release(p *byte, size int) {}

// Reset invalidates every block this arena has ever handed out, allowing
// the underlying memory to be garbage collected (or, for the single
// largest block, retained and reused for the arena's next lifetime).
func (a *Arena) Reset() {
	if len(a.blocks) == 0 {
		return
	}

	largest := a.blocks[len(a.blocks)-1]

	a.blocks = nil
	a.cur = nil
	a.used = 0

	a.blocks = append(a.blocks, largest[:cap(largest)])
	a.cur = a.blocks[0]
	clear(a.cur)
}

// Used reports the number of bytes handed out since the last Reset.
func (a *Arena) Used() int { return a.used }

// Reserve ensures the arena's current block has at least n free bytes,
// growing it up front rather than in however many doublings Alloc would
// otherwise take to get there. Callers that know roughly how many nodes
// they'll insert can use this to avoid early reallocations.
func (a *Arena) Reserve(n int) {
	if n <= len(a.cur) {
		return
	}

	a.grow(n)
}

func (a *Arena) grow(need int) {
	size := minBlockSize
	if len(a.blocks) > 0 {
		size = cap(a.blocks[len(a.blocks)-1]) * 2
	}

	for size < need {
		size *= 2
	}

	block := make([]byte, size)
	a.blocks = append(a.blocks, block)
	a.cur = block
}

func alignUp(size int) int {
	return (size + Align - 1) &^ (Align - 1)
}

// New allocates and initializes a value of type T from the allocator.
func New[T any](a Allocator, value T) *T {
	p := (*T)(alloc[T](a))
	*p = value

	return p
}

// Free releases a value of type T previously allocated with New.
func Free[T any](a Allocator, p *T) {
	var zero T

	a.Release((*byte)(ptrOf(p)), int(sizeOf(zero)))
}
