package arena

import "unsafe"

// alloc carves sizeof(T) bytes for a value of type T out of a, returning
// an unsafe.Pointer ready to be cast to *T by the caller.
func alloc[T any](a Allocator) unsafe.Pointer {
	var zero T

	p := a.Alloc(int(unsafe.Sizeof(zero)))

	return unsafe.Pointer(p)
}

func ptrOf[T any](p *T) unsafe.Pointer { return unsafe.Pointer(p) }

func sizeOf[T any](v T) uintptr { return unsafe.Sizeof(v) }

func unsafeSlice(p *byte, n int) []byte {
	return unsafe.Slice(p, n)
}
