// Package xunsafe provides a small set of raw-pointer primitives. The node
// package uses AddrOf and Sub to recover a child's index from its address
// inside a fixed-size array (Node4/Node16 RemoveChild); node.Ref does its
// own tagging with package unsafe directly. Valid, Ptr, Add, Cast and Raw
// have no caller in this module.
//
// This is a narrow slice of the teacher's xunsafe toolkit. Escape-analysis
// helpers, the untyped/VLA helpers and the PC-scanning helpers the
// original package also carries are not included.
package xunsafe

import "unsafe"

// Addr is a typed raw address, used to do pointer arithmetic that the Go
// type system otherwise forbids on typed pointers.
type Addr[T any] uintptr

// AddrOf returns the address of p.
func AddrOf[T any](p *T) Addr[T] {
	return Addr[T](uintptr(unsafe.Pointer(p)))
}

// Valid reports whether this address is non-zero.
func (a Addr[T]) Valid() bool { return a != 0 }

// Ptr reinterprets this address as a *T. Panics if the address is zero.
func (a Addr[T]) Ptr() *T {
	if a == 0 {
		panic("xunsafe: dereference of a zero address")
	}

	return (*T)(unsafe.Pointer(uintptr(a)))
}

// Add advances the address by n elements of T.
func (a Addr[T]) Add(n int) Addr[T] {
	var zero T

	return a + Addr[T](n)*Addr[T](unsafe.Sizeof(zero))
}

// Sub returns the element-wise distance (in units of T) between a and b,
// assuming both addresses point into the same array.
func (a Addr[T]) Sub(b Addr[T]) int {
	var zero T

	size := Addr[T](unsafe.Sizeof(zero))
	if size == 0 {
		return 0
	}

	return int((a - b) / size)
}

// Cast reinterprets a *From as a *To. The caller is responsible for the
// layouts being compatible.
func Cast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}

// Raw reinterprets an unsafe.Pointer as a *T.
func Raw[T any](p unsafe.Pointer) *T {
	return (*T)(p)
}
