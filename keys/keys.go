// Package keys defines the byte-view contract a tree key must satisfy and
// the concrete key types the tree ships with.
//
// A tree never interprets a key's bytes: it branches on them exactly as
// Bytes returns them, left to right. Fixed-width numeric keys are viewed
// as their raw native-endian memory, not converted to a numeric sort
// order; callers that need their integer keys to branch in ascending
// order need a key type that encodes that order into its bytes itself
// (see the OrderedXxx types in ordered.go).
package keys

import (
	"encoding/binary"
	"math"
)

// Keyer exposes the byte sequence a tree indexes a value under. Bytes must
// be stable: two calls on an unchanged key must return identical bytes,
// and distinct keys must return distinct byte sequences (no two logical
// keys may alias the same bytes).
type Keyer interface {
	Bytes() []byte
}

// String is a lexicographically-compared key.
type String string

func (s String) Bytes() []byte { return []byte(s) }

// Bytes is a lexicographically-compared key.
type Bytes []byte

func (b Bytes) Bytes() []byte { return b }

// Uint8 views its byte as-is.
type Uint8 uint8

func (u Uint8) Bytes() []byte { return []byte{byte(u)} }

// Int8 views its byte as-is. Two's-complement representation means this
// does NOT branch in signed numeric order; the OrderedXxx types in
// ordered.go that do cover only 32- and 64-bit widths.
type Int8 int8

func (i Int8) Bytes() []byte { return []byte{byte(i)} }

// Uint16 views its native-endian memory.
type Uint16 uint16

func (u Uint16) Bytes() []byte {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], uint16(u))
	return b[:]
}

// Int16 views its native-endian memory.
type Int16 int16

func (i Int16) Bytes() []byte {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], uint16(i))
	return b[:]
}

// Uint32 views its native-endian memory.
type Uint32 uint32

func (u Uint32) Bytes() []byte {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], uint32(u))
	return b[:]
}

// Int32 views its native-endian memory.
type Int32 int32

func (i Int32) Bytes() []byte {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], uint32(i))
	return b[:]
}

// Uint64 views its native-endian memory.
type Uint64 uint64

func (u Uint64) Bytes() []byte {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], uint64(u))
	return b[:]
}

// Int64 views its native-endian memory.
type Int64 int64

func (i Int64) Bytes() []byte {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], uint64(i))
	return b[:]
}

// Float32 views its native-endian IEEE-754 bit pattern.
type Float32 float32

func (f Float32) Bytes() []byte {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], math.Float32bits(float32(f)))
	return b[:]
}

// Float64 views its native-endian IEEE-754 bit pattern.
type Float64 float64

func (f Float64) Bytes() []byte {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], math.Float64bits(float64(f)))
	return b[:]
}
