package keys

import "encoding/binary"

// The OrderedXxx types below encode ascending numeric order as ascending
// byte order, unlike the native-endian views above: each big-endian
// encodes its magnitude and, for signed types, flips the sign bit so
// that negative values sort before positive ones byte-wise.

// OrderedUint32 is a Uint32 key whose bytes sort in ascending numeric order.
type OrderedUint32 uint32

func (u OrderedUint32) Bytes() []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(u))
	return b[:]
}

// OrderedInt32 is an Int32 key whose bytes sort in ascending numeric order.
type OrderedInt32 int32

func (i OrderedInt32) Bytes() []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(i)^(1<<31))
	return b[:]
}

// OrderedUint64 is a Uint64 key whose bytes sort in ascending numeric order.
type OrderedUint64 uint64

func (u OrderedUint64) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(u))
	return b[:]
}

// OrderedInt64 is an Int64 key whose bytes sort in ascending numeric order.
type OrderedInt64 int64

func (i OrderedInt64) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i)^(1<<63))
	return b[:]
}
