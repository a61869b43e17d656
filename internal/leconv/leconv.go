// Package leconv provides the little-endian packing, unpacking, counter
// increment, and constant-time comparison primitives shared by the sponge,
// Rijndael-256, and RCS layers.
package leconv

import "encoding/binary"

// Uint64 decodes a little-endian 64-bit value from the first 8 bytes of b.
func Uint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// PutUint64 encodes v into the first 8 bytes of b, little-endian.
func PutUint64(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// Uint32 decodes a little-endian 32-bit value from the first 4 bytes of b.
func Uint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// PutUint32 encodes v into the first 4 bytes of b, little-endian.
func PutUint32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// BigUint32 decodes a big-endian 32-bit value from the first 4 bytes of b.
//
// The RCS scalar round-key array is packed big-endian to match the CEX
// reference vectors (spec.md §9, "Mixed-endianness round-key packing").
func BigUint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// Increment adds one to the little-endian multi-byte integer in b,
// propagating the carry across b's full length. This is the RCS nonce-counter
// advance: le8increment in the reference implementation.
func Increment(b []byte) {
	for i := range b {
		b[i]++
		if b[i] != 0 {
			break
		}
	}
}

// Equal reports whether a and b are byte-for-byte equal, in time
// independent of where they first differ. Both slices must be the same
// length; a length mismatch returns false immediately (lengths are not
// secret in this module's usage: MAC tag sizes are fixed by the variant).
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var d uint16
	for i := range a {
		d |= uint16(a[i] ^ b[i])
	}
	return (1&((d-1)>>8))-1 == 0
}
