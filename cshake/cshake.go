// Package cshake implements the customizable SHAKE function (cSHAKE128,
// cSHAKE256, and a cSHAKE512 extension used by RCS-512's key schedule) from
// NIST SP 800-185, along with the left_encode/right_encode/encode_string/
// bytepad primitives that KMAC is also built from.
//
// cSHAKE differs from plain SHAKE only in how it mixes in a function-name
// string N and a customization string S before the message is absorbed; if
// both are empty, cSHAKE(M, N="", S="") is defined to equal SHAKE(M), which
// this package implements as a literal fast path rather than running the
// (degenerate) general construction.
package cshake

import (
	"github.com/Steppenwolfe65/RCS-sub000/internal/keccak"
)

// Domain separation suffixes, FIPS 202 / SP 800-185.
const (
	dsbyteSHAKE  = 0x1f
	dsbyteCSHAKE = 0x04
)

// Byte rates for the three cSHAKE security strengths this module uses.
const (
	Rate128 = 168
	Rate256 = 136
	Rate512 = 72
)

// LeftEncode returns the SP 800-185 left_encode of value: a length byte
// followed by value's big-endian minimal encoding. The all-zero value is a
// special case forced to a single zero byte (n is never allowed to be 0).
func LeftEncode(value uint64) []byte {
	n := encodedLen(value)
	buf := make([]byte, n+1)
	buf[0] = byte(n)
	for i := 1; i <= n; i++ {
		buf[i] = byte(value >> (8 * uint(n-i)))
	}
	return buf
}

// RightEncode returns the SP 800-185 right_encode of value: value's
// big-endian minimal encoding followed by a trailing length byte.
func RightEncode(value uint64) []byte {
	n := encodedLen(value)
	buf := make([]byte, n+1)
	for i := 1; i <= n; i++ {
		buf[i-1] = byte(value >> (8 * uint(n-i)))
	}
	buf[n] = byte(n)
	return buf
}

// encodedLen returns the number of bytes needed to hold value's big-endian
// representation, with the value==0 case forced to 1 (never 0) to match the
// reference left_encode/right_encode loop, which always emits at least one
// length/value byte.
func encodedLen(value uint64) int {
	n := 0
	for v := value; v != 0 && n < 8; v >>= 8 {
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}

// EncodeString returns left_encode(len(s)*8) || s, the SP 800-185
// encode_string primitive.
func EncodeString(s []byte) []byte {
	out := LeftEncode(uint64(len(s)) * 8)
	return append(out, s...)
}

// BytePad returns left_encode(rate) || concat(items...), zero-padded up to
// the next multiple of rate. The result's length is always a multiple of
// rate, which is what lets the sponge absorb it as whole blocks with no
// buffered remainder.
func BytePad(rate int, items ...[]byte) []byte {
	out := LeftEncode(uint64(rate))
	for _, item := range items {
		out = append(out, item...)
	}
	if rem := len(out) % rate; rem != 0 {
		out = append(out, make([]byte, rate-rem)...)
	}
	return out
}

// State is a cSHAKE instance: an absorbing/squeezing sponge that has already
// consumed its function-name and customization prefix, if any.
type State struct {
	sponge *keccak.Sponge
}

// New builds a cSHAKE instance at the given byte rate, mixing in name and
// custom before the caller's first Write. Per SP 800-185, an instance with
// both name and custom empty is exactly SHAKE at the same rate.
func New(rate int, name, custom []byte) *State {
	if len(name) == 0 && len(custom) == 0 {
		return &State{sponge: keccak.NewSponge(rate, dsbyteSHAKE)}
	}
	sponge := keccak.NewSponge(rate, dsbyteCSHAKE)
	prefix := BytePad(rate, EncodeString(name), EncodeString(custom))
	sponge.Write(prefix)
	return &State{sponge: sponge}
}

// New128 builds a cSHAKE128 instance (rate 168).
func New128(name, custom []byte) *State { return New(Rate128, name, custom) }

// New256 builds a cSHAKE256 instance (rate 136).
func New256(name, custom []byte) *State { return New(Rate256, name, custom) }

// New512 builds a cSHAKE512 instance (rate 72); not part of SP 800-185, but
// the natural extension RCS-512's wider key schedule needs.
func New512(name, custom []byte) *State { return New(Rate512, name, custom) }

// Write absorbs p into the instance.
func (s *State) Write(p []byte) (int, error) { return s.sponge.Write(p) }

// Read squeezes len(p) bytes of output, continuing from wherever the
// instance last left off.
func (s *State) Read(p []byte) (int, error) {
	out := s.sponge.Squeeze(nil, len(p))
	copy(p, out)
	return len(p), nil
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State { return &State{sponge: s.sponge.Clone()} }

// Sum128 is the one-shot cSHAKE128 entry point: Sum128(message, name,
// custom, outputLen).
func Sum128(message, name, custom []byte, outputLen int) []byte {
	s := New128(name, custom)
	s.Write(message)
	out := make([]byte, outputLen)
	s.Read(out)
	return out
}

// Sum256 is the one-shot cSHAKE256 entry point.
func Sum256(message, name, custom []byte, outputLen int) []byte {
	s := New256(name, custom)
	s.Write(message)
	out := make([]byte, outputLen)
	s.Read(out)
	return out
}

// Sum512 is the one-shot cSHAKE512 entry point.
func Sum512(message, name, custom []byte, outputLen int) []byte {
	s := New512(name, custom)
	s.Write(message)
	out := make([]byte, outputLen)
	s.Read(out)
	return out
}

// Lane512 is one lane of a Sum512X8 batch call: an independent
// (message, name, custom) triple with its own output length.
type Lane512 struct {
	Message   []byte
	Name      []byte
	Custom    []byte
	OutputLen int
}

// Sum512X8 runs eight independent cSHAKE512 instances and returns their
// eight outputs. This is the scalar reference form of the x8-lane batch
// interface: lane k's result is defined to equal Sum512(lanes[k].Message,
// lanes[k].Name, lanes[k].Custom, lanes[k].OutputLen), and no SIMD backend
// in this module may diverge from that.
func Sum512X8(lanes [8]Lane512) [8][]byte {
	var out [8][]byte
	for i, lane := range lanes {
		out[i] = Sum512(lane.Message, lane.Name, lane.Custom, lane.OutputLen)
	}
	return out
}

// Sum256X4 runs four independent cSHAKE256 instances and returns their four
// outputs, the x4-lane analogue of Sum512X8.
func Sum256X4(lanes [4]Lane512) [4][]byte {
	var out [4][]byte
	for i, lane := range lanes {
		out[i] = Sum256(lane.Message, lane.Name, lane.Custom, lane.OutputLen)
	}
	return out
}
