// Package kmac implements KMAC128, KMAC256, and a KMAC512 extension (SP
// 800-185): a keyed MAC built directly on cSHAKE, used both as a standalone
// MAC and, in this module, as the RCS AEAD tag function.
package kmac

import (
	"github.com/Steppenwolfe65/RCS-sub000/cshake"
)

// kmacName is the fixed 4-byte function-name string "KMAC" every KMAC
// variant mixes into its first absorbed block, per SP 800-185.
var kmacName = []byte{0x4B, 0x4D, 0x41, 0x43}

// State is a KMAC instance: a cSHAKE sponge that has already absorbed the
// two-stage bytepad(encode_string("KMAC")||encode_string(custom)) and
// bytepad(encode_string(key)) blocks and is ready to absorb the message.
type State struct {
	cs *cshake.State
}

func newKeyed(rate int, key, custom []byte) *State {
	cs := cshake.New(rate, kmacName, custom)
	cs.Write(cshake.BytePad(rate, cshake.EncodeString(key)))
	return &State{cs: cs}
}

// New128 builds a KMAC128 instance (rate 168).
func New128(key, custom []byte) *State { return newKeyed(cshake.Rate128, key, custom) }

// New256 builds a KMAC256 instance (rate 136).
func New256(key, custom []byte) *State { return newKeyed(cshake.Rate256, key, custom) }

// New512 builds a KMAC512 instance (rate 72); not part of SP 800-185, but
// the natural widening RCS-512's MAC needs.
func New512(key, custom []byte) *State { return newKeyed(cshake.Rate512, key, custom) }

// Write absorbs more of the message.
func (s *State) Write(p []byte) (int, error) { return s.cs.Write(p) }

// Sum finalizes a copy of s with the SP 800-185 fixed-output-length
// suffix right_encode(outputLen*8) and squeezes outputLen bytes, leaving s
// itself able to keep absorbing (the same Clone-then-finalize idiom sha3's
// fixed-output Sum method uses).
func (s *State) Sum(outputLen int) []byte {
	dup := s.cs.Clone()
	dup.Write(cshake.RightEncode(uint64(outputLen) * 8))
	out := make([]byte, outputLen)
	dup.Read(out)
	return out
}

// Xof finalizes a copy of s as an extendable-output KMAC (KMACXOF): the SP
// 800-185 variant that encodes a length of zero instead of the true output
// length, letting the caller request any number of bytes from the result.
func (s *State) Xof(outputLen int) []byte {
	dup := s.cs.Clone()
	dup.Write(cshake.RightEncode(0))
	out := make([]byte, outputLen)
	dup.Read(out)
	return out
}

// Sum128 is the one-shot KMAC128 entry point.
func Sum128(key, message, custom []byte, outputLen int) []byte {
	s := New128(key, custom)
	s.Write(message)
	return s.Sum(outputLen)
}

// Sum256 is the one-shot KMAC256 entry point.
func Sum256(key, message, custom []byte, outputLen int) []byte {
	s := New256(key, custom)
	s.Write(message)
	return s.Sum(outputLen)
}

// Sum512 is the one-shot KMAC512 entry point.
func Sum512(key, message, custom []byte, outputLen int) []byte {
	s := New512(key, custom)
	s.Write(message)
	return s.Sum(outputLen)
}

// Lane is one lane of a batch Sum call: an independent
// (key, message, custom, outputLen) quadruple.
type Lane struct {
	Key       []byte
	Message   []byte
	Custom    []byte
	OutputLen int
}

// Sum256X4 runs four independent KMAC256 instances and returns their four
// tags. This is the scalar reference form of the x4-lane batch interface:
// lane k's result is defined to equal Sum256(lanes[k].Key, lanes[k].Message,
// lanes[k].Custom, lanes[k].OutputLen).
func Sum256X4(lanes [4]Lane) [4][]byte {
	var out [4][]byte
	for i, lane := range lanes {
		out[i] = Sum256(lane.Key, lane.Message, lane.Custom, lane.OutputLen)
	}
	return out
}

// Sum512X8 runs eight independent KMAC512 instances and returns their eight
// tags, the x8-lane analogue of Sum256X4.
func Sum512X8(lanes [8]Lane) [8][]byte {
	var out [8][]byte
	for i, lane := range lanes {
		out[i] = Sum512(lane.Key, lane.Message, lane.Custom, lane.OutputLen)
	}
	return out
}
