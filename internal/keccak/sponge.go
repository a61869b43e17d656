package keccak

import "encoding/binary"

// maxRate is the upper bound on a sponge's rate enforced by newSponge: the
// full StateSize. The widest rate any consumer of Sponge asks for is
// SHAKE128's 168 bytes.
const maxRate = StateSize

// Sponge is a generic Keccak-f[1600] sponge: pad10*1 multi-rate padding,
// domain separation by a single trailing byte, and an absorb/squeeze
// interface shared by SHA-3, SHAKE, cSHAKE, and KMAC. It holds no notion of
// "fixed output" or hash.Hash bookkeeping; callers that need those wrap a
// Sponge the way sha3.digest and cshake.State do.
type Sponge struct {
	a         [25]uint64
	buf       [maxRate]byte
	rate      int
	dsbyte    byte
	position  int
	squeezing bool
	permuteFn func(*[25]uint64)
}

// NewSponge builds a sponge of the given byte rate, zero capacity padding
// excluded, using dsbyte as the domain-separation suffix XORed in before the
// final pad10*1 bit. rate must be in (0, StateSize]. The full 24-round
// Keccak-f[1600] permutation drives every absorb/squeeze step.
func NewSponge(rate int, dsbyte byte) *Sponge {
	return newSponge(rate, dsbyte, PermuteCompact)
}

// NewReducedSponge is the KPA leaf-state analogue of NewSponge: identical
// absorb/squeeze mechanics, but driven by the 12-round reduced permutation
// (spec.md §4.6) instead of the full 24-round Keccak-f[1600].
func NewReducedSponge(rate int, dsbyte byte) *Sponge {
	return newSponge(rate, dsbyte, Permute12)
}

func newSponge(rate int, dsbyte byte, permuteFn func(*[25]uint64)) *Sponge {
	if rate <= 0 || rate > maxRate {
		panic("keccak: sponge rate out of range")
	}
	return &Sponge{rate: rate, dsbyte: dsbyte, permuteFn: permuteFn}
}

// Rate returns the sponge's byte rate.
func (s *Sponge) Rate() int { return s.rate }

// Reset zeroes the permutation state and rewinds to absorbing.
func (s *Sponge) Reset() {
	for i := range s.a {
		s.a[i] = 0
	}
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.position = 0
	s.squeezing = false
}

// Clone returns an independent copy of s, sharing no backing storage.
func (s *Sponge) Clone() *Sponge {
	dup := *s
	return &dup
}

func (s *Sponge) xorBlockIn(block []byte) {
	n := len(block) / 8
	for i := 0; i < n; i++ {
		s.a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
}

func (s *Sponge) permute() {
	s.permuteFn(&s.a)
}

// Write absorbs p into the sponge, applying the permutation every time the
// internal buffer fills to a full rate block. It is safe to call again
// after Squeeze has begun only if Reset is called first.
func (s *Sponge) Write(p []byte) (int, error) {
	if s.squeezing {
		panic("keccak: Write called on a sponge that has begun squeezing")
	}
	written := len(p)
	for len(p) > 0 {
		space := s.rate - s.position
		n := space
		if n > len(p) {
			n = len(p)
		}
		copy(s.buf[s.position:], p[:n])
		s.position += n
		p = p[n:]
		if s.position == s.rate {
			s.xorBlockIn(s.buf[:s.rate])
			s.permute()
			for i := 0; i < s.rate; i++ {
				s.buf[i] = 0
			}
			s.position = 0
		}
	}
	return written, nil
}

// pad applies the domain-separator byte and the pad10*1 rule to the
// buffered partial block, absorbs it, and flips the sponge to squeezing.
func (s *Sponge) pad() {
	s.buf[s.position] ^= s.dsbyte
	s.buf[s.rate-1] ^= 0x80
	s.xorBlockIn(s.buf[:s.rate])
	s.permute()
	s.position = 0
	s.squeezing = true
}

// Squeeze appends n bytes of sponge output to dst and returns the result,
// applying the permutation for every additional rate-sized block needed.
func (s *Sponge) Squeeze(dst []byte, n int) []byte {
	if !s.squeezing {
		s.pad()
	}

	out := make([]byte, n)
	produced := 0
	for produced < n {
		if s.position == s.rate {
			s.permute()
			s.position = 0
		}
		// Copy straight from the lane state, little-endian, byte by byte,
		// rather than re-materializing a scratch buffer every block.
		avail := s.rate - s.position
		take := avail
		if take > n-produced {
			take = n - produced
		}
		for i := 0; i < take; i++ {
			pos := s.position + i
			lane := s.a[pos/8]
			shift := uint(pos%8) * 8
			out[produced+i] = byte(lane >> shift)
		}
		produced += take
		s.position += take
	}
	return append(dst, out...)
}
