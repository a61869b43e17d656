package rcs

import (
	"github.com/Steppenwolfe65/RCS-sub000/cshake"
	"github.com/Steppenwolfe65/RCS-sub000/internal/leconv"
)

// expand derives the round-key schedule and the initial MAC key from key,
// via a single continuing cSHAKE stream: cshake(key, name=variant tag,
// custom=info), squeezed first for the round keys, then (without
// reinitializing) for the MAC key starting at the next output block — "two permutation calls to separate the
// cipher/mac key outputs", per original_source/rcs.c's rcs_secure_expand.
func (s *State) expand(key []byte) {
	name := s.nameTag()
	rate := cshake.Rate256
	macLen := RCS256MACLength
	if s.variant == RCS512 {
		rate = cshake.Rate512
		macLen = RCS512MACLength
	}

	roundKeyWords := (s.rounds + 1) * (BlockSize / 4)

	cs := cshake.New(rate, name[:], s.custom)
	cs.Write(key)

	roundKeyBytes := make([]byte, roundKeyWords*4)
	cs.Read(roundKeyBytes)

	// Realign in big-endian 32-bit words, matching the scalar (non-AES-NI)
	// reference vectors: original_source/rcs.c's be8to32 realignment.
	s.roundKeys = make([]uint32, roundKeyWords)
	for i := range s.roundKeys {
		s.roundKeys[i] = leconv.BigUint32(roundKeyBytes[i*4:])
	}

	// Start the MAC key on a fresh output block, so it comes from its own
	// permutation call rather than the tail of the last round-key block.
	if rem := len(roundKeyBytes) % rate; rem != 0 {
		cs.Read(make([]byte, rate-rem))
	}

	s.macKey = make([]byte, macLen)
	cs.Read(s.macKey)
}

// rotateMACKey chains the MAC key forward: mac_key <- cSHAKE(old_mac_key,
// name=variant tag with its first 8 bytes overwritten by le64(counter),
// custom=info). This runs unconditionally at the end of every finalize
// call, encrypt or decrypt, matching original_source/rcs.c's rcs_finalize.
func (s *State) rotateMACKey() {
	name := s.nameTag()
	leconv.PutUint64(name[:8], s.counter)

	rate := cshake.Rate256
	if s.variant == RCS512 {
		rate = cshake.Rate512
	}

	cs := cshake.New(rate, name[:], s.custom)
	cs.Write(s.macKey)

	newKey := make([]byte, len(s.macKey))
	cs.Read(newKey)
	s.macKey = newKey
}
