package rcs

import (
	"github.com/Steppenwolfe65/RCS-sub000/internal/leconv"
	"github.com/Steppenwolfe65/RCS-sub000/kmac"
	"github.com/Steppenwolfe65/RCS-sub000/kpa"
	"github.com/Steppenwolfe65/RCS-sub000/rijndael256"
)

// ctrTransform XORs the little-endian CTR keystream (Rijndael-256 applied
// to the running nonce, incremented after every block) into src, writing
// the result to dst. dst and src may be the same slice.
func (s *State) ctrTransform(dst, src []byte) {
	n := len(src)
	pos := 0
	for n >= BlockSize {
		var ks [BlockSize]byte
		copy(ks[:], s.nonce[:])
		rijndael256.EncryptBlock(&ks, s.roundKeys, s.rounds)
		for i := 0; i < BlockSize; i++ {
			dst[pos+i] = ks[i] ^ src[pos+i]
		}
		leconv.Increment(s.nonce[:])
		pos += BlockSize
		n -= BlockSize
	}
	if n != 0 {
		var ks [BlockSize]byte
		copy(ks[:], s.nonce[:])
		rijndael256.EncryptBlock(&ks, s.roundKeys, s.rounds)
		for i := 0; i < n; i++ {
			dst[pos+i] = ks[i] ^ src[pos+i]
		}
		leconv.Increment(s.nonce[:])
	}
}

// computeTag authenticates buf under the current MAC key, using KMAC or,
// when WithKPAAuthentication was selected at Initialize, the KPA tree-hash.
// The customization string is deliberately empty here — "info" seeds only
// the key schedule and the MAC-key rotation, not the per-call tag — a
// confirmed divergence from an idealized reading of the AEAD protocol,
// grounded in original_source/rcs.c's rcs_finalize calling
// kmac256(..., NULL, 0).
func (s *State) computeTag(buf []byte) []byte {
	macLen := s.macLength()
	if s.useKPA {
		return kpa.Sum256(s.macKey, buf, nil, macLen)
	}
	if s.variant == RCS256 {
		return kmac.Sum256(s.macKey, buf, nil, macLen)
	}
	return kmac.Sum512(s.macKey, buf, nil, macLen)
}

// finalize builds the MAC input buffer and computes the tag, then rotates
// the MAC key. macInput is the ciphertext (for encrypt) or the received
// ciphertext (for decrypt); ncopy is the nonce value captured before this
// Transform call began.
//
// The buffer layout is nonce(32) || macInput || ad || le64(mctr), but the
// associated-data length feeding mctr — and the offset the counter is
// written at — is read *after* the associated-data slot has already been
// cleared a few lines above, in both this Go port and the C original.
// That looks like a bug (the counter's trailing 8 bytes land inside the ad
// region, not after it, whenever ad is non-empty) but it is load-bearing
// for the published KAT vectors and is reproduced here bit-for-bit rather
// than "fixed": see original_source/rcs.c's rcs_finalize, where
// state->aadlen is zeroed by the `if (state->aadlen != 0)` block before
// the `mctr = ... + state->aadlen + ...` line below it ever reads it.
func (s *State) finalize(tagDst, macInput []byte, ncopy [BlockSize]byte) {
	adLen := len(s.aad)
	tlen := BlockSize + len(macInput) + adLen + 8

	buf := make([]byte, tlen)
	copy(buf, ncopy[:])
	copy(buf[BlockSize:], macInput)
	if adLen != 0 {
		copy(buf[BlockSize+len(macInput):], s.aad)
		s.aad = nil
		adLen = 0
	}

	mctr := uint64(BlockSize) + s.counter + uint64(adLen) + 8
	leconv.PutUint64(buf[BlockSize+len(macInput)+adLen:], mctr)

	tag := s.computeTag(buf)
	copy(tagDst, tag)

	s.rotateMACKey()
}

// Transform encrypts or decrypts in one call, per the mode fixed at
// Initialize.
//
// Encrypt: len(dst) must be len(src)+macLen; Transform always returns true.
// Decrypt: src is ciphertext||tag; len(dst) must be len(src)-macLen.
// Transform returns false, writing nothing to dst, if the tag does not
// verify.
func (s *State) Transform(dst, src []byte) bool {
	s.mustBeReady()
	macLen := s.macLength()
	ncopy := s.nonce

	if s.encrypt {
		ctLen := len(src)
		s.counter += uint64(ctLen)
		s.ctrTransform(dst[:ctLen], src)
		s.finalize(dst[ctLen:ctLen+macLen], dst[:ctLen], ncopy)
		return true
	}

	ctLen := len(src) - macLen
	s.counter += uint64(ctLen)
	code := make([]byte, macLen)
	s.finalize(code, src[:ctLen], ncopy)
	if !leconv.Equal(code, src[ctLen:]) {
		return false
	}
	s.ctrTransform(dst[:ctLen], src[:ctLen])
	return true
}
