// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file defines the ShakeHash interface, and provides
// functions for creating SHAKE instances, as well as utility
// functions for hashing bytes to arbitrary-length output.
import (
	"errors"
	"io"

	"github.com/Steppenwolfe65/RCS-sub000/internal/keccak"
)

// dsbyteSHAKE is the FIPS 202 domain-separation suffix for SHAKE.
const dsbyteSHAKE = 0x1f

// ShakeHash defines the interface to hash functions that
// support arbitrary-length output.
type ShakeHash interface {
	// Write absorbs more data into the hash's state. It panics if input is
	// written to it after output has been read from it.
	io.Writer

	// Read reads more output from the hash; reading affects the hash's
	// state. (ShakeHash.Read is thus very different from Hash.Sum)
	// It never returns an error.
	io.Reader

	// Clone returns a copy of the ShakeHash in its current state.
	Clone() ShakeHash

	// Reset resets the ShakeHash to its initial state.
	Reset()
}

// shakeState adapts a keccak.Sponge to the ShakeHash interface.
type shakeState struct {
	sponge *keccak.Sponge
}

func (s *shakeState) Write(p []byte) (int, error) { return s.sponge.Write(p) }

func (s *shakeState) Read(p []byte) (int, error) {
	out := s.sponge.Squeeze(nil, len(p))
	copy(p, out)
	return len(p), nil
}

func (s *shakeState) Reset() { s.sponge.Reset() }

func (s *shakeState) Clone() ShakeHash {
	return &shakeState{sponge: s.sponge.Clone()}
}

func newShake(rate int) *shakeState {
	return &shakeState{sponge: keccak.NewSponge(rate, dsbyteSHAKE)}
}

// NewShake128 creates a new SHAKE128 variable-output-length ShakeHash.
// Its generic security strength is 128 bits against all attacks if at
// least 32 bytes of its output are used.
func NewShake128() ShakeHash { return newShake(168) }

// NewShake256 creates a new SHAKE256 variable-output-length ShakeHash.
// Its generic security strength is 256 bits against all attacks if
// at least 64 bytes of its output are used.
func NewShake256() ShakeHash { return newShake(136) }

// NewShake builds a SHAKE instance with the given generic security strength,
// in bits. strength must be a multiple of 32 and at most 504. The rate is
// StateSize - strength/4 bytes, so the largest accepted strength, 480 bits,
// gives an 80-byte rate.
func NewShake(strength int) (ShakeHash, error) {
	if strength <= 0 || strength > 504 {
		return nil, errors.New("sha3: strength must be in (0, 504] bits")
	}
	if strength%32 != 0 {
		return nil, errors.New("sha3: strength must be a multiple of 32 bits")
	}
	rate := keccak.StateSize - strength/4
	return newShake(rate), nil
}

// ShakeSum128 writes an arbitrary-length digest of data into hash.
func ShakeSum128(hash, data []byte) {
	h := NewShake128()
	h.Write(data)
	h.Read(hash)
}

// ShakeSum256 writes an arbitrary-length digest of data into hash.
func ShakeSum256(hash, data []byte) {
	h := NewShake256()
	h.Write(data)
	h.Read(hash)
}
