// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the SHA3 hash algorithm (formerly called Keccak) chosen by NIST in 2012.
// This file provides a SHA3 implementation which implements the standard hash.Hash interface.
// Writing input data, including padding, and reading output data are computed in this file.
// Note that the current implementation can compute the hash of an integral number of bytes only.
// This is a consequence of the hash interface in which a buffer of bytes is passed in.
// The internals of the Keccak-f function live in the internal/keccak package.
// For the detailed specification, refer to the Keccak web site (http://keccak.noekeon.org/).
package sha3

import (
	"hash"

	"github.com/Steppenwolfe65/RCS-sub000/internal/keccak"
)

// dsbyteSHA3 is the FIPS 202 domain-separation suffix for SHA3-n.
const dsbyteSHA3 = 0x06

// digest represents the partial evaluation of a fixed-output SHA3 checksum.
type digest struct {
	sponge     *keccak.Sponge
	outputSize int
}

// SpongeSize returns the width, in bytes, of the underlying permutation.
func (d *digest) SpongeSize() int { return keccak.StateSize }

// SecurityStrength returns the generic security strength, in bits, of this
// sponge instance.
func (d *digest) SecurityStrength() int {
	return 8 * (keccak.StateSize - d.sponge.Rate()) / 2
}

// Reset restores the digest to its initial, empty-input state.
func (d *digest) Reset() { d.sponge.Reset() }

// BlockSize returns the byte rate of the underlying sponge: the amount of
// input absorbed, or output produced, per application of the permutation.
// This doesn't have a standard interpretation for a sponge construction the
// way it does for a Merkle-Damgård hash, but it is the closest analogue.
func (d *digest) BlockSize() int { return d.sponge.Rate() }

// Size returns the output size of the hash function in bytes.
func (d *digest) Size() int { return d.outputSize }

// Write absorbs p into the hash state.
func (d *digest) Write(p []byte) (int, error) { return d.sponge.Write(p) }

// Sum appends the digest of all data written so far to in and returns the
// resulting slice, without modifying d's underlying state.
func (d *digest) Sum(in []byte) []byte {
	dup := d.sponge.Clone()
	return dup.Squeeze(in, d.outputSize)
}

func newFixed(rate, outputSize int) *digest {
	return &digest{sponge: keccak.NewSponge(rate, dsbyteSHA3), outputSize: outputSize}
}

// New224 creates a new SHA3-224 hash.Hash.
func New224() hash.Hash { return newFixed(200-2*224/8, 224/8) }

// New256 creates a new SHA3-256 hash.Hash.
func New256() hash.Hash { return newFixed(200-2*256/8, 256/8) }

// New384 creates a new SHA3-384 hash.Hash.
func New384() hash.Hash { return newFixed(200-2*384/8, 384/8) }

// New512 creates a new SHA3-512 hash.Hash.
func New512() hash.Hash { return newFixed(200-2*512/8, 512/8) }

// Sum224 returns the SHA3-224 checksum of data.
func Sum224(data []byte) (sum [28]byte) {
	h := New224()
	h.Write(data)
	copy(sum[:], h.Sum(nil))
	return
}

// Sum256 returns the SHA3-256 checksum of data.
func Sum256(data []byte) (sum [32]byte) {
	h := New256()
	h.Write(data)
	copy(sum[:], h.Sum(nil))
	return
}

// Sum384 returns the SHA3-384 checksum of data.
func Sum384(data []byte) (sum [48]byte) {
	h := New384()
	h.Write(data)
	copy(sum[:], h.Sum(nil))
	return
}

// Sum512 returns the SHA3-512 checksum of data.
func Sum512(data []byte) (sum [64]byte) {
	h := New512()
	h.Write(data)
	copy(sum[:], h.Sum(nil))
	return
}
