// Package keccak implements the Keccak-f[1600] permutation and the
// absorb/squeeze sponge construction that SHA-3, SHAKE, cSHAKE, KMAC, and
// KPA are all built from.
//
// For a detailed specification, see http://keccak.noekeon.org/ and FIPS 202.
package keccak

// Rounds is the number of rounds in the full Keccak-f[1600] permutation.
const Rounds = 24

// ReducedRounds is the round count KPA uses for its reduced-round leaf
// permutation (spec.md §4.6).
const ReducedRounds = 12

// StateSize is the width, in bytes, of the Keccak-f[1600] state (25 lanes
// of 8 bytes each).
const StateSize = 200

// roundConstants are the 24 ι-step round constants from FIPS 202, table 1/2.
var roundConstants = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rhoOffsets are the ρ-step rotation amounts, indexed by lane as x+5y.
var rhoOffsets = [25]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

func rotl64(v uint64, n uint) uint64 {
	return (v << n) | (v >> (64 - n))
}

// PermuteCompact applies the full 24-round Keccak-f[1600] permutation to a,
// using the classical five-step (θ, ρ, π, χ, ι) decomposition in a loop.
// It is the reference form: clearer and slower than PermuteUnrolled, but
// they must agree bit-for-bit on every input (see keccak_test.go).
func PermuteCompact(a *[25]uint64) {
	permuteN(a, Rounds, 0)
}

// Permute12 applies the 12-round reduced permutation KPA uses for its leaf
// states. A reduced-round Keccak-p[1600,nr] instance always runs the LAST
// nr rounds of the 24-round schedule, not the first nr: the round index
// that feeds the ι step is anchored to round 23, the same as full Keccak-f,
// so the constants used here are roundConstants[12:24].
func Permute12(a *[25]uint64) {
	permuteN(a, ReducedRounds, Rounds-ReducedRounds)
}

// permuteN runs the θ,ρ,π,χ,ι round function `rounds` times, reading ι's
// constant from roundConstants[offset+round]. offset is 0 for full
// Keccak-f[1600] and Rounds-ReducedRounds for the reduced permutation, so
// both share the same round-numbering origin.
func permuteN(a *[25]uint64, rounds, offset int) {
	for round := 0; round < rounds; round++ {
		roundFunc(a, roundConstants[offset+round])
	}
}

// roundFunc applies one θ,ρ,π,χ,ι round to a, using rc as the ι constant.
// Both PermuteCompact/Permute12 (looped) and PermuteUnrolled (statically
// unrolled) drive this same step function, so their outputs are identical
// by construction rather than by coincidence of two independent codings.
func roundFunc(a *[25]uint64, rc uint64) {
	var c [5]uint64
	var d [5]uint64
	var b [25]uint64

	// θ
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			a[x+5*y] ^= d[x]
		}
	}

	// ρ and π: b[y, 2x+3y mod 5] = rotl(a[x,y], rho[x,y])
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b[y+5*((2*x+3*y)%5)] = rotl64(a[x+5*y], rhoOffsets[x+5*y])
		}
	}

	// χ
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a[x+5*y] = b[x+5*y] ^ ((^b[(x+1)%5+5*y]) & b[(x+2)%5+5*y])
		}
	}

	// ι
	a[0] ^= rc
}
