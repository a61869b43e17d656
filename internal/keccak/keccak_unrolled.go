package keccak

// PermuteUnrolled applies the full 24-round Keccak-f[1600] permutation with
// the round loop statically unrolled, trading the loop-and-index-table form
// of PermuteCompact for 24 straight-line calls against literal round
// constants. It must produce bit-identical output to PermuteCompact for
// every input; keccak_test.go pins that equivalence across random states.
func PermuteUnrolled(a *[25]uint64) {
	roundFunc(a, 0x0000000000000001)
	roundFunc(a, 0x0000000000008082)
	roundFunc(a, 0x800000000000808a)
	roundFunc(a, 0x8000000080008000)
	roundFunc(a, 0x000000000000808b)
	roundFunc(a, 0x0000000080000001)
	roundFunc(a, 0x8000000080008081)
	roundFunc(a, 0x8000000000008009)
	roundFunc(a, 0x000000000000008a)
	roundFunc(a, 0x0000000000000088)
	roundFunc(a, 0x0000000080008009)
	roundFunc(a, 0x000000008000000a)
	roundFunc(a, 0x000000008000808b)
	roundFunc(a, 0x800000000000008b)
	roundFunc(a, 0x8000000000008089)
	roundFunc(a, 0x8000000000008003)
	roundFunc(a, 0x8000000000008002)
	roundFunc(a, 0x8000000000000080)
	roundFunc(a, 0x000000000000800a)
	roundFunc(a, 0x800000008000000a)
	roundFunc(a, 0x8000000080008081)
	roundFunc(a, 0x8000000000008080)
	roundFunc(a, 0x0000000080000001)
	roundFunc(a, 0x8000000080008008)
}
