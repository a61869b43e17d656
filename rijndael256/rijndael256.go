// Package rijndael256 implements the forward round function of the
// wide-block Rijndael-256 cipher (32-byte block arranged as 4 rows by 8
// four-byte columns) that RCS drives in counter mode. Only the
// forward direction is implemented: RCS never runs the cipher backwards,
// since counter mode always encrypts the nonce-counter block to produce
// keystream, for both encryption and decryption.
package rijndael256

// BlockSize is the width, in bytes, of a Rijndael-256 block.
const BlockSize = 32

// sBox is the standard AES/Rijndael S-box.
var sBox = [256]byte{
	0x63, 0x7C, 0x77, 0x7B, 0xF2, 0x6B, 0x6F, 0xC5, 0x30, 0x01, 0x67, 0x2B, 0xFE, 0xD7, 0xAB, 0x76,
	0xCA, 0x82, 0xC9, 0x7D, 0xFA, 0x59, 0x47, 0xF0, 0xAD, 0xD4, 0xA2, 0xAF, 0x9C, 0xA4, 0x72, 0xC0,
	0xB7, 0xFD, 0x93, 0x26, 0x36, 0x3F, 0xF7, 0xCC, 0x34, 0xA5, 0xE5, 0xF1, 0x71, 0xD8, 0x31, 0x15,
	0x04, 0xC7, 0x23, 0xC3, 0x18, 0x96, 0x05, 0x9A, 0x07, 0x12, 0x80, 0xE2, 0xEB, 0x27, 0xB2, 0x75,
	0x09, 0x83, 0x2C, 0x1A, 0x1B, 0x6E, 0x5A, 0xA0, 0x52, 0x3B, 0xD6, 0xB3, 0x29, 0xE3, 0x2F, 0x84,
	0x53, 0xD1, 0x00, 0xED, 0x20, 0xFC, 0xB1, 0x5B, 0x6A, 0xCB, 0xBE, 0x39, 0x4A, 0x4C, 0x58, 0xCF,
	0xD0, 0xEF, 0xAA, 0xFB, 0x43, 0x4D, 0x33, 0x85, 0x45, 0xF9, 0x02, 0x7F, 0x50, 0x3C, 0x9F, 0xA8,
	0x51, 0xA3, 0x40, 0x8F, 0x92, 0x9D, 0x38, 0xF5, 0xBC, 0xB6, 0xDA, 0x21, 0x10, 0xFF, 0xF3, 0xD2,
	0xCD, 0x0C, 0x13, 0xEC, 0x5F, 0x97, 0x44, 0x17, 0xC4, 0xA7, 0x7E, 0x3D, 0x64, 0x5D, 0x19, 0x73,
	0x60, 0x81, 0x4F, 0xDC, 0x22, 0x2A, 0x90, 0x88, 0x46, 0xEE, 0xB8, 0x14, 0xDE, 0x5E, 0x0B, 0xDB,
	0xE0, 0x32, 0x3A, 0x0A, 0x49, 0x06, 0x24, 0x5C, 0xC2, 0xD3, 0xAC, 0x62, 0x91, 0x95, 0xE4, 0x79,
	0xE7, 0xC8, 0x37, 0x6D, 0x8D, 0xD5, 0x4E, 0xA9, 0x6C, 0x56, 0xF4, 0xEA, 0x65, 0x7A, 0xAE, 0x08,
	0xBA, 0x78, 0x25, 0x2E, 0x1C, 0xA6, 0xB4, 0xC6, 0xE8, 0xDD, 0x74, 0x1F, 0x4B, 0xBD, 0x8B, 0x8A,
	0x70, 0x3E, 0xB5, 0x66, 0x48, 0x03, 0xF6, 0x0E, 0x61, 0x35, 0x57, 0xB9, 0x86, 0xC1, 0x1D, 0x9E,
	0xE1, 0xF8, 0x98, 0x11, 0x69, 0xD9, 0x8E, 0x94, 0x9B, 0x1E, 0x87, 0xE9, 0xCE, 0x55, 0x28, 0xDF,
	0x8C, 0xA1, 0x89, 0x0D, 0xBF, 0xE6, 0x42, 0x68, 0x41, 0x99, 0x2D, 0x0F, 0xB0, 0x54, 0xBB, 0x16,
}

// subBytes applies the S-box to every byte of the 32-byte state in place.
func subBytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = sBox[state[i]]
	}
}

// shiftRows256 cyclically rotates each of the 4 rows of the 4x8 column-
// major state (index = col*4+row) left by a row-specific offset: row 0 by
// 0, row 1 by 1, row 2 by 3, row 3 by 4 columns. This is the wide-block
// analogue of standard AES ShiftRows, widened from 4 to 8 columns.
func shiftRows256(state *[BlockSize]byte) {
	tmp := state[1]
	state[1] = state[5]
	state[5] = state[9]
	state[9] = state[13]
	state[13] = state[17]
	state[17] = state[21]
	state[21] = state[25]
	state[25] = state[29]
	state[29] = tmp

	tmp = state[2]
	state[2] = state[14]
	state[14] = state[26]
	state[26] = state[6]
	state[6] = state[18]
	state[18] = state[30]
	state[30] = state[10]
	state[10] = state[22]
	state[22] = tmp

	tmp = state[3]
	state[3] = state[19]
	state[19] = tmp

	tmp = state[7]
	state[7] = state[23]
	state[23] = tmp

	tmp = state[11]
	state[11] = state[27]
	state[27] = tmp

	tmp = state[15]
	state[15] = state[31]
	state[31] = tmp
}

// mixColumns applies the standard AES MixColumns matrix, independently, to
// each of the 8 four-byte groups of the state, over GF(2^8) with the AES
// reduction polynomial 0x11B.
func mixColumns(state *[BlockSize]byte) {
	for i := 0; i < BlockSize; i += 4 {
		s0 := uint32(state[i+0])
		s1 := uint32(state[i+1])
		s2 := uint32(state[i+2])
		s3 := uint32(state[i+3])

		t0 := (s0 << 1) ^ s1 ^ (s1 << 1) ^ s2 ^ s3
		t1 := s0 ^ (s1 << 1) ^ s2 ^ (s2 << 1) ^ s3
		t2 := s0 ^ s1 ^ (s2 << 1) ^ s3 ^ (s3 << 1)
		t3 := s0 ^ (s0 << 1) ^ s1 ^ s2 ^ (s3 << 1)

		state[i+0] = byte(t0 ^ gf256Reduce(t0))
		state[i+1] = byte(t1 ^ gf256Reduce(t1))
		state[i+2] = byte(t2 ^ gf256Reduce(t2))
		state[i+3] = byte(t3 ^ gf256Reduce(t3))
	}
}

// gf256Reduce folds bit 8 and above of x back in with the AES reduction
// polynomial 0x11B, using the branchless `(~(x>>8)+1) & 0x11B` mask trick:
// when x has no overflow bits, ~(x>>8)+1 == 0 and the term vanishes.
func gf256Reduce(x uint32) uint32 {
	y := x >> 8
	return (^y + 1) & 0x11B
}

// addRoundKey XORs 8 big-endian uint32 round-key words into the 32-byte
// state, one word per 4-byte column group. Round keys are packed
// big-endian to match the scalar (non-AES-NI) reference vectors.
func addRoundKey(state *[BlockSize]byte, key []uint32) {
	for i := 0; i < BlockSize; i += 4 {
		k := key[i/4]
		state[i+0] ^= byte(k >> 24)
		state[i+1] ^= byte(k >> 16)
		state[i+2] ^= byte(k >> 8)
		state[i+3] ^= byte(k)
	}
}

// EncryptBlock runs the forward Rijndael-256 round function over block,
// using rounds rounds and the given round-key schedule (rounds+1 groups of
// 8 big-endian uint32 words each, (rounds+1)*8 words total). The final
// round omits MixColumns, as in standard Rijndael/AES.
func EncryptBlock(block *[BlockSize]byte, roundKeys []uint32, rounds int) {
	addRoundKey(block, roundKeys[0:8])

	for r := 1; r < rounds; r++ {
		subBytes(block)
		shiftRows256(block)
		mixColumns(block)
		addRoundKey(block, roundKeys[r*8:r*8+8])
	}

	subBytes(block)
	shiftRows256(block)
	addRoundKey(block, roundKeys[rounds*8:rounds*8+8])
}
