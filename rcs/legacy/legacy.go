// Package legacy implements the HMAC/SHA-2 authenticated variant of RCS,
// selected in original_source/rcs.c by building with RCS_HMAC_EXTENSION
// defined: the cipher core (key schedule, Rijndael-256 CTR transform, MAC-key
// rotation) is unchanged from the cSHAKE/KMAC build, but the per-call
// authentication tag is computed with HMAC-SHA-256 (RCS256) or HMAC-SHA-512
// (RCS512) in place of KMAC. This is the one deliberate standard-library
// dependency in this module: original_source/rcs.c's RCS_HMAC_EXTENSION
// branch itself calls into a bundled SHA-2/HMAC implementation rather than
// any ecosystem library, so crypto/hmac and crypto/sha256/crypto/sha512 are
// the direct idiomatic-Go equivalent — there is no third-party HMAC-SHA2
// package in the reference corpus to prefer over the standard one.
package legacy

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"errors"

	"github.com/Steppenwolfe65/RCS-sub000/cshake"
	"github.com/Steppenwolfe65/RCS-sub000/internal/leconv"
	"github.com/Steppenwolfe65/RCS-sub000/rijndael256"
)

// BlockSize matches rcs.BlockSize: the Rijndael-256 block and nonce width.
const BlockSize = 32

// Variant selects the RCS key size, round count, and MAC width.
type Variant int

const (
	RCS256 Variant = iota
	RCS512
)

const (
	RCS256KeySize = 32
	RCS512KeySize = 64

	// RCS256MACLength and RCS512MACLength are the HMAC tag widths: the
	// native output size of SHA-256 and SHA-512 respectively.
	RCS256MACLength = 32
	RCS512MACLength = 64

	// RCS256MKeyLength and RCS512MKeyLength are the internal HMAC key
	// widths, equal to the underlying hash's block size, per
	// original_source/rcs.c's RCS256_MKEY_LENGTH/RCS512_MKEY_LENGTH under
	// RCS_HMAC_EXTENSION.
	RCS256MKeyLength = 64
	RCS512MKeyLength = 128

	rcs256Rounds = 22
	rcs512Rounds = 30

	nameLength = 17
)

// The HMAC-extension name tags: identical to the KMAC build's tags except
// for the 'H' in place of 'K' at index 13, per original_source/rcs.c's
// RCS_HMAC_EXTENSION rcs256_name/rcs512_name.
var rcs256Name = [nameLength]byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x01, 'R', 'C', 'S', 'H', '2', '5', '6',
}

var rcs512Name = [nameLength]byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x02, 'R', 'C', 'S', 'H', '5', '1', '2',
}

var (
	ErrInvalidKeySize = errors.New("rcs/legacy: key length does not match variant")
	ErrUnknownVariant = errors.New("rcs/legacy: unknown variant")
)

var errUninitialized = errors.New("rcs/legacy: state used before Initialize or after Dispose")

// KeyParams bundles Initialize's inputs, matching the cSHAKE/KMAC build's
// rcs.KeyParams.
type KeyParams struct {
	Key   []byte
	Nonce [BlockSize]byte
	Info  []byte
}

// State is an HMAC-authenticated RCS cipher session.
type State struct {
	variant   Variant
	encrypt   bool
	rounds    int
	roundKeys []uint32
	macKey    []byte
	nonce     [BlockSize]byte
	counter   uint64
	custom    []byte
	aad       []byte
	ready     bool
}

// Initialize derives round keys and an HMAC key via the same cSHAKE key
// schedule the KMAC build uses, then readies the state for Transform.
func (s *State) Initialize(kp KeyParams, encrypt bool, variant Variant) error {
	switch variant {
	case RCS256:
		if len(kp.Key) != RCS256KeySize {
			return ErrInvalidKeySize
		}
	case RCS512:
		if len(kp.Key) != RCS512KeySize {
			return ErrInvalidKeySize
		}
	default:
		return ErrUnknownVariant
	}

	*s = State{
		variant: variant,
		encrypt: encrypt,
		nonce:   kp.Nonce,
		counter: 1,
		custom:  append([]byte(nil), kp.Info...),
		ready:   true,
	}
	if variant == RCS256 {
		s.rounds = rcs256Rounds
	} else {
		s.rounds = rcs512Rounds
	}

	s.expand(kp.Key)
	return nil
}

func (s *State) SetAssociated(ad []byte) {
	s.mustBeReady()
	s.aad = ad
}

func (s *State) Dispose() {
	for i := range s.roundKeys {
		s.roundKeys[i] = 0
	}
	for i := range s.macKey {
		s.macKey[i] = 0
	}
	for i := range s.custom {
		s.custom[i] = 0
	}
	for i := range s.nonce {
		s.nonce[i] = 0
	}
	*s = State{}
}

func (s *State) mustBeReady() {
	if !s.ready {
		panic(errUninitialized)
	}
}

// TagSize returns the HMAC tag length for this state's variant.
func (s *State) TagSize() int {
	if s.variant == RCS256 {
		return RCS256MACLength
	}
	return RCS512MACLength
}

func (s *State) mKeyLength() int {
	if s.variant == RCS256 {
		return RCS256MKeyLength
	}
	return RCS512MKeyLength
}

func (s *State) nameTag() [nameLength]byte {
	if s.variant == RCS256 {
		return rcs256Name
	}
	return rcs512Name
}

func (s *State) cshakeRate() int {
	if s.variant == RCS256 {
		return cshake.Rate256
	}
	return cshake.Rate512
}

// expand mirrors rcs.State.expand: round keys and the HMAC key are both
// drawn from one continuing cSHAKE stream seeded by the cipher key, the
// HMAC key starting at the next output block after the round keys.
func (s *State) expand(key []byte) {
	name := s.nameTag()
	roundKeyWords := (s.rounds + 1) * (BlockSize / 4)

	cs := cshake.New(s.cshakeRate(), name[:], s.custom)
	cs.Write(key)

	roundKeyBytes := make([]byte, roundKeyWords*4)
	cs.Read(roundKeyBytes)

	s.roundKeys = make([]uint32, roundKeyWords)
	for i := range s.roundKeys {
		s.roundKeys[i] = leconv.BigUint32(roundKeyBytes[i*4:])
	}

	if rem := len(roundKeyBytes) % s.cshakeRate(); rem != 0 {
		cs.Read(make([]byte, s.cshakeRate()-rem))
	}

	s.macKey = make([]byte, s.mKeyLength())
	cs.Read(s.macKey)
}

// rotateMACKey chains the HMAC key forward through cSHAKE exactly as the
// KMAC build does — original_source/rcs.c's RCS_HMAC_EXTENSION branch still
// calls cshake256/cshake512 to rotate state->mkey, only the tag computation
// itself switches to HMAC.
func (s *State) rotateMACKey() {
	name := s.nameTag()
	leconv.PutUint64(name[:8], s.counter)

	cs := cshake.New(s.cshakeRate(), name[:], s.custom)
	cs.Write(s.macKey)

	newKey := make([]byte, len(s.macKey))
	cs.Read(newKey)
	s.macKey = newKey
}

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

func (s *State) computeTag(buf []byte) []byte {
	if s.variant == RCS256 {
		h := hmac.New(sha256.New, s.macKey)
		h.Write(buf)
		return h.Sum(nil)
	}
	h := hmac.New(sha512.New, s.macKey)
	h.Write(buf)
	return h.Sum(nil)
}

// finalize reproduces the same mac-input buffer layout, and the same
// aadlen-zeroed-before-read quirk, as rcs.State.finalize — see that
// function's doc comment for the full explanation of why the ad-length term
// in mctr is always 0 and the trailing counter always lands at offset
// 32+len(macInput).
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
// Initialize. See rcs.State.Transform for the exact contract.
func (s *State) Transform(dst, src []byte) bool {
	s.mustBeReady()
	macLen := s.TagSize()
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
