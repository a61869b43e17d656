// Package rcs implements RCS (Rijndael-256 authenticated Cipher Stream): a
// wide-block Rijndael-256 permutation run in little-endian counter mode,
// keyed by a cSHAKE-driven schedule, and authenticated by a KMAC tag whose
// key is rotated after every Transform call.
package rcs

import (
	"errors"

	"github.com/Steppenwolfe65/RCS-sub000/internal/cpufeature"
)

// BlockSize is the width, in bytes, of the Rijndael-256 block, the RCS
// nonce, and the CTR keystream unit.
const BlockSize = 32

// Variant selects the RCS key size, round count, and MAC width.
type Variant int

const (
	RCS256 Variant = iota
	RCS512
)

// String renders the variant name, primarily for logging and CLI output.
func (v Variant) String() string {
	if v == RCS512 {
		return "rcs512"
	}
	return "rcs256"
}

// Fixed sizes for the two variants, per spec.md §6.
const (
	RCS256KeySize   = 32
	RCS512KeySize   = 64
	RCS256MACLength = 32
	RCS512MACLength = 64

	rcs256Rounds = 22
	rcs512Rounds = 30

	nameLength = 17
)

// The 17-byte variant name tags mixed into the cSHAKE key schedule and,
// with their first 8 bytes overwritten by the session counter, into every
// MAC-key rotation. Byte-exact per original_source/rcs.c's non-HMAC-
// extension rcs256_name/rcs512_name ('K' for KMAC-authenticated, as
// opposed to 'H' for the legacy HMAC extension in rcs/legacy).
var rcs256Name = [nameLength]byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x01, 'R', 'C', 'S', 'K', '2', '5', '6',
}

var rcs512Name = [nameLength]byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x02, 'R', 'C', 'S', 'K', '5', '1', '2',
}

// Errors returned by Initialize. All other misuse (calling Transform before
// Initialize, re-using a disposed state) is a programming error and panics,
// matching spec.md §7's "implementations may abort, panic, or return an
// error, but must document and be consistent."
var (
	ErrInvalidKeySize = errors.New("rcs: key length does not match variant")
	ErrUnknownVariant = errors.New("rcs: unknown variant")
)

// errUninitialized is the panic value for any operation attempted before
// Initialize or after Dispose.
var errUninitialized = errors.New("rcs: state used before Initialize or after Dispose")

// KeyParams bundles Initialize's inputs: the cipher key, the 32-byte
// starting nonce, and an optional customization ("info") tweak that seeds
// both the key schedule and every MAC-key rotation, but deliberately not
// the per-call KMAC tag itself (see computeTag in transform.go).
type KeyParams struct {
	Key   []byte
	Nonce [BlockSize]byte
	Info  []byte
}

// Option configures optional behavior at Initialize time.
type Option func(*State)

// WithFeatures binds a runtime CPU-feature record to the state. The record
// is stored only: this package has a single, scalar block function
// (rijndael256.EncryptBlock), used whatever the record holds. This is
// always an explicit per-state choice,
// never a package-level dispatch decision (spec.md §9's redesign flag on
// preprocessor variant selection).
func WithFeatures(f cpufeature.Features) Option {
	return func(s *State) { s.features = f }
}

// WithKPAAuthentication selects the 8-lane KPA parallel tree-hash as the
// AEAD tag function of Transform in place of KMAC; ExtendedTransform always
// authenticates with KMAC. Off by default, per spec.md §9's open question
// on whether a production build should ever enable it.
func WithKPAAuthentication() Option {
	return func(s *State) { s.useKPA = true }
}

// State is an RCS cipher session: round keys, MAC key, nonce/counter, and
// mode (encrypt/decrypt). The zero value is not usable; call Initialize
// first. A State is not safe for concurrent use; callers must serialize
// access to it.
type State struct {
	variant  Variant
	encrypt  bool
	rounds   int
	roundKeys []uint32
	macKey   []byte
	nonce    [BlockSize]byte
	counter  uint64
	custom   []byte
	aad      []byte
	features cpufeature.Features
	useKPA   bool
	ready    bool

	streamState *streamState
}

// Initialize derives round keys and a MAC key from kp via the cSHAKE key
// schedule, and readies the state for repeated Transform calls. encrypt
// selects encryption or decryption mode for the lifetime of the state.
func (s *State) Initialize(kp KeyParams, encrypt bool, variant Variant, opts ...Option) error {
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

	for _, opt := range opts {
		opt(s)
	}

	s.expand(kp.Key)
	return nil
}

// SetAssociated attaches associated data to be authenticated (but not
// encrypted) by the next Transform or the finalizing ExtendedTransform
// call. It is cleared automatically once consumed.
func (s *State) SetAssociated(ad []byte) {
	s.mustBeReady()
	s.aad = ad
}

// Dispose zeroizes all secret material and returns the state to its
// uninitialized zero value.
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

// Nonce returns the current value of the state's own copy of the nonce,
// which Transform and ExtendedTransform advance by one per keystream block.
func (s *State) Nonce() [BlockSize]byte { return s.nonce }

// TagSize returns the MAC length, in bytes, for this state's variant: 32
// for RCS256, 64 for RCS512.
func (s *State) TagSize() int { return s.macLength() }

func (s *State) macLength() int {
	if s.variant == RCS256 {
		return RCS256MACLength
	}
	return RCS512MACLength
}

func (s *State) nameTag() [nameLength]byte {
	if s.variant == RCS256 {
		return rcs256Name
	}
	return rcs512Name
}
