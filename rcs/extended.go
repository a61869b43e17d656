package rcs

import (
	"github.com/Steppenwolfe65/RCS-sub000/internal/leconv"
	"github.com/Steppenwolfe65/RCS-sub000/kmac"
)

// streamState tracks an in-progress ExtendedTransform session: the running
// MAC absorbs the session nonce once, then every chunk's ciphertext as it
// is produced, so the whole stream never needs to be buffered in memory to
// authenticate it as a single unit. There is no literal counterpart to this
// in original_source/rcs.c — the reference implementation only exposes a
// fixed-buffer transform — so this composes the same finalize/ctrTransform
// primitives Transform uses into a streaming-shaped operation, per
// spec.md's extended_transform description.
type streamState struct {
	mac      *kmac.State
	ncopy    [BlockSize]byte
	ctLen    uint64
	decCache []byte // decrypt only: buffered ciphertext, released at finalize
}

// ExtendedTransform processes one chunk of a streamed message. CTR-mode
// keystream is applied to every chunk as it arrives; the AEAD tag is only
// finalized — computed and appended (encrypt) or compared (decrypt) — when
// finalize is true, letting a caller authenticate an input too large to
// hold in one buffer as a single logical message.
//
// Encrypt: len(dst) must equal len(src); on the finalizing call, the tag is
// written to tag, which must hold at least macLen bytes — TagSize reports
// that length.
// Decrypt: on non-finalizing calls, ciphertext is buffered internally (the
// tag cannot be checked, and so no plaintext can be safely released, until
// the whole message is seen); on the finalizing call, dst must be sized for
// the full accumulated plaintext and tag must hold the received tag bytes.
func (s *State) ExtendedTransform(dst, src []byte, tag []byte, finalize bool) bool {
	s.mustBeReady()

	if s.streamState == nil {
		s.streamState = &streamState{
			mac:   kmac.New256(s.macKey, nil),
			ncopy: s.nonce,
		}
		if s.variant == RCS512 {
			s.streamState.mac = kmac.New512(s.macKey, nil)
		}
		s.streamState.mac.Write(s.streamState.ncopy[:])
	}
	st := s.streamState

	if s.encrypt {
		s.ctrTransform(dst, src)
		st.mac.Write(dst[:len(src)])
		st.ctLen += uint64(len(src))
		s.counter += uint64(len(src))

		if finalize {
			s.finalizeStream(st)
			macLen := s.macLength()
			copy(tag[:macLen], st.mac.Sum(macLen))
			s.rotateMACKey()
			s.streamState = nil
		}
		return true
	}

	st.decCache = append(st.decCache, src...)
	st.mac.Write(src)
	st.ctLen += uint64(len(src))
	s.counter += uint64(len(src))

	if !finalize {
		return true
	}

	s.finalizeStream(st)
	macLen := s.macLength()
	code := st.mac.Sum(macLen)
	ok := leconv.Equal(code, tag[:macLen])
	if ok {
		s.ctrTransform(dst[:len(st.decCache)], st.decCache)
	}
	s.rotateMACKey()
	s.streamState = nil
	return ok
}

// finalizeStream absorbs the associated data (if any) and the mac-input
// length counter into the running MAC, mirroring finalize's buffer layout:
// after nonce || ciphertext comes a tail of len(ad)+8 bytes holding ad, with
// le64(32+counter+8) written over its first 8 bytes. As in the fixed-buffer
// path, the ad length contributes 0 to the counter term once consumed.
func (s *State) finalizeStream(st *streamState) {
	tail := make([]byte, len(s.aad)+8)
	copy(tail, s.aad)
	s.aad = nil
	mctr := uint64(BlockSize) + s.counter + 8
	leconv.PutUint64(tail, mctr)
	st.mac.Write(tail)
}
