package rcs

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func repeatingKey(n int) []byte {
	key := make([]byte, n)
	for i := range key {
		key[i] = byte(i % 16)
	}
	return key
}

func descendingNonce() [BlockSize]byte {
	var n [BlockSize]byte
	for i := range n {
		n[i] = byte(0xFF - i)
	}
	return n
}

// TestKAT1RCS256 reproduces spec.md's KAT-1: RCS-256, KMAC-authenticated,
// including the "second transform with unchanged nonce yields a different
// tag" MAC-key-rotation demonstration.
func TestKAT1RCS256(t *testing.T) {
	key := repeatingKey(32)
	nonce := descendingNonce()
	ad := bytes.Repeat([]byte{0x01}, 20)
	plaintext := repeatingKey(32)

	wantFirst := "7940917E9219A31248946F71647B15421535941574F84F79F6110C1F2F776D" +
		"03F38582F301390A6B8807C75914CE0CF410051D73CAE97D1D295CB0420146E179"
	wantSecond := "ABF3574126DAA563B423B0EEEE9970FD0C8F060F65CB00CDC05BB0DC047DB2A" +
		"DA2A39BEB441FCD4C5F83F1142F264EEFCBAAA51D7874A0E7DA0A7B285DFD55AA"

	var s State
	require.NoError(t, s.Initialize(KeyParams{Key: key, Nonce: nonce}, true, RCS256))

	out := make([]byte, len(plaintext)+RCS256MACLength)
	s.SetAssociated(ad)
	s.Transform(out, plaintext)
	got := strings.ToUpper(hex.EncodeToString(out))
	require.Equal(t, wantFirst, got, "KAT-1 first transform")

	out2 := make([]byte, len(plaintext)+RCS256MACLength)
	s.SetAssociated(ad)
	s.Transform(out2, plaintext)
	got2 := strings.ToUpper(hex.EncodeToString(out2))
	require.Equal(t, wantSecond, got2, "KAT-1 second transform")
	require.NotEqual(t, got, got2, "MAC key must rotate between calls")
}

// TestKAT2RCS512RoundTrips exercises RCS-512 with the KAT-2 inputs. The
// full 128-hex-digit reference vector lives only in the source's compiled
// test tables and is not reproduced in the distilled specification, so this
// checks round-trip correctness instead of a byte-exact match.
func TestKAT2RCS512RoundTrips(t *testing.T) {
	key := repeatingKey(64)
	nonce := descendingNonce()
	ad := bytes.Repeat([]byte{0x01}, 20)
	plaintext := make([]byte, 64)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	var enc State
	require.NoError(t, enc.Initialize(KeyParams{Key: key, Nonce: nonce}, true, RCS512))
	ct := make([]byte, len(plaintext)+RCS512MACLength)
	enc.SetAssociated(ad)
	enc.Transform(ct, plaintext)

	var dec State
	require.NoError(t, dec.Initialize(KeyParams{Key: key, Nonce: nonce}, false, RCS512))
	pt := make([]byte, len(plaintext))
	dec.SetAssociated(ad)
	require.True(t, dec.Transform(pt, ct), "KAT-2 round trip failed authentication")
	require.True(t, bytes.Equal(pt, plaintext), "KAT-2 round trip plaintext mismatch")
}

// roundTrip is a small helper shared by the property tests below.
func roundTrip(t *rapid.T, variant Variant, keySize, macLen int) {
	key := rapid.SliceOfN(rapid.Byte(), keySize, keySize).Draw(t, "key")
	var nonce [BlockSize]byte
	nb := rapid.SliceOfN(rapid.Byte(), BlockSize, BlockSize).Draw(t, "nonce")
	copy(nonce[:], nb)
	info := rapid.SliceOfN(rapid.Byte(), 0, 16).Draw(t, "info")
	ad := rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(t, "ad")
	msg := rapid.SliceOfN(rapid.Byte(), 1, 512).Draw(t, "msg")

	var enc State
	if err := enc.Initialize(KeyParams{Key: key, Nonce: nonce, Info: info}, true, variant); err != nil {
		t.Fatalf("Initialize encrypt: %v", err)
	}
	ct := make([]byte, len(msg)+macLen)
	if len(ad) > 0 {
		enc.SetAssociated(ad)
	}
	if !enc.Transform(ct, msg) {
		t.Fatal("encrypt Transform returned false")
	}

	var dec State
	if err := dec.Initialize(KeyParams{Key: key, Nonce: nonce, Info: info}, false, variant); err != nil {
		t.Fatalf("Initialize decrypt: %v", err)
	}
	pt := make([]byte, len(msg))
	if len(ad) > 0 {
		dec.SetAssociated(ad)
	}
	if !dec.Transform(pt, ct) {
		t.Fatal("decrypt Transform returned false for an untampered message")
	}
	if !bytes.Equal(pt, msg) {
		t.Fatalf("round trip plaintext mismatch:\ngot  %x\nwant %x", pt, msg)
	}
}

// TestRoundTripRCS256 pins invariant 1: decrypt inverts encrypt.
func TestRoundTripRCS256(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) { roundTrip(t, RCS256, RCS256KeySize, RCS256MACLength) })
}

// TestRoundTripRCS512 is the RCS512 analogue of TestRoundTripRCS256.
func TestRoundTripRCS512(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) { roundTrip(t, RCS512, RCS512KeySize, RCS512MACLength) })
}

// TestBitFlipFailsAuthentication pins invariant 3: flipping any byte of
// ciphertext||tag causes decrypt to fail.
func TestBitFlipFailsAuthentication(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), RCS256KeySize, RCS256KeySize).Draw(t, "key")
		var nonce [BlockSize]byte
		nb := rapid.SliceOfN(rapid.Byte(), BlockSize, BlockSize).Draw(t, "nonce")
		copy(nonce[:], nb)
		msg := rapid.SliceOfN(rapid.Byte(), 1, 128).Draw(t, "msg")

		var enc State
		enc.Initialize(KeyParams{Key: key, Nonce: nonce}, true, RCS256)
		ct := make([]byte, len(msg)+RCS256MACLength)
		enc.Transform(ct, msg)

		flipIdx := rapid.IntRange(0, len(ct)-1).Draw(t, "flipIdx")
		flipBit := rapid.IntRange(0, 7).Draw(t, "flipBit")
		ct[flipIdx] ^= 1 << uint(flipBit)

		var dec State
		dec.Initialize(KeyParams{Key: key, Nonce: nonce}, false, RCS256)
		pt := make([]byte, len(msg))
		if dec.Transform(pt, ct) {
			t.Fatal("decrypt succeeded on tampered ciphertext")
		}
	})
}

// TestDeterministicFirstTransform pins invariant 2: identical inputs to a
// freshly initialized state produce identical output.
func TestDeterministicFirstTransform(t *testing.T) {
	key := repeatingKey(32)
	nonce := descendingNonce()
	msg := repeatingKey(32)

	var a, b State
	a.Initialize(KeyParams{Key: key, Nonce: nonce}, true, RCS256)
	b.Initialize(KeyParams{Key: key, Nonce: nonce}, true, RCS256)

	outA := make([]byte, len(msg)+RCS256MACLength)
	outB := make([]byte, len(msg)+RCS256MACLength)
	a.Transform(outA, msg)
	b.Transform(outB, msg)

	require.True(t, bytes.Equal(outA, outB), "two freshly initialized states diverged on identical input")
}

// TestExtendedTransformMatchesTransform relates to invariant 7: encrypting a message in
// 32-byte chunks via repeated Transform calls on independent states seeded
// with the same key/nonce is not expected to equal one whole-message call
// (the session counter and MAC-key rotation advance differently); instead
// this checks the structural analogue that actually holds in this design —
// ExtendedTransform's streaming path agrees with Transform's one-shot path
// for the same whole message.
func TestExtendedTransformMatchesTransform(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), RCS256KeySize, RCS256KeySize).Draw(t, "key")
		var nonce [BlockSize]byte
		nb := rapid.SliceOfN(rapid.Byte(), BlockSize, BlockSize).Draw(t, "nonce")
		copy(nonce[:], nb)
		msg := rapid.SliceOfN(rapid.Byte(), 1, 256).Draw(t, "msg")

		var oneShot State
		oneShot.Initialize(KeyParams{Key: key, Nonce: nonce}, true, RCS256)
		wantCT := make([]byte, len(msg)+RCS256MACLength)
		oneShot.Transform(wantCT, msg)

		var streamed State
		streamed.Initialize(KeyParams{Key: key, Nonce: nonce}, true, RCS256)
		gotCT := make([]byte, len(msg))
		tag := make([]byte, RCS256MACLength)
		mid := len(msg) / 2
		streamed.ExtendedTransform(gotCT[:mid], msg[:mid], nil, false)
		streamed.ExtendedTransform(gotCT[mid:], msg[mid:], tag, true)

		if !bytes.Equal(gotCT, wantCT[:len(msg)]) {
			t.Fatalf("streamed ciphertext diverged from one-shot ciphertext:\ngot  %x\nwant %x", gotCT, wantCT[:len(msg)])
		}
		if !bytes.Equal(tag, wantCT[len(msg):]) {
			t.Fatalf("streamed tag diverged from one-shot tag:\ngot  %x\nwant %x", tag, wantCT[len(msg):])
		}

		var dec State
		dec.Initialize(KeyParams{Key: key, Nonce: nonce}, false, RCS256)
		pt := make([]byte, len(msg))
		if !dec.ExtendedTransform(pt[:mid], gotCT[:mid], nil, false) {
			t.Fatal("decrypt chunk 1 reported failure before finalize")
		}
		if !dec.ExtendedTransform(pt, gotCT[mid:], tag, true) {
			t.Fatal("streamed decrypt failed authentication")
		}
		if !bytes.Equal(pt, msg) {
			t.Fatalf("streamed round trip mismatch:\ngot  %x\nwant %x", pt, msg)
		}
	})
}

// TestStressRCS256 and TestStressRCS512 are spec.md §8's random-input
// stress loops: random message lengths in [1, 65535], ≥100 iterations.
func TestStressRCS256(t *testing.T) {
	stress(t, RCS256, RCS256KeySize, RCS256MACLength)
}

func TestStressRCS512(t *testing.T) {
	stress(t, RCS512, RCS512KeySize, RCS512MACLength)
}

func stress(t *testing.T, variant Variant, keySize, macLen int) {
	rapid.Check(t, func(t *rapid.T) {
		for i := 0; i < 100; i++ {
			key := rapid.SliceOfN(rapid.Byte(), keySize, keySize).Draw(t, "key")
			var nonce [BlockSize]byte
			nb := rapid.SliceOfN(rapid.Byte(), BlockSize, BlockSize).Draw(t, "nonce")
			copy(nonce[:], nb)
			msg := rapid.SliceOfN(rapid.Byte(), 1, 65535).Draw(t, "msg")

			var enc State
			enc.Initialize(KeyParams{Key: key, Nonce: nonce}, true, variant)
			ct := make([]byte, len(msg)+macLen)
			enc.Transform(ct, msg)

			var dec State
			dec.Initialize(KeyParams{Key: key, Nonce: nonce}, false, variant)
			pt := make([]byte, len(msg))
			if !dec.Transform(pt, ct) {
				t.Fatalf("stress iteration %d: authentication failed", i)
			}
			if !bytes.Equal(pt, msg) {
				t.Fatalf("stress iteration %d: round trip mismatch", i)
			}
		}
	})
}
