package kpa

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"
)

// TestSumIsDeterministic pins leaf-tree self-consistency: with no SIMD
// back-end to compare against, the scalar implementation must at least
// agree with itself across independent runs over the same input.
func TestSumIsDeterministic(t *testing.T) {
	key := []byte("kpa root key material")
	custom := []byte("kpa test context")
	msg := bytes.Repeat([]byte{0xAB}, 3*StripeSize+17)

	a := Sum256(key, msg, custom, 32)
	b := Sum256(key, msg, custom, 32)
	if !bytes.Equal(a, b) {
		t.Fatal("Sum256 not deterministic")
	}
}

// TestStreamingMatchesOneShot checks that writing a message in arbitrary
// chunks produces the same tag as a single Write call, across stripe
// boundaries.
func TestStreamingMatchesOneShot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), 1, 32).Draw(t, "key")
		custom := rapid.SliceOfN(rapid.Byte(), 0, 16).Draw(t, "custom")
		msg := rapid.SliceOfN(rapid.Byte(), 0, 3*StripeSize).Draw(t, "msg")

		want := Sum256(key, msg, custom, 32)

		s := New(key, custom)
		chunkSizes := rapid.SliceOfN(rapid.IntRange(1, 97), 0, 40).Draw(t, "chunks")
		off := 0
		for _, n := range chunkSizes {
			if off >= len(msg) {
				break
			}
			end := off + n
			if end > len(msg) {
				end = len(msg)
			}
			s.Write(msg[off:end])
			off = end
		}
		if off < len(msg) {
			s.Write(msg[off:])
		}
		got := s.Sum(32)

		if !bytes.Equal(got, want) {
			t.Fatalf("chunked Write diverged from one-shot Sum256")
		}
	})
}

// TestDifferentCustomizationDiverges checks the root customization actually
// separates domains.
func TestDifferentCustomizationDiverges(t *testing.T) {
	key := []byte("shared kpa key")
	msg := []byte("shared message body")
	a := Sum256(key, msg, []byte("ctx A"), 32)
	b := Sum256(key, msg, []byte("ctx B"), 32)
	if bytes.Equal(a, b) {
		t.Fatal("two different customizations produced the same KPA tag")
	}
}
