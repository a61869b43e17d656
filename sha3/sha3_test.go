// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// These tests are a subset of those provided by the Keccak web site (http://keccak.noekeon.org/)
// and by FIPS 202 itself.

import (
	"bytes"
	"encoding/hex"
	"hash"
	"strings"
	"testing"
)

// testDigests maintains a constructor for each standard fixed-output size.
var testDigests = map[string]func() hash.Hash{
	"SHA3-224": New224,
	"SHA3-256": New256,
	"SHA3-384": New384,
	"SHA3-512": New512,
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// TestShortVector reproduces the canonical one-byte ("0xCC") Keccak test
// vector across all four fixed-output sizes.
func TestShortVector(t *testing.T) {
	want := map[string]string{
		"SHA3-224": "DF70ADC49B2E76EEE3A6931B93FA41841C3AF2CDF5B32A18B5478C39",
		"SHA3-256": "677035391CD3701293D385F037BA32796252BB7CE180B00B582DD9B20AAAD7F0",
		"SHA3-384": "5EE7F374973CD4BB3DC41E3081346798497FF6E36CB9352281DFE07D07FC530CA9AD8EF7AAD56EF5D41BE83D5E543807",
		"SHA3-512": "3939FCC8B57B63612542DA31A834E5DCC36E2EE0F652AC72E02624FA2E5ADEECC7DD6BB3580224B4D6138706FC6E80597B528051230B00621CC2B22999EAA205",
	}
	for name, ctor := range testDigests {
		d := ctor()
		d.Write([]byte{0xCC})
		got := strings.ToUpper(hex.EncodeToString(d.Sum(nil)))
		if got != want[name] {
			t.Errorf("%s(0xCC) = %s, want %s", name, got, want[name])
		}
	}
}

// TestSHA3_256Empty reproduces SHA3-256 of the empty string.
func TestSHA3_256Empty(t *testing.T) {
	want := "A7FFC6F8BF1ED76651C14756A061D662F580FF4DE43B49FA82D80A4B80F8434A"
	sum := Sum256(nil)
	got := strings.ToUpper(hex.EncodeToString(sum[:]))
	if got != want {
		t.Errorf("SHA3-256(\"\") = %s, want %s", got, want)
	}
}

// TestSHA3_512ABC reproduces SHA3-512 of the three-byte message "abc".
func TestSHA3_512ABC(t *testing.T) {
	want := "B751850B1A57168A5693CD924B6B096E08F621827444F70D884F5D0240D2712E10E116E9192AF3C91A7EC57647E3934057340B4CF408D5A56592F8274EEC53F0"
	sum := Sum512([]byte("abc"))
	got := strings.ToUpper(hex.EncodeToString(sum[:]))
	if got != want {
		t.Errorf("SHA3-512(\"abc\") = %s, want %s", got, want)
	}
}

// TestUnalignedWrite tests that writing data in an arbitrary pattern with
// small input buffers gives the same digest as a single large write.
func TestUnalignedWrite(t *testing.T) {
	buf := sequentialBytes(0x10000)
	for alg, ctor := range testDigests {
		d := ctor()
		d.Write(buf)
		want := d.Sum(nil)

		d.Reset()
		offsets := [17]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 1}
		for i := 0; i < len(buf); {
			for _, j := range offsets {
				if j > len(buf)-i {
					j = len(buf) - i
				}
				d.Write(buf[i : i+j])
				i += j
				if i >= len(buf) {
					break
				}
			}
		}
		got := d.Sum(nil)
		if !bytes.Equal(got, want) {
			t.Errorf("unaligned writes, alg=%s\ngot  %x\nwant %x", alg, got, want)
		}
	}
}

func TestAppend(t *testing.T) {
	d := New224()
	for capacity := 2; capacity < 64; capacity += 64 {
		buf := make([]byte, 2, capacity)
		d.Reset()
		d.Write([]byte{0xcc})
		buf = d.Sum(buf)
		expected := "0000DF70ADC49B2E76EEE3A6931B93FA41841C3AF2CDF5B32A18B5478C39"
		if got := strings.ToUpper(hex.EncodeToString(buf)); got != expected {
			t.Errorf("got %s, want %s", got, expected)
		}
	}
}

// TestShakeReadMultiple checks that Read can be called repeatedly and that
// the concatenation of several short reads equals one long read.
func TestShakeReadMultiple(t *testing.T) {
	msg := []byte("shake squeeze boundary test")

	full := NewShake256()
	full.Write(msg)
	wantBuf := make([]byte, 300)
	full.Read(wantBuf)

	split := NewShake256()
	split.Write(msg)
	gotBuf := make([]byte, 300)
	for i := 0; i < len(gotBuf); {
		n := 7
		if n > len(gotBuf)-i {
			n = len(gotBuf) - i
		}
		split.Read(gotBuf[i : i+n])
		i += n
	}
	if !bytes.Equal(gotBuf, wantBuf) {
		t.Fatalf("split reads diverged from one long read")
	}
}

// TestShakeCloneIndependence checks that a clone's future reads don't affect
// the original, and vice versa.
func TestShakeCloneIndependence(t *testing.T) {
	h := NewShake128()
	h.Write([]byte("independent clones"))

	clone := h.Clone()

	a := make([]byte, 32)
	b := make([]byte, 32)
	h.Read(a)
	clone.Read(b)
	if !bytes.Equal(a, b) {
		t.Fatalf("clone diverged from parent's continuation: %x != %x", a, b)
	}

	// Further reads on the original must not perturb the clone's state,
	// since they share no backing storage.
	more := make([]byte, 8)
	h.Read(more)
	cloneMore := make([]byte, 8)
	clone.Read(cloneMore)
	if !bytes.Equal(more, cloneMore) {
		t.Fatalf("clone and parent diverged on matched continuations")
	}
}

// sequentialBytes produces a buffer of size consecutive bytes 0x00, 0x01, ...
func sequentialBytes(size int) []byte {
	result := make([]byte, size)
	for i := range result {
		result[i] = byte(i)
	}
	return result
}

func benchmarkBulkHash(b *testing.B, h hash.Hash) {
	b.StopTimer()
	h.Reset()
	size := 1 << 14
	data := sequentialBytes(size)
	b.SetBytes(int64(size))
	b.StartTimer()

	var digest []byte
	for i := 0; i < b.N; i++ {
		h.Write(data)
		digest = h.Sum(digest[:0])
	}
	b.StopTimer()
	h.Reset()
}

func BenchmarkBulkSha3_512(b *testing.B) { benchmarkBulkHash(b, New512()) }
func BenchmarkBulkSha3_384(b *testing.B) { benchmarkBulkHash(b, New384()) }
func BenchmarkBulkSha3_256(b *testing.B) { benchmarkBulkHash(b, New256()) }
func BenchmarkBulkSha3_224(b *testing.B) { benchmarkBulkHash(b, New224()) }

func benchmarkSize(b *testing.B, size int) {
	bench := New256()
	buf := make([]byte, 8192)
	b.SetBytes(int64(size))
	sum := make([]byte, bench.Size())
	for i := 0; i < b.N; i++ {
		bench.Reset()
		bench.Write(buf[:size])
		bench.Sum(sum[:0])
	}
}

func BenchmarkHash8Bytes(b *testing.B) { benchmarkSize(b, 8) }
func BenchmarkHash1K(b *testing.B)     { benchmarkSize(b, 1024) }
func BenchmarkHash8K(b *testing.B)     { benchmarkSize(b, 8192) }
