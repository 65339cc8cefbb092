// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/flate"
)

// inflate decompresses a raw-DEFLATE stream produced by the
// in-package emitter through the general-purpose inflater, which
// accepts any conforming stream.
func inflate(t *testing.T, stream []byte) []byte {
	t.Helper()
	reader := flate.NewReader(bytes.NewReader(stream))
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("inflating %x: %v", stream, err)
	}
	if err := reader.Close(); err != nil {
		t.Fatalf("closing inflater: %v", err)
	}
	return data
}

func TestDeflateCompressFrozenStream(t *testing.T) {
	// The stream for twelve zero bytes is pinned by the deployed
	// transition rendering: literal 0x00, then an 11-byte match at
	// distance 1, in one final fixed-Huffman block. General-purpose
	// compressors emit different (valid) streams for this input; the
	// emitter exists to reproduce exactly this one.
	got := deflateCompress(make([]byte, 12))
	want := []byte{0x63, 0x40, 0x02, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("stream for twelve zero bytes: got %x, want %x", got, want)
	}
}

func TestDeflateCompressInflatesBack(t *testing.T) {
	pseudo := make([]byte, 3000)
	state := uint32(0x2545F491)
	for i := range pseudo {
		state = state*1664525 + 1013904223
		pseudo[i] = byte(state >> 24)
	}

	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single byte", []byte{0x5A}},
		{"two bytes", []byte{0xFF, 0x00}},
		{"twelve zeros", make([]byte, 12)},
		{"short text", []byte("rgb payload")},
		{"repeating text", bytes.Repeat([]byte("redundant "), 200)},
		{"long zero run", make([]byte, 5000)},
		{"high literals", bytes.Repeat([]byte{0x90, 0xA5, 0xFF}, 7)},
		{"pseudo random", pseudo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stream := deflateCompress(tc.data)
			if got := inflate(t, stream); !bytes.Equal(got, tc.data) {
				t.Fatalf("roundtrip mismatch: got %d bytes, want %d", len(got), len(tc.data))
			}
		})
	}
}

func TestDeflateCompressMatchBoundaries(t *testing.T) {
	// Run lengths around the length-symbol breakpoints: below the
	// minimum match, at each extra-bit boundary, at the 258-byte
	// match ceiling, and just past it.
	for _, run := range []int{1, 2, 3, 4, 10, 11, 12, 130, 131, 257, 258, 259, 600} {
		data := bytes.Repeat([]byte{0x07}, 1+run)
		stream := deflateCompress(data)
		if got := inflate(t, stream); !bytes.Equal(got, data) {
			t.Errorf("run length %d: roundtrip mismatch", run)
		}
	}
}

func TestDeflateCompressDistantMatch(t *testing.T) {
	// A repeat far from its first occurrence must be found across the
	// window, not re-emitted as literals.
	phrase := []byte("the quick brown fox jumps over the lazy dog")
	data := append([]byte(nil), phrase...)
	data = append(data, make([]byte, 20000)...)
	data = append(data, phrase...)

	stream := deflateCompress(data)
	if got := inflate(t, stream); !bytes.Equal(got, data) {
		t.Fatal("roundtrip mismatch")
	}
	if len(stream) >= len(data) {
		t.Errorf("stream is %d bytes for %d input bytes", len(stream), len(data))
	}
}

func TestDeflateCompressDeterministic(t *testing.T) {
	data := bytes.Repeat([]byte("determinism "), 40)
	first := deflateCompress(data)
	second := deflateCompress(data)
	if !bytes.Equal(first, second) {
		t.Errorf("streams differ: %x != %x", first, second)
	}
}
