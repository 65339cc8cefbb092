// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package canonical

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
)

// sampleRecord exercises every primitive the stream layer offers.
type sampleRecord struct {
	Version uint16
	Flags   uint8
	Nonce   uint64
	Digest  [32]byte
	Body    []byte
	Items   []uint32
}

func (s *sampleRecord) EncodeCanonical(w *Writer) {
	w.Uint16(s.Version)
	w.Uint8(s.Flags)
	w.Uint64(s.Nonce)
	w.Raw(s.Digest[:])
	w.Bytes(s.Body)
	w.Count(len(s.Items))
	for _, item := range s.Items {
		w.Uint32(item)
	}
}

func (s *sampleRecord) DecodeCanonical(r *Reader) {
	s.Version = r.Uint16()
	s.Flags = r.Uint8()
	s.Nonce = r.Uint64()
	r.Raw(s.Digest[:])
	s.Body = r.Bytes()
	count := r.Count()
	if count > 0 {
		s.Items = make([]uint32, count)
		for i := range s.Items {
			s.Items[i] = r.Uint32()
		}
	}
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleRecord{
		Version: 2,
		Flags:   0x80,
		Nonce:   0xDEADBEEF01234567,
		Body:    []byte("payload bytes"),
		Items:   []uint32{1, 1000, math.MaxUint32},
	}
	for i := range original.Digest {
		original.Digest[i] = byte(i)
	}

	data, err := Marshal(&original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.Version != original.Version || decoded.Flags != original.Flags ||
		decoded.Nonce != original.Nonce || decoded.Digest != original.Digest {
		t.Errorf("scalar fields mismatch: got %+v, want %+v", decoded, original)
	}
	if !bytes.Equal(decoded.Body, original.Body) {
		t.Errorf("Body: got %x, want %x", decoded.Body, original.Body)
	}
	if len(decoded.Items) != len(original.Items) {
		t.Fatalf("Items length: got %d, want %d", len(decoded.Items), len(original.Items))
	}
	for i, item := range original.Items {
		if decoded.Items[i] != item {
			t.Errorf("Items[%d]: got %d, want %d", i, decoded.Items[i], item)
		}
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := sampleRecord{Version: 1, Body: []byte("abc"), Items: []uint32{7}}

	first, err := Marshal(&record)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(&record)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestZeroValueLayout(t *testing.T) {
	// The zero record must encode as all-zero bytes of its fixed
	// layout: 2 + 1 + 8 + 32 + 2 (empty body prefix) + 2 (empty
	// items count).
	data, err := Marshal(&sampleRecord{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := make([]byte, 2+1+8+32+2+2)
	if !bytes.Equal(data, want) {
		t.Errorf("zero value encoding: got %x, want %d zero bytes", data, len(want))
	}
}

func TestUnmarshalRejectsTruncation(t *testing.T) {
	record := sampleRecord{Version: 9, Body: []byte("hello"), Items: []uint32{1, 2, 3}}
	data, err := Marshal(&record)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// Every strict prefix of a valid encoding must be rejected.
	for cut := 0; cut < len(data); cut++ {
		var decoded sampleRecord
		err := Unmarshal(data[:cut], &decoded)
		if err == nil {
			t.Errorf("Unmarshal accepted truncation to %d of %d bytes", cut, len(data))
			continue
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("truncation to %d bytes: error %v does not wrap io.ErrUnexpectedEOF", cut, err)
		}
	}
}

func TestUnmarshalRejectsTrailingBytes(t *testing.T) {
	data, err := Marshal(&sampleRecord{Version: 1})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleRecord
	err = Unmarshal(append(data, 0x00), &decoded)
	if err == nil {
		t.Fatal("Unmarshal accepted trailing bytes")
	}
	if !strings.Contains(err.Error(), "trailing") {
		t.Errorf("error %q does not mention trailing bytes", err)
	}
}

func TestWriterRejectsOversizedCollection(t *testing.T) {
	w := NewWriter()
	w.Bytes(make([]byte, math.MaxUint16+1))
	if _, err := w.Finish(); err == nil {
		t.Error("Finish accepted a byte string over the uint16 count limit")
	}

	// The error sticks: later writes must not resurrect the writer.
	w.Uint8(1)
	if _, err := w.Finish(); err == nil {
		t.Error("sticky error was cleared by a subsequent write")
	}
}

func TestReaderEmptyByteStringDecodesNil(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00})
	if got := r.Bytes(); got != nil {
		t.Errorf("empty byte string decoded as %#v, want nil", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("reader error: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("remaining: got %d, want 0", r.Remaining())
	}
}

func TestReaderSticksAfterTruncation(t *testing.T) {
	r := NewReader([]byte{0x01})
	if got := r.Uint32(); got != 0 {
		t.Errorf("truncated Uint32: got %d, want 0", got)
	}
	if r.Err() == nil {
		t.Fatal("reader did not record truncation")
	}
	// Further reads stay at zero and keep the original error.
	if got := r.Uint8(); got != 0 {
		t.Errorf("read after error: got %d, want 0", got)
	}
}
