// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package canonical

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Writer accumulates the canonical encoding of a value in memory.
// Errors stick: after the first failure every subsequent write is a
// no-op, and the error is reported by Err or Finish. Since the writer
// targets an in-memory buffer, the only possible failure is a
// collection that does not fit the uint16 count prefix.
type Writer struct {
	buf bytes.Buffer
	err error
}

// NewWriter returns an empty canonical writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Uint8 writes a single byte.
func (w *Writer) Uint8(v uint8) {
	if w.err != nil {
		return
	}
	w.buf.WriteByte(v)
}

// Uint16 writes a little-endian 16-bit integer.
func (w *Writer) Uint16(v uint16) {
	if w.err != nil {
		return
	}
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// Uint32 writes a little-endian 32-bit integer.
func (w *Writer) Uint32(v uint32) {
	if w.err != nil {
		return
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// Uint64 writes a little-endian 64-bit integer.
func (w *Writer) Uint64(v uint64) {
	if w.err != nil {
		return
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// Count writes a uint16 element count prefix. Collections larger than
// 65535 elements cannot be represented canonically and fail the write.
func (w *Writer) Count(n int) {
	if w.err != nil {
		return
	}
	if n < 0 || n > math.MaxUint16 {
		w.err = fmt.Errorf("collection of %d elements exceeds canonical count limit %d", n, math.MaxUint16)
		return
	}
	w.Uint16(uint16(n))
}

// Bytes writes a uint16 length prefix followed by the bytes of b.
func (w *Writer) Bytes(b []byte) {
	w.Count(len(b))
	if w.err != nil {
		return
	}
	w.buf.Write(b)
}

// Raw writes b with no prefix. Used for fixed-size values (32-byte
// identifiers) whose length is implied by the type.
func (w *Writer) Raw(b []byte) {
	if w.err != nil {
		return
	}
	w.buf.Write(b)
}

// Err returns the first error recorded by any write, or nil.
func (w *Writer) Err() error {
	return w.err
}

// Finish returns the accumulated canonical bytes, or the first write
// error if one occurred.
func (w *Writer) Finish() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}

// Reader consumes a canonical byte buffer. Errors stick: after the
// first failure (always a truncated buffer) every subsequent read
// returns a zero value, and the error is reported by Err.
type Reader struct {
	data []byte
	off  int
	err  error
}

// NewReader returns a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// take consumes the next n bytes, or records truncation.
func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.data)-r.off < n {
		r.err = fmt.Errorf("canonical value truncated at offset %d: %w", r.off, io.ErrUnexpectedEOF)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

// Uint8 reads a single byte.
func (r *Reader) Uint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Uint16 reads a little-endian 16-bit integer.
func (r *Reader) Uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Uint32 reads a little-endian 32-bit integer.
func (r *Reader) Uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Uint64 reads a little-endian 64-bit integer.
func (r *Reader) Uint64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// Count reads a uint16 element count prefix.
func (r *Reader) Count() int {
	return int(r.Uint16())
}

// Bytes reads a uint16 length prefix and then that many bytes. The
// returned slice is an owned copy; an empty byte string decodes as nil
// so that a round trip of the zero value compares equal.
func (r *Reader) Bytes() []byte {
	n := r.Count()
	if n == 0 {
		return nil
	}
	b := r.take(n)
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// Raw fills dst with the next len(dst) bytes. Used for fixed-size
// values whose length is implied by the type.
func (r *Reader) Raw(dst []byte) {
	b := r.take(len(dst))
	if b == nil {
		return
	}
	copy(dst, b)
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	if r.err != nil {
		return 0
	}
	return len(r.data) - r.off
}

// Err returns the first error recorded by any read, or nil.
func (r *Reader) Err() error {
	return r.err
}
