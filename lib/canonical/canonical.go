// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package canonical

import "fmt"

// Encodable is implemented by types that have a canonical binary form.
// EncodeCanonical writes the value through the sticky-error writer; it
// must write the same bytes for the same logical value every time.
type Encodable interface {
	EncodeCanonical(w *Writer)
}

// Decodable is implemented by types that can reconstruct themselves
// from their canonical binary form. DecodeCanonical reads through the
// sticky-error reader; on a short or malformed buffer the reader
// records the error and subsequent reads return zero values.
type Decodable interface {
	DecodeCanonical(r *Reader)
}

// Marshal returns the canonical bytes of v. The only failure mode is a
// value that cannot be represented (a collection or byte string longer
// than 65535 elements).
func Marshal(v Encodable) ([]byte, error) {
	w := NewWriter()
	v.EncodeCanonical(w)
	return w.Finish()
}

// Unmarshal decodes the canonical bytes in data into v. The buffer
// must contain exactly one value: truncated input and trailing bytes
// are both errors.
func Unmarshal(data []byte, v Decodable) error {
	r := NewReader(data)
	v.DecodeCanonical(r)
	if err := r.Err(); err != nil {
		return err
	}
	if n := r.Remaining(); n > 0 {
		return fmt.Errorf("%d trailing bytes after canonical value", n)
	}
	return nil
}
