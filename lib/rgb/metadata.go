// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package rgb

import "github.com/grunch/rgb-core/lib/canonical"

// MetaField is one typed metadata entry. The field type number refers
// to a declaration in the governing schema; the value bytes are opaque
// at this layer.
type MetaField struct {
	Type  uint16
	Value []byte
}

// Metadata is the ordered list of metadata fields attached to a node.
// Order is part of the canonical form: callers that want a normalized
// document must sort before encoding.
type Metadata []MetaField

// EncodeCanonical writes the field count followed by each field as
// type + length-prefixed value.
func (m Metadata) EncodeCanonical(w *canonical.Writer) {
	w.Count(len(m))
	for _, field := range m {
		w.Uint16(field.Type)
		w.Bytes(field.Value)
	}
}

// DecodeCanonical reads the count-prefixed field list. An empty list
// decodes as nil so the zero value round-trips exactly.
func (m *Metadata) DecodeCanonical(r *canonical.Reader) {
	count := r.Count()
	if count == 0 {
		*m = nil
		return
	}
	fields := make(Metadata, count)
	for i := range fields {
		fields[i].Type = r.Uint16()
		fields[i].Value = r.Bytes()
	}
	*m = fields
}
