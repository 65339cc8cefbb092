// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package rgb

import "github.com/grunch/rgb-core/lib/canonical"

// Schema declares the type vocabulary of a contract family: which
// metadata field types, owned-right types, public-right types, and
// transition types its contracts may use. Contracts commit to a schema
// through its [SchemaID].
type Schema struct {
	Version          uint16
	FieldTypes       []uint16
	OwnedRightTypes  []uint16
	PublicRightTypes []uint16
	TransitionTypes  []uint16
}

// EncodeCanonical writes the schema in its canonical field order.
func (s *Schema) EncodeCanonical(w *canonical.Writer) {
	w.Uint16(s.Version)
	encodeTypeList(w, s.FieldTypes)
	encodeTypeList(w, s.OwnedRightTypes)
	encodeTypeList(w, s.PublicRightTypes)
	encodeTypeList(w, s.TransitionTypes)
}

// DecodeCanonical is the inverse of EncodeCanonical.
func (s *Schema) DecodeCanonical(r *canonical.Reader) {
	s.Version = r.Uint16()
	s.FieldTypes = decodeTypeList(r)
	s.OwnedRightTypes = decodeTypeList(r)
	s.PublicRightTypes = decodeTypeList(r)
	s.TransitionTypes = decodeTypeList(r)
}

// ID derives the schema's identifier from its canonical bytes. The
// only failure mode is a schema whose type lists exceed the canonical
// count limit.
func (s *Schema) ID() (SchemaID, error) {
	data, err := canonical.Marshal(s)
	if err != nil {
		return SchemaID{}, err
	}
	return SchemaID(keyedDigest(schemaIDKey, data)), nil
}
