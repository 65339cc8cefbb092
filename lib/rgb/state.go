// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package rgb

import "github.com/grunch/rgb-core/lib/canonical"

// Assignment binds state of a given owned-right type to a blinded
// transaction output. The state bytes are a confidential commitment;
// this layer does not interpret them.
type Assignment struct {
	Type  uint16
	Seal  BlindedOutpoint
	State []byte
}

// EncodeCanonical writes type + seal + length-prefixed state.
func (a *Assignment) EncodeCanonical(w *canonical.Writer) {
	w.Uint16(a.Type)
	a.Seal.EncodeCanonical(w)
	w.Bytes(a.State)
}

// DecodeCanonical is the inverse of EncodeCanonical.
func (a *Assignment) DecodeCanonical(r *canonical.Reader) {
	a.Type = r.Uint16()
	a.Seal.DecodeCanonical(r)
	a.State = r.Bytes()
}

// ParentRef points at owned-right outputs of an ancestor node (a
// genesis, transition, or extension, identified by its 32-byte node
// hash) that the referring node consumes.
type ParentRef struct {
	Node    [32]byte
	Type    uint16
	Indexes []uint16
}

// EncodeCanonical writes node hash + type + count-prefixed indexes.
func (p *ParentRef) EncodeCanonical(w *canonical.Writer) {
	w.Raw(p.Node[:])
	w.Uint16(p.Type)
	w.Count(len(p.Indexes))
	for _, index := range p.Indexes {
		w.Uint16(index)
	}
}

// DecodeCanonical is the inverse of EncodeCanonical.
func (p *ParentRef) DecodeCanonical(r *canonical.Reader) {
	r.Raw(p.Node[:])
	p.Type = r.Uint16()
	count := r.Count()
	if count == 0 {
		p.Indexes = nil
		return
	}
	p.Indexes = make([]uint16, count)
	for i := range p.Indexes {
		p.Indexes[i] = r.Uint16()
	}
}

// encodeAssignments writes a count-prefixed assignment list.
func encodeAssignments(w *canonical.Writer, assignments []Assignment) {
	w.Count(len(assignments))
	for i := range assignments {
		assignments[i].EncodeCanonical(w)
	}
}

// decodeAssignments reads a count-prefixed assignment list, nil when
// empty.
func decodeAssignments(r *canonical.Reader) []Assignment {
	count := r.Count()
	if count == 0 {
		return nil
	}
	assignments := make([]Assignment, count)
	for i := range assignments {
		assignments[i].DecodeCanonical(r)
	}
	return assignments
}

// encodeTypeList writes a count-prefixed list of u16 type numbers.
func encodeTypeList(w *canonical.Writer, types []uint16) {
	w.Count(len(types))
	for _, t := range types {
		w.Uint16(t)
	}
}

// decodeTypeList reads a count-prefixed u16 list, nil when empty.
func decodeTypeList(r *canonical.Reader) []uint16 {
	count := r.Count()
	if count == 0 {
		return nil
	}
	types := make([]uint16, count)
	for i := range types {
		types[i] = r.Uint16()
	}
	return types
}
