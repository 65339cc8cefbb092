// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package rgb

import "github.com/grunch/rgb-core/lib/canonical"

// Transition records a state change under a contract: it consumes
// owned-right outputs of ancestor nodes and produces new assignments.
//
// The canonical layout is six sections, each starting with a two-byte
// field (type number or element count), so the zero value encodes as
// exactly twelve zero bytes. That encoding is frozen — deployed
// consumers hold Bech32 strings derived from it.
type Transition struct {
	TransitionType uint16
	Metadata       Metadata
	Parents        []ParentRef
	Assignments    []Assignment
	PublicRights   []uint16
	Script         []byte
}

// EncodeCanonical writes the transition in its canonical field order.
func (t *Transition) EncodeCanonical(w *canonical.Writer) {
	w.Uint16(t.TransitionType)
	t.Metadata.EncodeCanonical(w)
	w.Count(len(t.Parents))
	for i := range t.Parents {
		t.Parents[i].EncodeCanonical(w)
	}
	encodeAssignments(w, t.Assignments)
	encodeTypeList(w, t.PublicRights)
	w.Bytes(t.Script)
}

// DecodeCanonical is the inverse of EncodeCanonical.
func (t *Transition) DecodeCanonical(r *canonical.Reader) {
	t.TransitionType = r.Uint16()
	t.Metadata.DecodeCanonical(r)
	count := r.Count()
	if count == 0 {
		t.Parents = nil
	} else {
		t.Parents = make([]ParentRef, count)
		for i := range t.Parents {
			t.Parents[i].DecodeCanonical(r)
		}
	}
	t.Assignments = decodeAssignments(r)
	t.PublicRights = decodeTypeList(r)
	t.Script = r.Bytes()
}
