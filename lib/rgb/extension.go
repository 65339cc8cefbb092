// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package rgb

import "github.com/grunch/rgb-core/lib/canonical"

// Extension records state added to a contract outside the transition
// graph (issuer announcements, burn proofs, and similar public
// operations). Unlike a transition it does not consume parent outputs;
// it binds directly to the contract.
type Extension struct {
	ExtensionType uint16
	ContractID    ContractID
	Metadata      Metadata
	Assignments   []Assignment
	PublicRights  []uint16
}

// EncodeCanonical writes the extension in its canonical field order.
func (e *Extension) EncodeCanonical(w *canonical.Writer) {
	w.Uint16(e.ExtensionType)
	e.ContractID.EncodeCanonical(w)
	e.Metadata.EncodeCanonical(w)
	encodeAssignments(w, e.Assignments)
	encodeTypeList(w, e.PublicRights)
}

// DecodeCanonical is the inverse of EncodeCanonical.
func (e *Extension) DecodeCanonical(r *canonical.Reader) {
	e.ExtensionType = r.Uint16()
	e.ContractID.DecodeCanonical(r)
	e.Metadata.DecodeCanonical(r)
	e.Assignments = decodeAssignments(r)
	e.PublicRights = decodeTypeList(r)
}
