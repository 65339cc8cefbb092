// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package rgb

import "github.com/grunch/rgb-core/lib/canonical"

// Genesis is the root document of a contract: it commits to the
// governing schema, the host chain, the initial metadata and state
// assignments, and an optional validation script. The contract's
// identity is the hash of this document (see [Genesis.ContractID]).
type Genesis struct {
	SchemaID     SchemaID
	ChainHash    [32]byte
	Metadata     Metadata
	Assignments  []Assignment
	PublicRights []uint16
	Script       []byte
}

// EncodeCanonical writes the genesis in its canonical field order.
func (g *Genesis) EncodeCanonical(w *canonical.Writer) {
	g.SchemaID.EncodeCanonical(w)
	w.Raw(g.ChainHash[:])
	g.Metadata.EncodeCanonical(w)
	encodeAssignments(w, g.Assignments)
	encodeTypeList(w, g.PublicRights)
	w.Bytes(g.Script)
}

// DecodeCanonical is the inverse of EncodeCanonical.
func (g *Genesis) DecodeCanonical(r *canonical.Reader) {
	g.SchemaID.DecodeCanonical(r)
	r.Raw(g.ChainHash[:])
	g.Metadata.DecodeCanonical(r)
	g.Assignments = decodeAssignments(r)
	g.PublicRights = decodeTypeList(r)
	g.Script = r.Bytes()
}

// ContractID derives the contract's identifier from the genesis
// canonical bytes.
func (g *Genesis) ContractID() (ContractID, error) {
	data, err := canonical.Marshal(g)
	if err != nil {
		return ContractID{}, err
	}
	return ContractID(keyedDigest(contractIDKey, data)), nil
}
