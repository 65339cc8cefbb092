// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package rgb

import "github.com/grunch/rgb-core/lib/canonical"

// Anchor ties client-side contract data to an on-chain transaction: it
// names the transaction, the output carrying the deterministic
// commitment, and the Merkle path proving the commitment's inclusion.
type Anchor struct {
	TxID        [32]byte
	OutputIndex uint32
	MerkleProof [][32]byte
}

// EncodeCanonical writes txid + output index + count-prefixed proof
// nodes.
func (a *Anchor) EncodeCanonical(w *canonical.Writer) {
	w.Raw(a.TxID[:])
	w.Uint32(a.OutputIndex)
	w.Count(len(a.MerkleProof))
	for i := range a.MerkleProof {
		w.Raw(a.MerkleProof[i][:])
	}
}

// DecodeCanonical is the inverse of EncodeCanonical.
func (a *Anchor) DecodeCanonical(r *canonical.Reader) {
	r.Raw(a.TxID[:])
	a.OutputIndex = r.Uint32()
	count := r.Count()
	if count == 0 {
		a.MerkleProof = nil
		return
	}
	a.MerkleProof = make([][32]byte, count)
	for i := range a.MerkleProof {
		r.Raw(a.MerkleProof[i][:])
	}
}
