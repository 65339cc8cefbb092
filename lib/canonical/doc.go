// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

// Package canonical implements the deterministic binary serialization
// that RGB domain objects commit to for hashing and text encoding.
//
// The format is deliberately minimal and fully specified: integers are
// little-endian; byte strings and collections carry a uint16 element
// count prefix (so no single collection may exceed 65535 elements);
// fixed-size values are written raw with no prefix. The same logical
// value always produces identical bytes — identifiers are derived by
// hashing these bytes, so any nondeterminism would change identities.
//
// Types participate through the [Encodable] and [Decodable]
// interfaces, writing themselves field by field through a sticky-error
// [Writer] or [Reader]:
//
//	func (t *Transition) EncodeCanonical(w *canonical.Writer) {
//		w.Uint16(t.TransitionType)
//		t.Metadata.EncodeCanonical(w)
//		...
//	}
//
// Buffer-level operations go through [Marshal] and [Unmarshal].
// Unmarshal rejects trailing bytes: a canonical buffer encodes exactly
// one value and nothing else.
package canonical
