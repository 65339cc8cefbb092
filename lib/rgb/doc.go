// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

// Package rgb defines the RGB domain objects that travel through the
// Bech32 text encoding: hash-derived identifiers (SchemaID,
// ContractID, BlindedOutpoint) and structured documents (Schema,
// Genesis, Transition, Extension, Anchor, Disclosure).
//
// Every type implements the canonical binary contract from
// lib/canonical. The canonical bytes are the commitment form: both
// identifiers (BLAKE3 keyed hashes of canonical bytes) and the text
// encoding in lib/payload are derived from them, so the field layouts
// in this package are wire contracts — reordering or retyping a field
// changes every identity and encoded string.
//
// The package performs no validation beyond format correctness.
// Whether a transition is consistent with its contract's schema is
// consensus logic that lives above this layer.
package rgb
