// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload implements the Bech32 text representation of RGB
// domain objects.
//
// The encoding has two layers with a clear boundary:
//
//   - The outer layer is a checksummed Bech32 string whose
//     human-readable prefix (the "tag") names the domain kind:
//     "rgb1..." is a contract ID, "transition1..." a state
//     transition, and so on. The tag table is closed and fixed;
//     strings with an unrecognized tag decode into the catch-all
//     [KindOther] with the tag and payload preserved byte-for-byte.
//   - The inner layer frames the domain object's canonical bytes.
//     Compact fixed-size identifiers travel raw. Document kinds carry
//     a one-byte version prefix: 0 means the canonical bytes follow
//     directly, 1 means they follow as a raw-DEFLATE stream
//     (documents are highly redundant, and shorter payloads mean
//     shorter typable strings). Any other version byte is an
//     unrecoverable format error.
//
// Which kinds are framed, and how, is hand-assigned in the kind table
// and never negotiated: the assignment is part of the wire contract
// shared with deployed consumers.
//
// Everything in this package is a pure in-memory transform. There is
// no state, no I/O, and no logging; all failures are returned as the
// typed errors in errors.go, and parsing is never retried — the
// format is deterministic, so an identical input can never produce a
// different outcome.
package payload
