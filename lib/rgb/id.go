// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package rgb

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/grunch/rgb-core/lib/canonical"
)

// domainKey is a 32-byte key for BLAKE3 keyed hashing. Domain
// separation ensures that the same canonical bytes produce different
// digests in different contexts: a schema document hashed under the
// contract key can never collide with a ContractID.
type domainKey [32]byte

// Domain separation keys. These are fixed protocol constants —
// changing them invalidates every identifier ever derived in that
// domain. The byte values are the ASCII encoding of the domain name,
// zero-padded to 32 bytes, which keeps the keys readable in hex dumps
// without weakening the keyed hash (the key is an opaque 32-byte
// value to BLAKE3).
var (
	schemaIDKey = domainKey{
		'r', 'g', 'b', '.', 's', 'c', 'h', 'e', 'm', 'a', '.', 'i', 'd',
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	contractIDKey = domainKey{
		'r', 'g', 'b', '.', 'c', 'o', 'n', 't', 'r', 'a', 'c', 't', '.', 'i', 'd',
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	outpointKey = domainKey{
		'r', 'g', 'b', '.', 's', 'e', 'a', 'l', '.', 'o', 'u', 't', 'p', 'o', 'i', 'n', 't',
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// keyedDigest computes the BLAKE3 keyed hash of data under the given
// domain key.
func keyedDigest(key domainKey, data []byte) [32]byte {
	// NewKeyed requires exactly 32 bytes, which domainKey guarantees,
	// so the error path is unreachable.
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("rgb: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// SchemaID identifies a schema document: the BLAKE3 keyed hash of the
// schema's canonical bytes under the schema-id domain key.
type SchemaID [32]byte

// ContractID identifies a contract: the BLAKE3 keyed hash of the
// genesis document's canonical bytes under the contract-id domain key.
type ContractID [32]byte

// BlindedOutpoint is a confidential reference to a transaction output
// that RGB state is assigned to. The underlying outpoint and blinding
// factor are not recoverable from the hash; a party that knows both
// can prove the assignment by re-deriving it with [BlindOutpoint].
type BlindedOutpoint [32]byte

// BlindOutpoint derives the confidential reference for the output
// (txid, vout) with the given blinding factor. The derivation hashes
// txid‖vout‖blinding (canonical little-endian layout) under the seal
// domain key.
func BlindOutpoint(txid [32]byte, vout uint32, blinding uint64) BlindedOutpoint {
	buf := make([]byte, 0, 44)
	buf = append(buf, txid[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, vout)
	buf = binary.LittleEndian.AppendUint64(buf, blinding)
	return BlindedOutpoint(keyedDigest(outpointKey, buf))
}

// formatID returns the canonical hex rendering of a 32-byte identifier.
func formatID(id [32]byte) string {
	return hex.EncodeToString(id[:])
}

// parseID parses a 64-character hex string into a 32-byte identifier.
func parseID(s string) ([32]byte, error) {
	var id [32]byte
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("parsing identifier: %w", err)
	}
	if len(decoded) != 32 {
		return id, fmt.Errorf("identifier is %d bytes, want 32", len(decoded))
	}
	copy(id[:], decoded)
	return id, nil
}

// String returns the hex rendering of the schema ID.
func (id SchemaID) String() string { return formatID(id) }

// IsZero reports whether the ID is the all-zero value (unset).
func (id SchemaID) IsZero() bool { return id == SchemaID{} }

// ParseSchemaID parses a 64-character hex string into a SchemaID.
func ParseSchemaID(s string) (SchemaID, error) {
	id, err := parseID(s)
	if err != nil {
		return SchemaID{}, fmt.Errorf("schema ID: %w", err)
	}
	return SchemaID(id), nil
}

// MarshalText implements encoding.TextMarshaler.
func (id SchemaID) MarshalText() ([]byte, error) {
	return []byte(formatID(id)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *SchemaID) UnmarshalText(data []byte) error {
	parsed, err := ParseSchemaID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// EncodeCanonical writes the ID as 32 raw bytes.
func (id SchemaID) EncodeCanonical(w *canonical.Writer) { w.Raw(id[:]) }

// DecodeCanonical reads the ID as 32 raw bytes.
func (id *SchemaID) DecodeCanonical(r *canonical.Reader) { r.Raw(id[:]) }

// String returns the hex rendering of the contract ID.
func (id ContractID) String() string { return formatID(id) }

// IsZero reports whether the ID is the all-zero value (unset).
func (id ContractID) IsZero() bool { return id == ContractID{} }

// ParseContractID parses a 64-character hex string into a ContractID.
func ParseContractID(s string) (ContractID, error) {
	id, err := parseID(s)
	if err != nil {
		return ContractID{}, fmt.Errorf("contract ID: %w", err)
	}
	return ContractID(id), nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ContractID) MarshalText() ([]byte, error) {
	return []byte(formatID(id)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ContractID) UnmarshalText(data []byte) error {
	parsed, err := ParseContractID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// EncodeCanonical writes the ID as 32 raw bytes.
func (id ContractID) EncodeCanonical(w *canonical.Writer) { w.Raw(id[:]) }

// DecodeCanonical reads the ID as 32 raw bytes.
func (id *ContractID) DecodeCanonical(r *canonical.Reader) { r.Raw(id[:]) }

// String returns the hex rendering of the blinded outpoint.
func (o BlindedOutpoint) String() string { return formatID(o) }

// IsZero reports whether the outpoint is the all-zero value (unset).
func (o BlindedOutpoint) IsZero() bool { return o == BlindedOutpoint{} }

// ParseBlindedOutpoint parses a 64-character hex string into a
// BlindedOutpoint.
func ParseBlindedOutpoint(s string) (BlindedOutpoint, error) {
	id, err := parseID(s)
	if err != nil {
		return BlindedOutpoint{}, fmt.Errorf("blinded outpoint: %w", err)
	}
	return BlindedOutpoint(id), nil
}

// MarshalText implements encoding.TextMarshaler.
func (o BlindedOutpoint) MarshalText() ([]byte, error) {
	return []byte(formatID(o)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *BlindedOutpoint) UnmarshalText(data []byte) error {
	parsed, err := ParseBlindedOutpoint(string(data))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// EncodeCanonical writes the outpoint as 32 raw bytes.
func (o BlindedOutpoint) EncodeCanonical(w *canonical.Writer) { w.Raw(o[:]) }

// DecodeCanonical reads the outpoint as 32 raw bytes.
func (o *BlindedOutpoint) DecodeCanonical(r *canonical.Reader) { r.Raw(o[:]) }
