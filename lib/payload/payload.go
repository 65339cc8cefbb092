// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"fmt"

	"github.com/grunch/rgb-core/lib/canonical"
	"github.com/grunch/rgb-core/lib/rgb"
)

// Kind enumerates the domain kinds a payload can carry. KindOther is
// the designated catch-all for tags outside the known table.
type Kind uint8

const (
	KindOther Kind = iota
	KindBlindedOutpoint
	KindSchemaID
	KindSchema
	KindContractID
	KindGenesis
	KindTransition
	KindExtension
	KindAnchor
	KindDisclosure
)

// Bech32 human-readable prefixes, one per domain kind. These strings
// are wire constants shared with deployed consumers — they must never
// change.
const (
	TagBlindedOutpoint = "utxob"
	TagSchemaID        = "sch"
	TagSchema          = "schema"
	TagContractID      = "rgb"
	TagGenesis         = "genesis"
	TagTransition      = "transition"
	TagExtension       = "statex"
	TagAnchor          = "anchor"
	TagDisclosure      = "disclosure"
)

// framing selects how a kind's canonical bytes travel inside the
// Bech32 payload.
type framing uint8

const (
	// framingRaw: canonical bytes only, no version prefix. Used for
	// fixed-size identifiers, where a version byte and compression
	// add overhead without ever helping.
	framingRaw framing = iota

	// framingPlain: version byte 0, then canonical bytes.
	framingPlain

	// framingDeflate: version byte 1, then a raw-DEFLATE stream of
	// the canonical bytes.
	framingDeflate
)

// value is the capability a domain object needs to travel in a
// payload: both directions of the canonical binary contract.
type value interface {
	canonical.Encodable
	canonical.Decodable
}

// kindInfo is one row of the kind table.
type kindInfo struct {
	tag     string
	framing framing
	// newValue allocates a fresh zero value for decoding.
	newValue func() value
}

// kindTable fixes the tag and framing of every known kind. The
// framing column is hand-assigned per kind and frozen (note the
// anchor: versioned-plain, not raw, even though it is never
// compressed); inferring it from payload size instead would break
// wire compatibility.
var kindTable = [...]kindInfo{
	KindBlindedOutpoint: {TagBlindedOutpoint, framingRaw, func() value { return new(rgb.BlindedOutpoint) }},
	KindSchemaID:        {TagSchemaID, framingRaw, func() value { return new(rgb.SchemaID) }},
	KindSchema:          {TagSchema, framingDeflate, func() value { return new(rgb.Schema) }},
	KindContractID:      {TagContractID, framingRaw, func() value { return new(rgb.ContractID) }},
	KindGenesis:         {TagGenesis, framingDeflate, func() value { return new(rgb.Genesis) }},
	KindTransition:      {TagTransition, framingDeflate, func() value { return new(rgb.Transition) }},
	KindExtension:       {TagExtension, framingDeflate, func() value { return new(rgb.Extension) }},
	KindAnchor:          {TagAnchor, framingPlain, func() value { return new(rgb.Anchor) }},
	KindDisclosure:      {TagDisclosure, framingDeflate, func() value { return new(rgb.Disclosure) }},
}

// kindByTag is the inverse of the kind table, built once at init.
var kindByTag = func() map[string]Kind {
	table := make(map[string]Kind, len(kindTable))
	for kind, info := range kindTable {
		if Kind(kind) == KindOther {
			continue
		}
		if _, exists := table[info.tag]; exists {
			panic("payload: duplicate tag in kind table: " + info.tag)
		}
		table[info.tag] = Kind(kind)
	}
	return table
}()

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindOther:
		return "unrecognized payload"
	case KindBlindedOutpoint:
		return "blinded outpoint"
	case KindSchemaID:
		return "schema ID"
	case KindSchema:
		return "schema"
	case KindContractID:
		return "contract ID"
	case KindGenesis:
		return "genesis"
	case KindTransition:
		return "state transition"
	case KindExtension:
		return "state extension"
	case KindAnchor:
		return "anchor"
	case KindDisclosure:
		return "disclosure"
	default:
		return fmt.Sprintf("unknown kind(%d)", uint8(k))
	}
}

// Tag returns the Bech32 prefix of a known kind, or "" for KindOther
// (whose tag lives on the payload instance, not the kind).
func (k Kind) Tag() string {
	if k == KindOther || int(k) >= len(kindTable) {
		return ""
	}
	return kindTable[k].tag
}

// Classify maps a tag string to its kind. Total: every tag outside
// the known table classifies as KindOther.
func Classify(tag string) Kind {
	if kind, ok := kindByTag[tag]; ok {
		return kind
	}
	return KindOther
}

// Payload is a tagged union holding exactly one decoded domain value,
// or — for KindOther — the raw tag and bytes of an unrecognized
// kind. Payloads are immutable once constructed: build them with the
// Wrap functions or by decoding, and read them back through the
// narrowing methods in convert.go.
type Payload struct {
	kind  Kind
	value value // set for known kinds

	// otherTag and otherData are set only for KindOther and preserve
	// the unrecognized input byte-for-byte.
	otherTag  string
	otherData []byte
}

// Kind returns the payload's kind.
func (p Payload) Kind() Kind { return p.kind }

// Tag returns the Bech32 prefix this payload encodes under.
func (p Payload) Tag() string {
	if p.kind == KindOther {
		return p.otherTag
	}
	return p.kind.Tag()
}

// Encode produces the payload's tag and binary body, applying the
// kind's framing. This is the inverse of [Decode].
func (p Payload) Encode() (tag string, data []byte, err error) {
	if p.kind == KindOther {
		if p.otherTag == "" {
			return "", nil, fmt.Errorf("empty payload has no tag")
		}
		return p.otherTag, append([]byte(nil), p.otherData...), nil
	}

	info := kindTable[p.kind]
	switch info.framing {
	case framingRaw:
		data, err = canonical.Marshal(p.value)
		if err != nil {
			err = fmt.Errorf("encoding %s payload: %w", p.kind, err)
		}
	case framingPlain:
		data, err = encodePlain(p.value)
	case framingDeflate:
		data, err = encodeDeflate(p.value)
	}
	if err != nil {
		return "", nil, err
	}
	return info.tag, data, nil
}

// Decode reconstructs a payload from a tag and binary body. Known
// kinds deserialize through their framing; unknown tags produce a
// KindOther payload owning a copy of the bytes.
func Decode(tag string, data []byte) (Payload, error) {
	kind := Classify(tag)
	if kind == KindOther {
		return Payload{
			kind:      KindOther,
			otherTag:  tag,
			otherData: append([]byte(nil), data...),
		}, nil
	}

	info := kindTable[kind]
	decoded := info.newValue()
	if info.framing == framingRaw {
		if err := canonical.Unmarshal(data, decoded); err != nil {
			return Payload{}, &PayloadDecodeError{Kind: kind, Err: err}
		}
	} else {
		if err := decodeFramed(kind, data, decoded); err != nil {
			return Payload{}, err
		}
	}
	return Payload{kind: kind, value: decoded}, nil
}
