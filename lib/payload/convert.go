// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import "github.com/grunch/rgb-core/lib/rgb"

// Wrap functions pair with the narrowing methods below: every domain
// kind gets exactly one way in and one way out of the union. Document
// wrappers take ownership of the pointed-to value — the caller must
// not modify it after wrapping.

// WrapBlindedOutpoint wraps a blinded outpoint reference.
func WrapBlindedOutpoint(o rgb.BlindedOutpoint) Payload {
	return Payload{kind: KindBlindedOutpoint, value: &o}
}

// WrapSchemaID wraps a schema identifier.
func WrapSchemaID(id rgb.SchemaID) Payload {
	return Payload{kind: KindSchemaID, value: &id}
}

// WrapContractID wraps a contract identifier.
func WrapContractID(id rgb.ContractID) Payload {
	return Payload{kind: KindContractID, value: &id}
}

// WrapSchema wraps a schema document.
func WrapSchema(s *rgb.Schema) Payload {
	return Payload{kind: KindSchema, value: s}
}

// WrapGenesis wraps a contract genesis document.
func WrapGenesis(g *rgb.Genesis) Payload {
	return Payload{kind: KindGenesis, value: g}
}

// WrapTransition wraps a state transition record.
func WrapTransition(t *rgb.Transition) Payload {
	return Payload{kind: KindTransition, value: t}
}

// WrapExtension wraps a state extension record.
func WrapExtension(e *rgb.Extension) Payload {
	return Payload{kind: KindExtension, value: e}
}

// WrapAnchor wraps a commitment anchor record.
func WrapAnchor(a *rgb.Anchor) Payload {
	return Payload{kind: KindAnchor, value: a}
}

// WrapDisclosure wraps a disclosure record.
func WrapDisclosure(d *rgb.Disclosure) Payload {
	return Payload{kind: KindDisclosure, value: d}
}

// WrapOther wraps an arbitrary tag and payload bytes for a kind this
// library does not know. The bytes are copied and re-encoded verbatim.
func WrapOther(tag string, data []byte) Payload {
	return Payload{
		kind:      KindOther,
		otherTag:  tag,
		otherData: append([]byte(nil), data...),
	}
}

// Narrowing methods. Each is partial: it succeeds exactly when the
// payload holds the requested kind and fails with [WrongTypeError]
// otherwise — it never returns a zero-valued object for a mismatched
// payload.

// BlindedOutpoint extracts a blinded outpoint reference.
func (p Payload) BlindedOutpoint() (rgb.BlindedOutpoint, error) {
	if p.kind != KindBlindedOutpoint {
		return rgb.BlindedOutpoint{}, &WrongTypeError{Got: p.kind, Want: KindBlindedOutpoint}
	}
	return *p.value.(*rgb.BlindedOutpoint), nil
}

// SchemaID extracts a schema identifier.
func (p Payload) SchemaID() (rgb.SchemaID, error) {
	if p.kind != KindSchemaID {
		return rgb.SchemaID{}, &WrongTypeError{Got: p.kind, Want: KindSchemaID}
	}
	return *p.value.(*rgb.SchemaID), nil
}

// ContractID extracts a contract identifier.
func (p Payload) ContractID() (rgb.ContractID, error) {
	if p.kind != KindContractID {
		return rgb.ContractID{}, &WrongTypeError{Got: p.kind, Want: KindContractID}
	}
	return *p.value.(*rgb.ContractID), nil
}

// Schema extracts a schema document.
func (p Payload) Schema() (*rgb.Schema, error) {
	if p.kind != KindSchema {
		return nil, &WrongTypeError{Got: p.kind, Want: KindSchema}
	}
	return p.value.(*rgb.Schema), nil
}

// Genesis extracts a contract genesis document.
func (p Payload) Genesis() (*rgb.Genesis, error) {
	if p.kind != KindGenesis {
		return nil, &WrongTypeError{Got: p.kind, Want: KindGenesis}
	}
	return p.value.(*rgb.Genesis), nil
}

// Transition extracts a state transition record.
func (p Payload) Transition() (*rgb.Transition, error) {
	if p.kind != KindTransition {
		return nil, &WrongTypeError{Got: p.kind, Want: KindTransition}
	}
	return p.value.(*rgb.Transition), nil
}

// Extension extracts a state extension record.
func (p Payload) Extension() (*rgb.Extension, error) {
	if p.kind != KindExtension {
		return nil, &WrongTypeError{Got: p.kind, Want: KindExtension}
	}
	return p.value.(*rgb.Extension), nil
}

// Anchor extracts a commitment anchor record.
func (p Payload) Anchor() (*rgb.Anchor, error) {
	if p.kind != KindAnchor {
		return nil, &WrongTypeError{Got: p.kind, Want: KindAnchor}
	}
	return p.value.(*rgb.Anchor), nil
}

// Disclosure extracts a disclosure record.
func (p Payload) Disclosure() (*rgb.Disclosure, error) {
	if p.kind != KindDisclosure {
		return nil, &WrongTypeError{Got: p.kind, Want: KindDisclosure}
	}
	return p.value.(*rgb.Disclosure), nil
}

// Other extracts the tag and bytes of an unrecognized payload. The
// returned slice is a copy.
func (p Payload) Other() (tag string, data []byte, err error) {
	if p.kind != KindOther {
		return "", nil, &WrongTypeError{Got: p.kind, Want: KindOther}
	}
	return p.otherTag, append([]byte(nil), p.otherData...), nil
}

// Per-kind text conversions: FormatX renders a domain object as its
// Bech32 string, ParseX parses a string and narrows it, so callers
// that know the kind they expect never touch Payload directly.

// FormatBlindedOutpoint renders o as its "utxob1..." string.
func FormatBlindedOutpoint(o rgb.BlindedOutpoint) (string, error) {
	return Format(WrapBlindedOutpoint(o))
}

// ParseBlindedOutpoint parses a "utxob1..." string.
func ParseBlindedOutpoint(text string) (rgb.BlindedOutpoint, error) {
	p, err := Parse(text)
	if err != nil {
		return rgb.BlindedOutpoint{}, err
	}
	return p.BlindedOutpoint()
}

// FormatSchemaID renders id as its "sch1..." string.
func FormatSchemaID(id rgb.SchemaID) (string, error) {
	return Format(WrapSchemaID(id))
}

// ParseSchemaID parses a "sch1..." string.
func ParseSchemaID(text string) (rgb.SchemaID, error) {
	p, err := Parse(text)
	if err != nil {
		return rgb.SchemaID{}, err
	}
	return p.SchemaID()
}

// FormatContractID renders id as its "rgb1..." string.
func FormatContractID(id rgb.ContractID) (string, error) {
	return Format(WrapContractID(id))
}

// ParseContractID parses an "rgb1..." string.
func ParseContractID(text string) (rgb.ContractID, error) {
	p, err := Parse(text)
	if err != nil {
		return rgb.ContractID{}, err
	}
	return p.ContractID()
}

// FormatSchema renders s as its "schema1..." string.
func FormatSchema(s *rgb.Schema) (string, error) {
	return Format(WrapSchema(s))
}

// ParseSchema parses a "schema1..." string.
func ParseSchema(text string) (*rgb.Schema, error) {
	p, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return p.Schema()
}

// FormatGenesis renders g as its "genesis1..." string.
func FormatGenesis(g *rgb.Genesis) (string, error) {
	return Format(WrapGenesis(g))
}

// ParseGenesis parses a "genesis1..." string.
func ParseGenesis(text string) (*rgb.Genesis, error) {
	p, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return p.Genesis()
}

// FormatTransition renders t as its "transition1..." string.
func FormatTransition(t *rgb.Transition) (string, error) {
	return Format(WrapTransition(t))
}

// ParseTransition parses a "transition1..." string.
func ParseTransition(text string) (*rgb.Transition, error) {
	p, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return p.Transition()
}

// FormatExtension renders e as its "statex1..." string.
func FormatExtension(e *rgb.Extension) (string, error) {
	return Format(WrapExtension(e))
}

// ParseExtension parses a "statex1..." string.
func ParseExtension(text string) (*rgb.Extension, error) {
	p, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return p.Extension()
}

// FormatAnchor renders a as its "anchor1..." string.
func FormatAnchor(a *rgb.Anchor) (string, error) {
	return Format(WrapAnchor(a))
}

// ParseAnchor parses an "anchor1..." string.
func ParseAnchor(text string) (*rgb.Anchor, error) {
	p, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return p.Anchor()
}

// FormatDisclosure renders d as its "disclosure1..." string.
func FormatDisclosure(d *rgb.Disclosure) (string, error) {
	return Format(WrapDisclosure(d))
}

// ParseDisclosure parses a "disclosure1..." string.
func ParseDisclosure(text string) (*rgb.Disclosure, error) {
	p, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return p.Disclosure()
}
