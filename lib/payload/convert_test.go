// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"errors"
	"reflect"
	"testing"

	"github.com/grunch/rgb-core/lib/rgb"
)

func TestNarrowingRejectsWrongKind(t *testing.T) {
	// A payload parsed as one kind must refuse to narrow into any
	// other, with the typed error naming both sides — never a
	// zero-valued object of the requested kind.
	transition := WrapTransition(&rgb.Transition{TransitionType: 1})

	if _, err := transition.Anchor(); err == nil {
		t.Fatal("transition payload narrowed into an anchor")
	} else {
		var wrongType *WrongTypeError
		if !errors.As(err, &wrongType) {
			t.Fatalf("error %v is not WrongTypeError", err)
		}
		if wrongType.Got != KindTransition || wrongType.Want != KindAnchor {
			t.Errorf("error kinds: got (%v, %v), want (%v, %v)",
				wrongType.Got, wrongType.Want, KindTransition, KindAnchor)
		}
	}

	if _, err := transition.Genesis(); err == nil {
		t.Error("transition payload narrowed into a genesis")
	}
	if _, err := transition.SchemaID(); err == nil {
		t.Error("transition payload narrowed into a schema ID")
	}
	if _, _, err := transition.Other(); err == nil {
		t.Error("transition payload narrowed into the catch-all")
	}

	// And the matching narrow succeeds.
	narrowed, err := transition.Transition()
	if err != nil {
		t.Fatalf("matching narrow failed: %v", err)
	}
	if narrowed.TransitionType != 1 {
		t.Errorf("TransitionType: got %d, want 1", narrowed.TransitionType)
	}
}

func TestParseWrongKindText(t *testing.T) {
	// Render an anchor, then try to parse it as a transition: the
	// text layer succeeds, the narrowing fails.
	text, err := FormatAnchor(&rgb.Anchor{OutputIndex: 2})
	if err != nil {
		t.Fatalf("FormatAnchor: %v", err)
	}

	_, err = ParseTransition(text)
	if err == nil {
		t.Fatal("anchor text parsed as a transition")
	}
	var wrongType *WrongTypeError
	if !errors.As(err, &wrongType) {
		t.Fatalf("error %v is not WrongTypeError", err)
	}
	if wrongType.Got != KindAnchor || wrongType.Want != KindTransition {
		t.Errorf("error kinds: got (%v, %v)", wrongType.Got, wrongType.Want)
	}
}

func TestPerKindTextRoundtrips(t *testing.T) {
	schema := &rgb.Schema{Version: 1, FieldTypes: []uint16{1, 2, 3}}
	schemaID, err := schema.ID()
	if err != nil {
		t.Fatal(err)
	}
	genesis := &rgb.Genesis{SchemaID: schemaID, Metadata: rgb.Metadata{{Type: 0, Value: []byte("asset")}}}
	contractID, err := genesis.ContractID()
	if err != nil {
		t.Fatal(err)
	}
	outpoint := rgb.BlindOutpoint([32]byte{7}, 1, 3)

	t.Run("blinded outpoint", func(t *testing.T) {
		text, err := FormatBlindedOutpoint(outpoint)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := ParseBlindedOutpoint(text)
		if err != nil {
			t.Fatal(err)
		}
		if decoded != outpoint {
			t.Errorf("got %s, want %s", decoded, outpoint)
		}
	})

	t.Run("schema ID", func(t *testing.T) {
		text, err := FormatSchemaID(schemaID)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := ParseSchemaID(text)
		if err != nil {
			t.Fatal(err)
		}
		if decoded != schemaID {
			t.Errorf("got %s, want %s", decoded, schemaID)
		}
	})

	t.Run("contract ID", func(t *testing.T) {
		text, err := FormatContractID(contractID)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := ParseContractID(text)
		if err != nil {
			t.Fatal(err)
		}
		if decoded != contractID {
			t.Errorf("got %s, want %s", decoded, contractID)
		}
	})

	t.Run("schema", func(t *testing.T) {
		text, err := FormatSchema(schema)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := ParseSchema(text)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(decoded, schema) {
			t.Errorf("got %+v, want %+v", *decoded, *schema)
		}
	})

	t.Run("genesis", func(t *testing.T) {
		text, err := FormatGenesis(genesis)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := ParseGenesis(text)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(decoded, genesis) {
			t.Errorf("got %+v, want %+v", *decoded, *genesis)
		}
	})

	t.Run("extension", func(t *testing.T) {
		extension := &rgb.Extension{ExtensionType: 4, ContractID: contractID}
		text, err := FormatExtension(extension)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := ParseExtension(text)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(decoded, extension) {
			t.Errorf("got %+v, want %+v", *decoded, *extension)
		}
	})

	t.Run("anchor", func(t *testing.T) {
		anchor := &rgb.Anchor{TxID: [32]byte{8}, OutputIndex: 0, MerkleProof: [][32]byte{{9}}}
		text, err := FormatAnchor(anchor)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := ParseAnchor(text)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(decoded, anchor) {
			t.Errorf("got %+v, want %+v", *decoded, *anchor)
		}
	})

	t.Run("disclosure", func(t *testing.T) {
		disclosure := &rgb.Disclosure{
			Anchors: []rgb.Anchor{{OutputIndex: 1}},
			Comment: "allocation detail",
		}
		text, err := FormatDisclosure(disclosure)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := ParseDisclosure(text)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(decoded, disclosure) {
			t.Errorf("got %+v, want %+v", *decoded, *disclosure)
		}
	})
}

func TestWrongKindNeverReturnsZeroValue(t *testing.T) {
	// Decoding text tagged for kind A and narrowing to kind B must
	// return the error and only the error: the returned pointer is
	// nil, the returned value is zero.
	text, err := FormatSchemaID(rgb.SchemaID{0x01})
	if err != nil {
		t.Fatal(err)
	}

	transition, err := ParseTransition(text)
	if err == nil {
		t.Fatal("schema-ID text parsed as transition")
	}
	if transition != nil {
		t.Errorf("narrow returned non-nil transition %+v alongside error", *transition)
	}

	id, err := ParseContractID(text)
	if err == nil {
		t.Fatal("schema-ID text parsed as contract ID")
	}
	if !id.IsZero() {
		t.Errorf("narrow returned non-zero contract ID %s alongside error", id)
	}
}
