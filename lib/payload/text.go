// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Format renders a payload as its single-line Bech32 string:
// tag, separator "1", base32 body, checksum. Failures on this path
// are rendering failures; [TextFormatError] is reserved for Parse
// rejecting an input string.
func Format(p Payload) (string, error) {
	tag, data, err := p.Encode()
	if err != nil {
		return "", err
	}

	grouped, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("regrouping payload bits: %w", err)
	}
	// Encoded RGB documents routinely exceed the 90-character limit
	// BIP-173 imposes on addresses; the limit does not apply here.
	text, err := bech32.Encode(tag, grouped)
	if err != nil {
		return "", fmt.Errorf("rendering bech32 text: %w", err)
	}
	return text, nil
}

// Parse decodes a Bech32 string into a payload. A checksum mismatch,
// invalid character, or malformed structure fails with
// [TextFormatError]; a valid string with an unknown tag produces a
// KindOther payload. Parsing is deterministic and never retried.
func Parse(text string) (Payload, error) {
	tag, grouped, err := bech32.DecodeNoLimit(text)
	if err != nil {
		return Payload{}, &TextFormatError{Err: err}
	}
	data, err := bech32.ConvertBits(grouped, 5, 8, false)
	if err != nil {
		return Payload{}, &TextFormatError{Err: err}
	}
	return Decode(tag, data)
}
