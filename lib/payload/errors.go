// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import "fmt"

// TextFormatError reports a failure in the outer Bech32 layer: a
// checksum mismatch, an invalid character, or a malformed tag/body
// split. The string is rejected as a whole; no correction is
// attempted.
type TextFormatError struct {
	Err error
}

func (e *TextFormatError) Error() string {
	return fmt.Sprintf("invalid bech32 string: %v", e.Err)
}

func (e *TextFormatError) Unwrap() error { return e.Err }

// UnknownVersionError reports a framed payload whose version byte is
// neither the plain (0) nor the deflate (1) encoding. There is no
// forward-compatible skip: an unknown version is unrecoverable.
type UnknownVersionError struct {
	Version byte
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown payload encoding version %d", e.Version)
}

// CompressionError reports that the DEFLATE stream for a compressed
// payload could not be produced or finalized.
type CompressionError struct {
	Err error
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("compressing payload: %v", e.Err)
}

func (e *CompressionError) Unwrap() error { return e.Err }

// DecompressionError reports a corrupt or truncated DEFLATE stream in
// a compressed payload.
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("decompressing payload: %v", e.Err)
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// PayloadDecodeError reports that the canonical deserialization of a
// domain object rejected the payload bytes.
type PayloadDecodeError struct {
	Kind Kind
	Err  error
}

func (e *PayloadDecodeError) Error() string {
	return fmt.Sprintf("decoding %s payload: %v", e.Kind, e.Err)
}

func (e *PayloadDecodeError) Unwrap() error { return e.Err }

// WrongTypeError reports a narrowing conversion applied to a payload
// of a different kind: the string parsed correctly, but it does not
// contain the requested object.
type WrongTypeError struct {
	Got  Kind
	Want Kind
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("payload contains a %s, not a %s", e.Got, e.Want)
}
