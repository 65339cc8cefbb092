// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/grunch/rgb-core/lib/canonical"
)

// Framed payload version bytes. Wire constants: version 0 means the
// canonical bytes follow directly, version 1 means they follow as a
// raw-DEFLATE stream. Decoders reject everything else.
const (
	versionPlain   byte = 0
	versionDeflate byte = 1
)

// encodePlain frames v as version byte 0 plus its canonical bytes.
func encodePlain(v canonical.Encodable) ([]byte, error) {
	data, err := canonical.Marshal(v)
	if err != nil {
		return nil, err
	}
	framed := make([]byte, 0, 1+len(data))
	framed = append(framed, versionPlain)
	return append(framed, data...), nil
}

// encodeDeflate frames v as version byte 1 plus a raw-DEFLATE stream
// of its canonical bytes. The stream comes from the in-package
// emitter in deflate.go, which reproduces the deployed encoder's
// tokenization byte-for-byte; a general-purpose compressor would
// produce a different (if equally valid) stream and break the frozen
// renderings consumers already hold.
func encodeDeflate(v canonical.Encodable) ([]byte, error) {
	data, err := canonical.Marshal(v)
	if err != nil {
		return nil, err
	}

	stream := deflateCompress(data)
	framed := make([]byte, 0, 1+len(stream))
	framed = append(framed, versionDeflate)
	return append(framed, stream...), nil
}

// decodeFramed reads the version byte, recovers the canonical bytes
// (inflating for version 1), and deserializes them into v. Unknown
// versions fail deterministically — there is no best-effort path.
func decodeFramed(kind Kind, data []byte, v canonical.Decodable) error {
	if len(data) == 0 {
		return &PayloadDecodeError{Kind: kind, Err: io.ErrUnexpectedEOF}
	}

	var body []byte
	switch data[0] {
	case versionPlain:
		body = data[1:]
	case versionDeflate:
		inflater := flate.NewReader(bytes.NewReader(data[1:]))
		inflated, err := io.ReadAll(inflater)
		if err != nil {
			return &DecompressionError{Err: err}
		}
		if err := inflater.Close(); err != nil {
			return &DecompressionError{Err: err}
		}
		body = inflated
	default:
		return &UnknownVersionError{Version: data[0]}
	}

	if err := canonical.Unmarshal(body, v); err != nil {
		return &PayloadDecodeError{Kind: kind, Err: err}
	}
	return nil
}
