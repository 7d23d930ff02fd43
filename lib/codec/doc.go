// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the module's standard CBOR configuration and
// the zstd stream framing used for recorded overlay traces.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same record always produces identical bytes, so two traces of the
// same interaction can be compared byte for byte.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For streams, optionally compressed:
//
//	writer, err := codec.NewCompressor(file)
//	encoder := codec.NewEncoder(writer)
//	...
//	err = writer.Close()
//
// Diagnose turns a stored sequence back into RFC 8949 diagnostic
// notation without knowing the record types.
//
// Types serialized only as CBOR carry `cbor` struct tags. Types that
// are also rendered as JSON carry `json` tags, which fxamacker/cbor
// reads as a fallback. Never put both on one field.
package codec
