// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = newEncMode(); err != nil {
		panic("codec: building CBOR encoder: " + err.Error())
	}
	if decMode, err = newDecMode(); err != nil {
		panic("codec: building CBOR decoder: " + err.Error())
	}
}

// newEncMode is Core Deterministic Encoding. Timestamps are RFC 3339
// text at nanosecond precision so a diagnostic dump stays readable.
func newEncMode() (cbor.EncMode, error) {
	options := cbor.CoreDetEncOptions()
	options.Time = cbor.TimeRFC3339Nano
	options.TextMarshaler = cbor.TextMarshalerTextString
	return options.EncMode()
}

// newDecMode ignores unknown fields, so a reader built before a record
// gained a field still loads it.
func newDecMode() (cbor.DecMode, error) {
	return cbor.DecOptions{
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
}

// Marshal encodes v deterministically.
func Marshal(v any) ([]byte, error) { return encMode.Marshal(v) }

// Unmarshal decodes one CBOR item from data into v.
func Unmarshal(data []byte, v any) error { return decMode.Unmarshal(data, v) }

// Encoder writes a CBOR sequence (RFC 8742).
type Encoder = cbor.Encoder

// Decoder reads a CBOR sequence.
type Decoder = cbor.Decoder

// NewEncoder returns an encoder appending items to w.
func NewEncoder(w io.Writer) *Encoder { return encMode.NewEncoder(w) }

// NewDecoder returns a decoder reading items from r.
func NewDecoder(r io.Reader) *Decoder { return decMode.NewDecoder(r) }

// Diagnose renders every item of a CBOR sequence in diagnostic
// notation (RFC 8949 §8), one string per item. On a malformed item it
// returns the items before it and the error.
func Diagnose(data []byte) ([]string, error) {
	var items []string
	for len(data) > 0 {
		notation, rest, err := cbor.DiagnoseFirst(data)
		if err != nil {
			return items, fmt.Errorf("diagnosing item %d: %w", len(items)+1, err)
		}
		items = append(items, notation)
		data = rest
	}
	return items, nil
}
