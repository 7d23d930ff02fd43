// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewCompressor wraps w in a zstd stream at the default level. Close
// the returned writer to flush the final frame; closing does not close
// w.
func NewCompressor(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	return encoder, nil
}

// NewDecompressor reads a zstd stream from r. Close releases the
// decoder's goroutines and does not close r.
func NewDecompressor(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	return decoder.IOReadCloser(), nil
}
