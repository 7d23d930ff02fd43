// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bureau-foundation/overlay/lib/clock"
	"github.com/bureau-foundation/overlay/lib/codec"
	"github.com/bureau-foundation/overlay/lib/overlay"
)

// Record is one open-change notification.
type Record struct {
	Sequence uint64    `cbor:"seq"`
	Node     string    `cbor:"node"`
	Parent   string    `cbor:"parent,omitempty"`
	Open     bool      `cbor:"open"`
	Reason   string    `cbor:"reason"`
	Time     time.Time `cbor:"time"`
}

// Recorder appends records to a writer. It is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	clock      clock.Clock
	compressor io.WriteCloser
	encoder    *codec.Encoder
	sequence   uint64
	err        error
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock stamps records from c instead of the wall clock.
func WithClock(c clock.Clock) RecorderOption {
	return func(recorder *Recorder) { recorder.clock = c }
}

// NewRecorder writes records to w, through a zstd stream when compress
// is set. Close the recorder to flush the stream.
func NewRecorder(w io.Writer, compress bool, options ...RecorderOption) (*Recorder, error) {
	recorder := &Recorder{clock: clock.Real()}
	for _, option := range options {
		option(recorder)
	}
	if compress {
		compressor, err := codec.NewCompressor(w)
		if err != nil {
			return nil, fmt.Errorf("creating trace recorder: %w", err)
		}
		recorder.compressor = compressor
		w = compressor
	}
	recorder.encoder = codec.NewEncoder(w)
	return recorder, nil
}

// Record appends one change. After the first write error every call
// returns that error without writing.
func (recorder *Recorder) Record(change overlay.OpenChange, parent overlay.NodeID) error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	if recorder.err != nil {
		return recorder.err
	}
	recorder.sequence++
	record := Record{
		Sequence: recorder.sequence,
		Node:     string(change.Node),
		Parent:   string(parent),
		Open:     change.Open,
		Reason:   string(change.Reason),
		Time:     recorder.clock.Now(),
	}
	if err := recorder.encoder.Encode(record); err != nil {
		recorder.err = fmt.Errorf("recording change %d: %w", record.Sequence, err)
	}
	return recorder.err
}

// Hook returns an OnOpenChange callback that records the change and
// then calls next. Write errors do not interrupt the overlay; they are
// reported by Err and Close.
func (recorder *Recorder) Hook(tree *overlay.Tree, next func(overlay.OpenChange)) func(overlay.OpenChange) {
	return func(change overlay.OpenChange) {
		var parent overlay.NodeID
		if node := tree.Node(change.Node); node != nil {
			parent = node.ParentID()
		}
		recorder.Record(change, parent)
		if next != nil {
			next(change)
		}
	}
}

// Count returns the number of records written.
func (recorder *Recorder) Count() uint64 {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return recorder.sequence
}

// Err returns the first write error.
func (recorder *Recorder) Err() error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return recorder.err
}

// Close flushes the compressed stream, if any. The underlying writer
// is not closed.
func (recorder *Recorder) Close() error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	var closeErr error
	if recorder.compressor != nil {
		closeErr = recorder.compressor.Close()
		recorder.compressor = nil
	}
	return errors.Join(recorder.err, closeErr)
}

// ReadAll decodes every record in r.
func ReadAll(r io.Reader, compressed bool) ([]Record, error) {
	if compressed {
		decompressor, err := codec.NewDecompressor(r)
		if err != nil {
			return nil, fmt.Errorf("reading trace: %w", err)
		}
		defer decompressor.Close()
		r = decompressor
	}
	decoder := codec.NewDecoder(r)
	var records []Record
	for {
		var record Record
		err := decoder.Decode(&record)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("reading trace record %d: %w", len(records)+1, err)
		}
		records = append(records, record)
	}
}

// Dump renders each record in r as CBOR diagnostic notation, without
// decoding it into a Record. Fields this package does not know about
// still appear.
func Dump(r io.Reader, compressed bool) ([]string, error) {
	if compressed {
		decompressor, err := codec.NewDecompressor(r)
		if err != nil {
			return nil, fmt.Errorf("reading trace: %w", err)
		}
		defer decompressor.Close()
		r = decompressor
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return codec.Diagnose(data)
}
