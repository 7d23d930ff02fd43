// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package trace records overlay open-change notifications as a CBOR
// sequence, one [Record] per change, optionally inside a zstd stream.
//
// A recorder is installed by chaining its hook in front of a node's
// existing callback:
//
//	options.OnOpenChange = recorder.Hook(tree, options.OnOpenChange)
//
// Traces are read back with [ReadAll], or shown as stored with [Dump].
// Encoding is deterministic, so replaying the same input against a
// fake clock yields byte-identical traces.
package trace
