// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Digest identifies an option list by content.
type Digest [32]byte

// DigestEntries hashes the label, value and flags of every entry.
func DigestEntries(entries []Entry) Digest {
	hasher := blake3.New()
	var scratch []byte
	for _, entry := range entries {
		scratch = scratch[:0]
		scratch = binary.AppendUvarint(scratch, uint64(len(entry.Label)))
		scratch = append(scratch, entry.Label...)
		scratch = binary.AppendUvarint(scratch, uint64(len(entry.Value)))
		scratch = append(scratch, entry.Value...)
		var flags byte
		if entry.Disabled {
			flags |= 1
		}
		if entry.Header {
			flags |= 2
		}
		if entry.Radios {
			flags |= 4
		}
		scratch = append(scratch, flags)
		scratch = binary.AppendVarint(scratch, int64(entry.Group))
		hasher.Write(scratch)
	}
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// Reconciler corrects a single-select value that does not name an
// option. It only evaluates when the option list differs from the one
// it saw last, so re-rendering an unchanged list never produces a
// second correction.
type Reconciler struct {
	// SelectFirstIfNotFound corrects to the first selectable option
	// instead of the empty value.
	SelectFirstIfNotFound bool

	// AllowEmpty accepts the empty value as valid even when no option
	// has it.
	AllowEmpty bool

	digest Digest
	seen   bool
}

// Reconcile returns the corrected value and true when current needs
// correcting for a changed list.
func (reconciler *Reconciler) Reconcile(entries []Entry, current string) (string, bool) {
	digest := DigestEntries(entries)
	if reconciler.seen && digest == reconciler.digest {
		return "", false
	}
	reconciler.digest = digest
	reconciler.seen = true

	if index := indexOf(entries, current); index >= 0 {
		return "", false
	}
	if current == "" && reconciler.AllowEmpty {
		return "", false
	}

	corrected := ""
	if reconciler.SelectFirstIfNotFound {
		for _, entry := range entries {
			if entry.Selectable() {
				corrected = entry.Value
				break
			}
		}
	}
	if corrected == current {
		return "", false
	}
	return corrected, true
}

// Forget makes the next Reconcile evaluate regardless of the list.
func (reconciler *Reconciler) Forget() {
	reconciler.seen = false
}
