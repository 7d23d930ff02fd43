// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/overlay/lib/clock"
	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
)

var epoch = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// recordSession drives a menu with one submenu through open, submenu
// open and root close, recording every change.
func recordSession(t *testing.T, compress bool) []byte {
	t.Helper()
	fake := clock.Fake(epoch)
	tree := overlay.NewTree(overlay.WithClock(fake))

	var buffer bytes.Buffer
	recorder, err := NewRecorder(&buffer, compress, WithClock(fake))
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	rootOptions := overlay.DefaultOptions()
	root := tree.Mount(overlay.NodeOptions{
		Reference: overlay.NewBox(geometry.Rect{Width: 6, Height: 1}),
		Floating:  overlay.NewBox(geometry.Rect{Width: 12, Height: 3}),
		Options:   rootOptions,
	})
	root.UpdateOptions(func(options *overlay.Options) {
		options.OnOpenChange = recorder.Hook(tree, options.OnOpenChange)
	})
	child := tree.Mount(overlay.NodeOptions{
		Parent:    root.ID(),
		Reference: overlay.Row(root, 0),
		Floating:  overlay.NewBox(geometry.Rect{Width: 12, Height: 2}),
		Options:   overlay.DefaultOptions(),
	})
	child.UpdateOptions(func(options *overlay.Options) {
		options.OnOpenChange = recorder.Hook(tree, options.OnOpenChange)
	})

	root.RequestOpenChange(true, nil, overlay.ReasonClick)
	child.RequestOpenChange(true, nil, overlay.ReasonKeyDown)
	fake.Advance(time.Second)
	root.RequestOpenChange(false, nil, overlay.ReasonClick)

	if recorder.Count() != 4 {
		t.Errorf("recorded %d changes, want 4", recorder.Count())
	}
	if err := recorder.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buffer.Bytes()
}

func TestRecordAndReadBack(t *testing.T) {
	for _, compress := range []bool{false, true} {
		data := recordSession(t, compress)
		records, err := ReadAll(bytes.NewReader(data), compress)
		if err != nil {
			t.Fatalf("compress=%v: ReadAll: %v", compress, err)
		}
		want := []Record{
			{Sequence: 1, Node: "overlay-1", Open: true, Reason: "click", Time: epoch},
			{Sequence: 2, Node: "overlay-2", Parent: "overlay-1", Open: true, Reason: "keydown", Time: epoch},
			{Sequence: 3, Node: "overlay-1", Open: false, Reason: "click", Time: epoch.Add(time.Second)},
			{Sequence: 4, Node: "overlay-2", Parent: "overlay-1", Open: false, Reason: "rootClose", Time: epoch.Add(time.Second)},
		}
		if len(records) != len(want) {
			t.Fatalf("compress=%v: read %d records, want %d", compress, len(records), len(want))
		}
		for index, record := range records {
			expected := want[index]
			if !record.Time.Equal(expected.Time) {
				t.Errorf("compress=%v: record %d time = %v, want %v", compress, index, record.Time, expected.Time)
			}
			record.Time, expected.Time = time.Time{}, time.Time{}
			if record != expected {
				t.Errorf("compress=%v: record %d = %+v, want %+v", compress, index, record, expected)
			}
		}
	}
}

func TestTracesAreDeterministic(t *testing.T) {
	if !bytes.Equal(recordSession(t, false), recordSession(t, false)) {
		t.Error("identical sessions produced different traces")
	}
}

func TestEmptyTrace(t *testing.T) {
	records, err := ReadAll(bytes.NewReader(nil), false)
	if err != nil || len(records) != 0 {
		t.Errorf("ReadAll(empty) = %v, %v", records, err)
	}
}

func TestTruncatedTrace(t *testing.T) {
	data := recordSession(t, false)
	records, err := ReadAll(bytes.NewReader(data[:len(data)-3]), false)
	if err == nil {
		t.Fatal("truncated trace decoded without error")
	}
	if len(records) != 3 {
		t.Errorf("recovered %d records before the damage, want 3", len(records))
	}
}

func TestDump(t *testing.T) {
	for _, compress := range []bool{false, true} {
		items, err := Dump(bytes.NewReader(recordSession(t, compress)), compress)
		if err != nil {
			t.Fatalf("compress=%v: Dump: %v", compress, err)
		}
		if len(items) != 4 {
			t.Fatalf("compress=%v: dumped %d items, want 4", compress, len(items))
		}
		last := items[3]
		for _, want := range []string{`"overlay-2"`, `"overlay-1"`, `"rootClose"`, `"seq"`} {
			if !strings.Contains(last, want) {
				t.Errorf("compress=%v: item %q does not contain %s", compress, last, want)
			}
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorIsSticky(t *testing.T) {
	recorder, err := NewRecorder(failingWriter{}, false, WithClock(clock.Fake(epoch)))
	if err != nil {
		t.Fatal(err)
	}
	tree := overlay.NewTree()
	var forwarded int
	hook := recorder.Hook(tree, func(overlay.OpenChange) { forwarded++ })

	hook(overlay.OpenChange{Node: "overlay-9", Open: true, Reason: overlay.ReasonClick})
	hook(overlay.OpenChange{Node: "overlay-9", Open: false, Reason: overlay.ReasonOutside})

	if forwarded != 2 {
		t.Errorf("next called %d times, want 2", forwarded)
	}
	if recorder.Err() == nil {
		t.Fatal("write error not reported")
	}
	if recorder.Count() != 1 {
		t.Errorf("Count = %d, want 1", recorder.Count())
	}
	if err := recorder.Close(); err == nil {
		t.Error("Close dropped the write error")
	}
}
