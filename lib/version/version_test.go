// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	savedCommit, savedDirty, savedTime := GitCommit, GitDirty, BuildTime
	t.Cleanup(func() { GitCommit, GitDirty, BuildTime = savedCommit, savedDirty, savedTime })

	GitCommit, GitDirty, BuildTime = "abc1234", "true", "2026-03-01T00:00:00Z"
	if got, want := Info(), Version+" (abc1234-dirty, 2026-03-01T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "false"
	if got, want := Info(), Version+" (abc1234, 2026-03-01T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestFprint(t *testing.T) {
	var buffer bytes.Buffer
	Fprint(&buffer, "overlay-demo")
	output := buffer.String()
	if !strings.HasPrefix(output, "overlay-demo "+Version) {
		t.Errorf("output = %q", output)
	}
	if !strings.Contains(output, "Go: ") || !strings.HasSuffix(output, "\n") {
		t.Errorf("output missing build details: %q", output)
	}
}
