package output

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gomedic/internal/patch"
)

func outcomes(status patch.Status, files ...string) []patch.Outcome {
	out := make([]patch.Outcome, 0, len(files))
	for _, f := range files {
		out = append(out, patch.Outcome{Patch: filepath.Base(f), File: f, Status: status})
	}
	return out
}

func TestSummary_PatchedListsModifiedFiles(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	mixed := append(
		outcomes(patch.StatusModified, "/go/src/a.go", "/go/src/b.go"),
		outcomes(patch.StatusUnchanged, "/go/src/c.go")...,
	)
	c.Summary("", mixed)

	got := buf.String()
	if !strings.Contains(got, "patched:") {
		t.Fatalf("missing header: %q", got)
	}
	if !strings.Contains(got, "- /go/src/a.go\n") || !strings.Contains(got, "- /go/src/b.go\n") {
		t.Fatalf("modified files not listed: %q", got)
	}
	if strings.Contains(got, "c.go") {
		t.Fatalf("unchanged file listed: %q", got)
	}
}

func TestSummary_AlreadyPatched(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Summary("", outcomes(patch.StatusUnchanged, "/go/src/a.go"))
	if got := buf.String(); got != "already patched\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestSummary_RepoPrefix(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Summary("repo", outcomes(patch.StatusModified, "/repo/x.go"))
	if !strings.Contains(buf.String(), "repo patched:") {
		t.Fatalf("unexpected output: %q", buf.String())
	}

	buf.Reset()
	c.Summary("repo", outcomes(patch.StatusUnchanged, "/repo/x.go"))
	if got := buf.String(); got != "repo already patched\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestSummary_VerbosePrintsSubEdits(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.Summary("repo", []patch.Outcome{{
		Patch:  "main-self-path-flag",
		File:   "/repo/cmd/client/main.go",
		Status: patch.StatusModified,
		Notes:  []string{"usage", "help-line"},
	}})

	if !strings.Contains(buf.String(), "sub-edits: usage, help-line") {
		t.Fatalf("sub-edits not printed: %q", buf.String())
	}
}

func TestSummary_QuietWithoutVerbose(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Summary("repo", []patch.Outcome{{
		Patch:  "main-self-path-flag",
		File:   "/repo/cmd/client/main.go",
		Status: patch.StatusModified,
		Notes:  []string{"usage"},
	}})

	if strings.Contains(buf.String(), "sub-edits") {
		t.Fatalf("sub-edits printed without verbose: %q", buf.String())
	}
}
