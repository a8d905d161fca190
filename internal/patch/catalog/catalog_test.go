package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gomedic/internal/patch"
)

// applyToTemp writes content at the patch's target path under a fresh root,
// applies the patch through the real file store, and returns the resulting
// content alongside the outcome.
func applyToTemp(t *testing.T, p patch.Patch, content string) (string, patch.Outcome) {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, p.File)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := p.Apply(root, patch.OSStore{})
	if err != nil {
		t.Fatalf("%s: Apply returned error: %v", p.Name, err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(got), out
}

// roundTrip asserts the core patch contract: the first application modifies,
// the second is a no-op on identical content.
func roundTrip(t *testing.T, p patch.Patch, content string) string {
	t.Helper()
	first, out := applyToTemp(t, p, content)
	if out.Status != patch.StatusModified {
		t.Fatalf("%s: expected modified on first apply, got %s", p.Name, out.Status)
	}

	second, out := applyToTemp(t, p, first)
	if out.Status != patch.StatusUnchanged {
		t.Fatalf("%s: expected unchanged on second apply, got %s", p.Name, out.Status)
	}
	if second != first {
		t.Fatalf("%s: second apply changed content", p.Name)
	}
	return first
}

// expectAnchorMiss asserts drift detection: content lacking both marker and
// anchor fails without writing.
func expectAnchorMiss(t *testing.T, p patch.Patch, content, anchor string) {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, p.File)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := p.Apply(root, patch.OSStore{})
	var anf *patch.AnchorNotFoundError
	if !errors.As(err, &anf) {
		t.Fatalf("%s: expected AnchorNotFoundError, got %v", p.Name, err)
	}
	if anf.Anchor != anchor {
		t.Fatalf("%s: unexpected anchor label: %q", p.Name, anf.Anchor)
	}
	if anf.Path != path {
		t.Fatalf("%s: unexpected path: %q", p.Name, anf.Path)
	}

	got, rerr := os.ReadFile(path)
	if rerr != nil {
		t.Fatal(rerr)
	}
	if string(got) != content {
		t.Fatalf("%s: anchor miss must not write", p.Name)
	}
}
