package engine

import (
	"errors"
	"testing"

	"gomedic/internal/patch"
)

type fakeStore map[string]string

func (s fakeStore) ReadFile(path string) (string, error) {
	content, ok := s[path]
	if !ok {
		return "", &patch.MissingFileError{Path: path}
	}
	return content, nil
}

func (s fakeStore) WriteFile(path string, content string) error {
	s[path] = content
	return nil
}

func TestOverlay_ReadAfterPriorWrite(t *testing.T) {
	base := fakeStore{"a.go": "v1"}
	o := NewOverlay(base)

	if got, _ := o.ReadFile("a.go"); got != "v1" {
		t.Fatalf("unexpected initial read: %q", got)
	}
	if err := o.WriteFile("a.go", "v2"); err != nil {
		t.Fatal(err)
	}

	// Later operations in the same run observe the staged content.
	got, err := o.ReadFile("a.go")
	if err != nil {
		t.Fatal(err)
	}
	if got != "v2" {
		t.Fatalf("staged content not observed: %q", got)
	}

	// Nothing reached the base store.
	if base["a.go"] != "v1" {
		t.Fatalf("overlay leaked a write: %q", base["a.go"])
	}
}

func TestOverlay_ModifiedPathsAndChange(t *testing.T) {
	base := fakeStore{"a.go": "v1", "b.go": "same"}
	o := NewOverlay(base)

	o.ReadFile("a.go")
	o.WriteFile("a.go", "v2")
	o.WriteFile("a.go", "v3")

	o.ReadFile("b.go")
	o.WriteFile("b.go", "same")

	paths := o.ModifiedPaths()
	if len(paths) != 1 || paths[0] != "a.go" {
		t.Fatalf("unexpected modified paths: %v", paths)
	}

	before, after := o.Change("a.go")
	if before != "v1" || after != "v3" {
		t.Fatalf("unexpected change: %q -> %q", before, after)
	}
}

func TestOverlay_MissingFilePassesThrough(t *testing.T) {
	o := NewOverlay(fakeStore{})
	_, err := o.ReadFile("absent.go")

	var mfe *patch.MissingFileError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MissingFileError, got %v", err)
	}
}
