package patch

import (
	"errors"
	"path/filepath"
)

type Group string

const (
	GroupToolchain Group = "toolchain"
	GroupRepo      Group = "repo"
)

type Status string

const (
	StatusUnchanged Status = "unchanged"
	StatusModified  Status = "modified"
)

// Outcome records what a single patch did to its target file during one run.
type Outcome struct {
	Patch  string   `json:"patch"`
	File   string   `json:"file"`
	Status Status   `json:"status"`
	// Notes names the sub-edits that were applied, for patches made of several
	// independently idempotent edits.
	Notes []string `json:"notes,omitempty"`
}

// Patch is one catalog entry: a named, idempotent textual transformation of a
// single target file. Applied is the idempotency-marker check and is consulted
// before Transform; if it reports true the file is never rewritten.
//
// Transform is a pure function of the current content. It must either return
// the full new content or an *AnchorNotFoundError when the text it expects to
// edit next to is missing. All content outside the edited region is preserved
// byte for byte.
type Patch struct {
	Name  string
	Title string
	Doc   string
	Group Group

	// File is the target path relative to the group root (GOROOT or repo root).
	File string

	Applied   func(content string) bool
	Transform func(content string) (updated string, notes []string, err error)
}

// Apply runs the patch against root using fs for all file access.
// It returns true-equivalent StatusModified only when the file content
// actually changed and was written back.
func (p Patch) Apply(root string, fs FileStore) (Outcome, error) {
	path := filepath.Join(root, p.File)
	out := Outcome{Patch: p.Name, File: path, Status: StatusUnchanged}

	content, err := fs.ReadFile(path)
	if err != nil {
		return out, err
	}

	if p.Applied(content) {
		return out, nil
	}

	updated, notes, err := p.Transform(content)
	if err != nil {
		var anf *AnchorNotFoundError
		if errors.As(err, &anf) && anf.Path == "" {
			anf.Path = path
		}
		return out, err
	}

	if updated == content {
		return out, nil
	}

	if err := fs.WriteFile(path, updated); err != nil {
		return out, err
	}

	out.Status = StatusModified
	out.Notes = notes
	return out, nil
}
