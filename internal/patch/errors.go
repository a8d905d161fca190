package patch

import (
	"fmt"
	"strings"
)

// MissingFileError reports a required target file that does not exist.
// The run fails fast on the first missing path.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

// AnchorNotFoundError reports a target file whose content no longer contains
// the literal text a patch expects to edit next to. This signals version drift
// of the target, not a transient condition, and is always fatal.
type AnchorNotFoundError struct {
	Path   string
	Anchor string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("%s: anchor not found (%s)", e.Path, e.Anchor)
}

// Finding is one missing-marker observation from the validator.
type Finding struct {
	File        string `json:"file"`
	Marker      string `json:"marker,omitempty"`
	FileMissing bool   `json:"file_missing,omitempty"`
}

func (f Finding) String() string {
	if f.FileMissing {
		return fmt.Sprintf("%s does not exist", f.File)
	}
	return fmt.Sprintf("%s missing %s", f.File, f.Marker)
}

// ValidationError aggregates every missing marker found by the post-apply
// sweep so the user can fix everything in one pass.
type ValidationError struct {
	Findings []Finding
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Findings))
	for _, f := range e.Findings {
		lines = append(lines, f.String())
	}
	return "repo missing self-path/forking patch:\n- " + strings.Join(lines, "\n- ")
}
