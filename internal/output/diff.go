package output

import (
	"fmt"
	"io"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff renders a dry-run preview of one file's would-be change.
func UnifiedDiff(w io.Writer, path, before, after string) error {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (patched)",
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("diff %s: %w", path, err)
	}
	_, err = fmt.Fprint(w, text)
	return err
}
