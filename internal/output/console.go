package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gomedic/internal/patch"

	"github.com/fatih/color"
)

// Console writes the line-oriented run summary: which files were patched this
// run versus already idempotent, per group.
type Console struct {
	w       io.Writer
	verbose bool
}

func NewConsole(w io.Writer, verbose bool) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w, verbose: verbose}
}

// Summary prints the per-group outcome. prefix is "" for the toolchain group
// and "repo" for the repository group, matching the output contract:
// "patched:" + list, "already patched", "repo patched:" + list,
// "repo already patched".
func (c *Console) Summary(prefix string, outcomes []patch.Outcome) {
	var modified []patch.Outcome
	for _, o := range outcomes {
		if o.Status == patch.StatusModified {
			modified = append(modified, o)
		}
	}

	if len(modified) == 0 {
		fmt.Fprintln(c.w, strings.TrimSpace(prefix+" already patched"))
		return
	}

	header := strings.TrimSpace(prefix + " patched:")
	color.New(color.FgGreen).Fprintln(c.w, header)
	for _, o := range modified {
		fmt.Fprintln(c.w, "-", o.File)
		if c.verbose && len(o.Notes) > 0 {
			fmt.Fprintf(c.w, "  sub-edits: %s\n", strings.Join(o.Notes, ", "))
		}
	}
}

// Validated prints the final confirmation line after a successful repo sweep.
func (c *Console) Validated() {
	fmt.Fprintln(c.w, "repo: self-path/forking patch present")
}

// DryRunNote marks preview output so it cannot be mistaken for a real run.
func (c *Console) DryRunNote() {
	color.New(color.FgYellow).Fprintln(c.w, "dry run: no files were written; validation skipped")
}
