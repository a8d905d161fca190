package patch

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Check is one expected end-state assertion: Marker must be present in File
// (relative to the repo root) after the repository patches have run.
type Check struct {
	File   string
	Marker string
}

// RepoChecks lists every marker the repository patches are expected to leave
// behind. Validation checks end-state, not this run's delta, so it runs even
// when no file was modified.
func RepoChecks() []Check {
	return []Check{
		{File: "internal/client/client.go", Marker: "SelfPath"},
		{File: "cmd/client/main.go", Marker: "--self-path"},
		{File: "cmd/client/detach.go", Marker: "selfExecCandidates"},
		{File: "cmd/client/detach.go", Marker: "normalizeSelfPath"},
		{File: "cmd/client/detach.go", Marker: "isProcPath"},
		{File: "internal/server/commands/link.go", Marker: "self-path"},
		{File: "internal/server/webserver/buildmanager.go", Marker: "main.selfPath"},
		{File: "internal/server/webserver/buildmanager.go", Marker: "SelfPath"},
	}
}

// ValidateRepo re-reads each patched file and asserts every expected marker.
// All misses are aggregated into a single *ValidationError rather than
// failing on the first, so one run shows the complete picture. The sweep is
// read-only; the files are re-read concurrently.
func ValidateRepo(root string) error {
	checks := RepoChecks()
	findings := make([]*Finding, len(checks))

	var g errgroup.Group
	for i, c := range checks {
		i, c := i, c
		g.Go(func() error {
			path := filepath.Join(root, c.File)
			b, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					findings[i] = &Finding{File: path, FileMissing: true}
					return nil
				}
				return err
			}
			if !strings.Contains(string(b), c.Marker) {
				findings[i] = &Finding{File: path, Marker: c.Marker}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var missing []Finding
	for _, f := range findings {
		if f != nil {
			missing = append(missing, *f)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Findings: missing}
	}
	return nil
}
