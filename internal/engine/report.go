package engine

import "gomedic/internal/patch"

// Report is the machine-readable record of one run, written when --out is set.
type Report struct {
	Goroot    string          `json:"goroot"`
	Repo      string          `json:"repo,omitempty"`
	DryRun    bool            `json:"dry_run,omitempty"`
	Toolchain []patch.Outcome `json:"toolchain"`
	RepoFiles []patch.Outcome `json:"repo_patches,omitempty"`
	Validated bool            `json:"validated,omitempty"`
}
