package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gomedic/internal/config"
	"gomedic/internal/goenv"
	"gomedic/internal/output"
	"gomedic/internal/patch"
)

// Exit code contract:
// 0 = success (patched or already patched)
// 1 = validation found missing markers
// 3 = fatal error (resolution, missing file, anchor miss, I/O)
const (
	ExitOK               = 0
	ExitValidationFailed = 1
	ExitFatal            = 3
)

type Engine struct {
	resolver *goenv.Resolver
	stdout   io.Writer
	stderr   io.Writer
}

func New(resolver *goenv.Resolver, stdout, stderr io.Writer) *Engine {
	if resolver == nil {
		resolver = goenv.NewResolver()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Engine{resolver: resolver, stdout: stdout, stderr: stderr}
}

// Run resolves the toolchain root, applies the toolchain patches, then (when a
// repo root is configured) the repository patches followed by the validator.
// Everything is sequential; every error is fatal to the whole run.
func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	console := output.NewConsole(e.stdout, cfg.Verbose)

	goroot, err := e.resolver.Resolve(ctx, cfg.Goroot)
	if err != nil {
		return e.fatal(err)
	}

	report := Report{Goroot: goroot, Repo: cfg.Repo, DryRun: cfg.DryRun}

	var store patch.FileStore = patch.OSStore{}
	var overlay *Overlay
	if cfg.DryRun {
		overlay = NewOverlay(patch.OSStore{})
		store = overlay
	}

	toolchain := patch.List(patch.GroupToolchain)
	if err := verifyTargets(goroot, toolchain); err != nil {
		return e.fatal(err)
	}
	report.Toolchain, err = applyAll(goroot, toolchain, store)
	if err != nil {
		return e.fatal(err)
	}
	console.Summary("", report.Toolchain)

	if cfg.Repo != "" {
		repoPatches := patch.List(patch.GroupRepo)
		if err := verifyTargets(cfg.Repo, repoPatches); err != nil {
			return e.fatal(err)
		}
		report.RepoFiles, err = applyAll(cfg.Repo, repoPatches, store)
		if err != nil {
			return e.fatal(err)
		}
		console.Summary("repo", report.RepoFiles)

		// Validation checks end-state on disk, so it runs even when nothing
		// was modified this run, and is skipped only in a dry run.
		if !cfg.DryRun {
			if err := patch.ValidateRepo(cfg.Repo); err != nil {
				var verr *patch.ValidationError
				if errors.As(err, &verr) {
					fmt.Fprintln(e.stderr, verr.Error())
					e.writeReportIfRequested(cfg, report)
					return ExitValidationFailed
				}
				return e.fatal(err)
			}
			report.Validated = true
			console.Validated()
		}
	}

	if cfg.DryRun {
		for _, path := range overlay.ModifiedPaths() {
			before, after := overlay.Change(path)
			if err := output.UnifiedDiff(e.stdout, path, before, after); err != nil {
				return e.fatal(err)
			}
		}
		console.DryRunNote()
	}

	if cfg.Out != "" {
		if err := output.WriteReport(cfg.Out, report); err != nil {
			return e.fatal(err)
		}
	}

	return ExitOK
}

func (e *Engine) fatal(err error) int {
	fmt.Fprintf(e.stderr, "Error: %v\n", err)
	return ExitFatal
}

func (e *Engine) writeReportIfRequested(cfg *config.Config, report Report) {
	if cfg.Out == "" {
		return
	}
	if err := output.WriteReport(cfg.Out, report); err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
	}
}

// verifyTargets fails fast on the first missing target file, before any patch
// in the group runs.
func verifyTargets(root string, patches []patch.Patch) error {
	for _, p := range patches {
		path := filepath.Join(root, p.File)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return &patch.MissingFileError{Path: path}
			}
			return err
		}
	}
	return nil
}

func applyAll(root string, patches []patch.Patch, store patch.FileStore) ([]patch.Outcome, error) {
	outcomes := make([]patch.Outcome, 0, len(patches))
	for _, p := range patches {
		out, err := p.Apply(root, store)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
