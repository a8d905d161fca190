package config

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// Goroot is the explicit toolchain root override (see --goroot). When
	// empty, the resolver falls back to GOROOT and then `go env GOROOT`.
	Goroot string

	// Repo is the client repository root (see --repo). When empty, only the
	// toolchain patches run.
	Repo string

	// DryRun previews patches without writing: reads go through an in-memory
	// overlay and a unified diff is printed per would-be-modified file
	// (see --dry-run).
	DryRun bool

	// Out writes the run outcome as indented JSON to this path (see --out).
	Out string

	// Timeout bounds the `go env GOROOT` subprocess (see --timeout).
	Timeout time.Duration

	// Verbose prints per-patch sub-edit notes in the summary (see --verbose).
	Verbose bool
}

func New() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}

func (c *Config) Validate() error {
	c.Goroot = strings.TrimSpace(c.Goroot)
	c.Repo = strings.TrimSpace(c.Repo)
	c.Out = strings.TrimSpace(c.Out)

	if c.Goroot != "" {
		c.Goroot = filepath.Clean(c.Goroot)
	}
	if c.Repo != "" {
		c.Repo = filepath.Clean(c.Repo)
	}

	if c.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}

	return nil
}
