package flags

// Package flags defines canonical CLI flag names shared across the CLI and
// engine. Keeping these as constants helps avoid drift between Cobra flag
// wiring and other code paths that reference flags.
// IMPORTANT: These are flag *names* without leading dashes.
const (
	FlagGoroot  = "goroot"
	FlagRepo    = "repo"
	FlagDryRun  = "dry-run"
	FlagOut     = "out"
	FlagTimeout = "timeout"
	FlagVerbose = "verbose"
)
