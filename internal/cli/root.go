package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gomedic",
	Short: "Patch a Go toolchain and client repo for ESXi epoll quirks",
	Long: `Gomedic applies a fixed catalog of idempotent source patches.

Three toolchain patches work around ESXi's incomplete epoll implementation
(missing epoll_pwait, rejected EPOLLRDHUP registrations). Five optional
repository patches add explicit self-path resolution for re-exec on daemonize.

Every patch checks an idempotency marker before touching its file, so re-runs
are no-ops. A missing anchor means the target no longer matches the versions
these patches were written against, and the whole run fails loudly.

Examples:
	# Patch the toolchain found via GOROOT or 'go env GOROOT'
	gomedic apply --goroot /usr/local/go

	# Also patch the client repo and validate the end state
	gomedic apply --repo ~/src/client

	# List patches
	gomedic patches list

	# Print build info
	gomedic version`,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print per-patch sub-edit detail in summaries")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
