package cli

import (
	"context"
	"fmt"
	"os"

	"gomedic/internal/config"
	"gomedic/internal/engine"
	"gomedic/internal/flags"
	"gomedic/internal/goenv"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the toolchain (and optionally repository) patches",
	Long: `Apply the patch catalog.

The toolchain root is resolved from --goroot, then the GOROOT environment
variable, then 'go env GOROOT'. The three toolchain patches always run; the
five repository patches run only when --repo is set, followed by a validation
sweep that re-reads every patched file and asserts every expected marker.

Exit codes:
	0 = success (patched or already patched)
	1 = validation found missing markers
	3 = fatal error (resolution, missing file, anchor miss, I/O)

Examples:
	gomedic apply
	gomedic apply --goroot /usr/local/go --repo ~/src/client
	gomedic apply --repo ~/src/client --dry-run
	gomedic apply --out outcome.json
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg.Verbose = verbose
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(engine.ExitFatal)
		}

		resolver := goenv.NewResolver()
		resolver.Timeout = cfg.Timeout

		eng := engine.New(resolver, cmd.OutOrStdout(), cmd.ErrOrStderr())
		os.Exit(eng.Run(context.Background(), cfg))
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVar(&cfg.Goroot, flags.FlagGoroot, "", "Toolchain root to patch (default: GOROOT env, then 'go env GOROOT')")
	applyCmd.Flags().StringVar(&cfg.Repo, flags.FlagRepo, "", "Client repository root; when set, the repository patches and validator also run")
	applyCmd.Flags().BoolVar(&cfg.DryRun, flags.FlagDryRun, false, "Preview changes as unified diffs without writing any file")
	applyCmd.Flags().StringVar(&cfg.Out, flags.FlagOut, "", "Write the run outcome as JSON to this path")
	applyCmd.Flags().DurationVar(&cfg.Timeout, flags.FlagTimeout, cfg.Timeout, "Timeout for the 'go env GOROOT' subprocess (default: 10s)")
}
