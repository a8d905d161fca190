package cli

import (
	"fmt"
	"io"

	"gomedic/internal/patch"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var patchesListQuiet bool
var patchesCmd = &cobra.Command{
	Use:   "patches",
	Short: "Manage and list patches",
	Long: `Inspect the patch catalog.

Patches are listed in application order: the toolchain group first, then the
repository group.

Examples:
  # List all patches
  gomedic patches list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var patchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the patch catalog in application order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range patch.All() {
			if patchesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), p.Name)
			} else {
				printPatch(cmd.OutOrStdout(), p)
			}
		}
		return nil
	},
}

var patchesShowCmd = &cobra.Command{
	Use:   "show [patch-name]",
	Short: "Show details of a specific patch",
	Long: `Show details of a specific patch by name.

Examples:
  gomedic patches show epoll-wait-syscall-number
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := patch.Resolve(args[0])
		if err != nil {
			return err
		}
		printPatch(cmd.OutOrStdout(), p)
		return nil
	},
}

func printPatch(w io.Writer, p patch.Patch) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "PATCH: %s\n", p.Name)
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, p.Title)
	fmt.Fprintf(w, "Group:  %s\n", p.Group)
	fmt.Fprintf(w, "Target: %s\n", p.File)
	if p.Doc != "" {
		fmt.Fprintln(w, p.Doc)
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(patchesCmd)
	patchesCmd.AddCommand(patchesListCmd)
	patchesListCmd.Flags().BoolVarP(&patchesListQuiet, "quiet", "q", false, "Only print patch names")
	patchesCmd.AddCommand(patchesShowCmd)
}
