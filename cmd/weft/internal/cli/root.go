// Package cli implements the weft CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version = "0.1.0-dev"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	NoColor bool
}

// NewRootCommand creates the root command for the weft CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "weft",
		Short:   "weft - incremental UI rendering for Go",
		Version: Version,
		Long: `weft renders declarative element trees into mutable host trees by
diffing against the previously committed tree and applying the minimal
set of mutations. This tool renders markup files for inspection and
scaffolds starter programs.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))

	return cmd
}
