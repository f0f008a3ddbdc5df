package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/host"
	"github.com/go-weft/weft/pkg/markup"
)

const (
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// NewRenderCommand creates the render command: load a markup file,
// render it into an in-memory host tree, print the result.
func NewRenderCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a markup file and print the resulting host tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := markup.ParseFile(args[0])
			if err != nil {
				return err
			}

			tree := host.NewMemoryTree()
			container := tree.NewContainer("root")
			r := core.NewRenderer(tree)
			r.Render(el, container)
			r.Flush()

			out := container.Render()
			if opts.Verbose {
				out = container.RenderWithIDs()
			}
			if colorEnabled(opts) {
				out = colorizeTags(out)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)

			if opts.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d host mutations applied\n", len(tree.Journal()))
			}
			return nil
		},
	}
	return cmd
}

// colorEnabled reports whether output should be colorized: stdout is
// a terminal and color was not disabled.
func colorEnabled(opts *RootOptions) bool {
	if opts.NoColor {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// colorizeTags highlights tag lines in a host-tree dump.
func colorizeTags(dump string) string {
	lines := strings.Split(dump, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimLeft(line, " "), "<") {
			lines[i] = ansiCyan + line + ansiReset
		}
	}
	return strings.Join(lines, "\n")
}
