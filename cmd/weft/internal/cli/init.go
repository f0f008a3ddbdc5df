package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-weft/weft/cmd/weft/internal/config"
)

// NewInitCommand creates the init command: scaffold a starter program
// in an existing Go module.
func NewInitCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Scaffold a starter weft program in an existing Go module",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			resolved, err := config.Resolve(dir)
			if err != nil {
				return err
			}

			target := filepath.Join(dir, "main.go")
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("%s already exists", target)
			}
			if err := os.WriteFile(target, []byte(starterProgram(resolved.AppName)), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s (module %s)\n", resolved.AppName, resolved.ModulePath)
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target)
			return nil
		},
	}
	return cmd
}

// starterProgram is the scaffolded entry point: a counter component
// rendered into an in-memory host tree, stepped by dispatched clicks.
func starterProgram(appName string) string {
	return fmt.Sprintf(`// %s, scaffolded by weft init.
package main

import (
	"fmt"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/host"
)

func main() {
	counter := core.Composite("Counter", func(r *core.Renderer, props core.Props, children []core.Element) core.Element {
		count, setCount := core.UseState(r, 0)
		return core.Host("button", core.Props{
			"onClick": host.Listener(func(host.Event) {
				setCount.Update(func(n int) int { return n + 1 })
			}),
		}, "clicks: ", count)
	})

	tree := host.NewMemoryTree()
	container := tree.NewContainer("root")
	r := core.NewRenderer(tree)

	r.Render(core.Host("div", core.Props{"id": "app"}, core.NewElement(counter, nil)), container)
	r.Flush()

	button := container.Children()[0].Children()[0]
	for i := 0; i < 3; i++ {
		tree.Dispatch(button, "click", nil)
		r.Flush()
	}

	fmt.Print(container.Render())
}
`, appName)
}
