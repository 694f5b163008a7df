package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go-picview/internal/core/launch"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [args...]",
	Short: "Print the image the viewer would open for the given arguments",
	Long: `Run the launch-argument scan without opening a window.

The arguments are checked exactly as they would be at launch: flags are
skipped, the extension must be on the image allow-list (case-insensitive)
and the file must exist. Prints the first match, or "none".`,
	Example: `  go-picview resolve -- --fullscreen ~/Pictures/cat.PNG notes.txt`,
	Args:    cobra.ArbitraryArgs,
	RunE:    runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	path, ok := launch.Resolve(append([]string{rootCmd.Name()}, args...))
	if !ok {
		GetLogger().Debug("no launch file", "args", args)
		fmt.Fprintln(cmd.OutOrStdout(), "none")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
