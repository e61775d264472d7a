package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <tree-path> <new-label>",
	Short: "Rename an entry's label",
	Long: `Rename an entry's label. The recorded filesystem path is not touched, so
a renamed file entry keeps pointing at the same file.

Example:
  custom-explorer-cli rename docs/setup.md "Setup Guide"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := Explorer().NodeByTreePath(args[0])
		if n == nil {
			return fmt.Errorf("no entry at tree path %q", args[0])
		}
		if err := Explorer().Rename(n, args[1]); err != nil {
			return err
		}
		fmt.Printf("Renamed to %q\n", n.Label)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
