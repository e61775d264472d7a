package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamahir0/custom-explorer/internal/domain"
)

var removeCmd = &cobra.Command{
	Use:   "remove <tree-path>...",
	Short: "Remove entries from the tree",
	Long: `Remove one or more entries. Removing a group removes its whole subtree.
Files on disk are never touched.

Examples:
  custom-explorer-cli remove docs/old.md
  custom-explorer-cli remove scratch docs/tmp`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes := make([]*domain.Node, 0, len(args))
		for _, path := range args {
			n := Explorer().NodeByTreePath(path)
			if n == nil {
				return fmt.Errorf("no entry at tree path %q", path)
			}
			nodes = append(nodes, n)
		}

		removed := Explorer().RemoveBatch(nodes)
		fmt.Printf("Removed %d entries\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
