package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamahir0/custom-explorer/internal/domain"
)

var moveCmd = &cobra.Command{
	Use:   "move <source-tree-path> [target-tree-path]",
	Short: "Move an entry to a new parent",
	Long: `Move an entry to a new parent group. A group target receives the entry;
any other target means the forest root. Without a target the entry moves
to the root. Moving a group onto its own descendant is rejected.

Examples:
  custom-explorer-cli move docs/setup.md guides
  custom-explorer-cli move guides`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := Explorer().NodeByTreePath(args[0])
		if src == nil {
			return fmt.Errorf("no entry at tree path %q", args[0])
		}

		var target *domain.Node
		if len(args) == 2 {
			target = Explorer().NodeByTreePath(args[1])
			if target == nil {
				return fmt.Errorf("no entry at tree path %q", args[1])
			}
		}

		if err := Explorer().ValidateMove(src, target); err != nil {
			return err
		}
		Explorer().Move([]*domain.Node{src}, target)
		fmt.Printf("Moved %q to %s\n", src.Label, src.TreePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
