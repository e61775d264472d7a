package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamahir0/custom-explorer/internal/domain"
)

// foldTarget resolves an optional subtree argument for expand/collapse.
// No argument means the whole forest.
func foldTarget(args []string) (*domain.Node, error) {
	if len(args) == 0 {
		return nil, nil
	}
	n := Explorer().NodeByTreePath(args[0])
	if n == nil {
		return nil, fmt.Errorf("no entry at tree path %q", args[0])
	}
	return n, nil
}

var expandCmd = &cobra.Command{
	Use:   "expand [tree-path]",
	Short: "Expand all groups, or one subtree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := foldTarget(args)
		if err != nil {
			return err
		}
		Explorer().ExpandRecursive(n)
		return nil
	},
}

var collapseCmd = &cobra.Command{
	Use:   "collapse [tree-path]",
	Short: "Collapse all groups, or one subtree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := foldTarget(args)
		if err != nil {
			return err
		}
		Explorer().CollapseRecursive(n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(collapseCmd)
}
