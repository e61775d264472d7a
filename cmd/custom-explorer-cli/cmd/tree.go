package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamahir0/custom-explorer/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree [tree-path]",
	Short: "Display the explorer tree",
	Long: `Display the explorer tree of the workspace.

Without arguments the whole forest is printed. With a tree path only that
subtree is printed.

Examples:
  custom-explorer-cli tree
  custom-explorer-cli tree docs/guides`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roots := Explorer().Roots()
		if len(args) == 1 {
			n := Explorer().NodeByTreePath(args[0])
			if n == nil {
				return fmt.Errorf("no entry at tree path %q", args[0])
			}
			roots = []*domain.Node{n}
		}

		if len(roots) == 0 {
			fmt.Println("(empty)")
			return nil
		}
		for _, r := range roots {
			printTree(r, 0)
		}
		return nil
	},
}

func printTree(node *domain.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	marker := "-"
	if node.IsGroup() {
		marker = "+"
	}
	if node.FilePath != "" {
		fmt.Printf("%s%s %s  (%s)\n", indent, marker, node.Label, node.FilePath)
	} else {
		fmt.Printf("%s%s %s\n", indent, marker, node.Label)
	}
	for _, child := range node.Children {
		printTree(child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
