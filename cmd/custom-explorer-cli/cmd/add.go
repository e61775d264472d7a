package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamahir0/custom-explorer/internal/domain"
)

// parentArg resolves an optional parent tree path. Empty means the root.
func parentArg(path string) (*domain.Node, error) {
	if path == "" {
		return nil, nil
	}
	n := Explorer().NodeByTreePath(path)
	if n == nil {
		return nil, fmt.Errorf("no entry at tree path %q", path)
	}
	if !n.IsGroup() {
		return nil, fmt.Errorf("%q is a file, not a group", path)
	}
	return n, nil
}

var addParent string

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a group or file to the tree",
}

var addGroupCmd = &cobra.Command{
	Use:   "group <label>",
	Short: "Create a new group",
	Long: `Create a new group in the tree.

Examples:
  custom-explorer-cli add group "Documents"
  custom-explorer-cli add group "Guides" --parent docs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent, err := parentArg(addParent)
		if err != nil {
			return err
		}
		group, err := Explorer().AddGroup(args[0], parent)
		if err != nil {
			return err
		}
		fmt.Printf("Created group %q at %s\n", group.Label, group.TreePath)
		return nil
	},
}

var addFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Add a file entry by filesystem path",
	Long: `Add a file entry to the tree by its filesystem path. The label is the
file's base name. Paths matching an excluded suffix are skipped.

Examples:
  custom-explorer-cli add file ./README.md
  custom-explorer-cli add file /tmp/notes.txt --parent docs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent, err := parentArg(addParent)
		if err != nil {
			return err
		}
		node, ok := Explorer().AddFile(args[0], parent)
		if !ok {
			fmt.Println("Skipped: the path matches an excluded suffix.")
			return nil
		}
		fmt.Printf("Added %q at %s\n", node.Label, node.TreePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.AddCommand(addGroupCmd)
	addCmd.AddCommand(addFileCmd)
	addCmd.PersistentFlags().StringVarP(&addParent, "parent", "p", "", "tree path of the parent group")
}
