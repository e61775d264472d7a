package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importParent string

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import a directory as a group subtree",
	Long: `Import a directory recursively. Subdirectories become nested groups and
files become file entries. Entries matching an excluded suffix are skipped.

Examples:
  custom-explorer-cli import ./docs
  custom-explorer-cli import /srv/assets --parent media`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent, err := parentArg(importParent)
		if err != nil {
			return err
		}
		group, err := Explorer().ImportDirectory(args[0], parent)
		if err != nil {
			return err
		}
		if group == nil {
			fmt.Println("Skipped: the directory matches an excluded suffix.")
			return nil
		}
		fmt.Printf("Imported %d entries under %q\n", group.Count(), group.Label)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importParent, "parent", "p", "", "tree path of the parent group")
}
