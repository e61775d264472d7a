package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamahir0/custom-explorer/internal/adapters/filesystem"
	"github.com/kamahir0/custom-explorer/internal/adapters/sqlite"
	"github.com/kamahir0/custom-explorer/internal/config"
	"github.com/kamahir0/custom-explorer/internal/explorer"
	"github.com/kamahir0/custom-explorer/internal/logging"
)

var (
	workspacePath string
	store         *sqlite.Store
	ex            *explorer.Explorer
)

var rootCmd = &cobra.Command{
	Use:   "custom-explorer-cli",
	Short: "CLI for managing custom explorer trees",
	Long: `custom-explorer-cli manages the user-defined file tree of a workspace
from the command line.

Entries are addressed by their tree path: the slash-joined labels from a
root group down to the entry (e.g. docs/guides/setup.md).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if err := logging.Init(logging.Config{Level: config.LogLevel(), Format: "console"}); err != nil {
			return err
		}

		dbPath := config.StatePath()
		if dbPath == "" {
			dbPath = sqlite.DatabasePath(workspacePath)
		}
		var err error
		store, err = sqlite.Open(dbPath)
		if err != nil {
			return err
		}

		ex = explorer.New(store, filesystem.FS{}, config.EnvSettings{})
		return ex.Load()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspacePath, "workspace", "w", config.WorkspacePath(), "workspace the explorer state belongs to")
}

// Explorer returns the initialized explorer
func Explorer() *explorer.Explorer {
	return ex
}
