package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamahir0/custom-explorer/internal/adapters/filesystem"
	"github.com/kamahir0/custom-explorer/internal/adapters/sqlite"
	"github.com/kamahir0/custom-explorer/internal/adapters/tui"
	"github.com/kamahir0/custom-explorer/internal/adapters/tui/views"
	"github.com/kamahir0/custom-explorer/internal/adapters/watcher"
	"github.com/kamahir0/custom-explorer/internal/config"
	"github.com/kamahir0/custom-explorer/internal/explorer"
	"github.com/kamahir0/custom-explorer/internal/logging"
)

func main() {
	workspaceFlag := flag.String("workspace", config.WorkspacePath(), "workspace the explorer state belongs to")
	watchFlag := flag.Bool("watch", false, "mirror filesystem renames and deletes into the tree")
	flag.Parse()

	// The TUI owns stdout; logs would tear the screen apart.
	logging.InitSilent()

	dbPath := config.StatePath()
	if dbPath == "" {
		dbPath = sqlite.DatabasePath(*workspaceFlag)
	}
	store, err := sqlite.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ex := explorer.New(store, filesystem.FS{}, config.EnvSettings{})
	if err := ex.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(ex)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if *watchFlag {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		w, err := watcher.New(0, func(b watcher.Batch) {
			p.Send(views.FsEventsMsg{Renames: b.Renames, Deletes: b.Deletes})
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()

		if err := w.Watch(*workspaceFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		go w.Run(ctx)
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
