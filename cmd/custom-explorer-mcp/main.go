package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kamahir0/custom-explorer/internal/adapters/diagnostics"
	"github.com/kamahir0/custom-explorer/internal/adapters/filesystem"
	mcpadapter "github.com/kamahir0/custom-explorer/internal/adapters/mcp"
	"github.com/kamahir0/custom-explorer/internal/adapters/sqlite"
	"github.com/kamahir0/custom-explorer/internal/config"
	"github.com/kamahir0/custom-explorer/internal/explorer"
	"github.com/kamahir0/custom-explorer/internal/logging"
)

func main() {
	workspaceFlag := flag.String("workspace", config.WorkspacePath(), "workspace the explorer state belongs to")
	flag.Parse()

	// Stdout is the MCP transport; logs must stay off it.
	logging.InitSilent()

	dbPath := config.StatePath()
	if dbPath == "" {
		dbPath = sqlite.DatabasePath(*workspaceFlag)
	}
	store, err := sqlite.Open(dbPath)
	if err != nil {
		log.Fatalf("custom-explorer-mcp: %v", err)
	}
	defer store.Close()

	reg := diagnostics.NewRegistry()
	ex := explorer.New(store, filesystem.FS{}, config.EnvSettings{}, explorer.WithDiagnostics(reg))
	if err := ex.Load(); err != nil {
		log.Fatalf("custom-explorer-mcp: %v", err)
	}
	reg.OnChange(ex.OnDiagnosticsChanged)

	mcpServer := server.NewMCPServer(
		"custom-explorer-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, ex)
	mcpadapter.RegisterWriteTools(mcpServer, ex)
	mcpadapter.RegisterDiagnosticTools(mcpServer, ex, reg)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("custom-explorer-mcp: %v", err)
	}
}
