package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kamahir0/custom-explorer/internal/adapters/diagnostics"
	"github.com/kamahir0/custom-explorer/internal/domain"
	"github.com/kamahir0/custom-explorer/internal/explorer"
)

// RegisterDiagnosticTools adds problem-reporting tools backed by the
// registry the server's explorer reads decorations from.
func RegisterDiagnosticTools(s *server.MCPServer, ex *explorer.Explorer, reg *diagnostics.Registry) {
	s.AddTool(setDiagnosticTool(), setDiagnosticHandler(ex, reg))
	s.AddTool(clearDiagnosticsTool(), clearDiagnosticsHandler(reg))
}

// --- set_diagnostic ---

func setDiagnosticTool() mcp.Tool {
	return mcp.NewTool("set_diagnostic",
		mcp.WithDescription("Record a diagnostic severity for a file entry. Severity none clears it. Groups containing the file decorate with their worst descendant severity."),
		mcp.WithString("path",
			mcp.Description("Tree path of the file entry"),
			mcp.Required(),
		),
		mcp.WithString("severity",
			mcp.Description("One of: none, warning, error"),
			mcp.Required(),
		),
	)
}

func setDiagnosticHandler(ex *explorer.Explorer, reg *diagnostics.Registry) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		n := ex.NodeByTreePath(path)
		if n == nil {
			return toolError(fmt.Errorf("no entry at tree path %q", path))
		}
		if n.IsGroup() {
			return toolError(fmt.Errorf("%q is a group; diagnostics attach to files", path))
		}

		sev := domain.ParseSeverity(req.GetString("severity", ""))
		reg.Set(n.FilePath, sev)
		return mcp.NewToolResultText(fmt.Sprintf("Set %q to %s", path, sev)), nil
	}
}

// --- clear_diagnostics ---

func clearDiagnosticsTool() mcp.Tool {
	return mcp.NewTool("clear_diagnostics",
		mcp.WithDescription("Clear every recorded diagnostic."),
	)
}

func clearDiagnosticsHandler(reg *diagnostics.Registry) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reg.Clear()
		return mcp.NewToolResultText("Cleared all diagnostics."), nil
	}
}
