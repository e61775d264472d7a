package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kamahir0/custom-explorer/internal/domain"
	"github.com/kamahir0/custom-explorer/internal/explorer"
)

// RegisterReadTools adds all read-only explorer tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, ex *explorer.Explorer) {
	s.AddTool(treeTool(), treeHandler(ex))
	s.AddTool(resolvePathTool(), resolvePathHandler(ex))
	s.AddTool(severityTool(), severityHandler(ex))
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the explorer structure as a tree. Without arguments shows the whole forest. With a tree path shows that subtree."),
		mcp.WithString("path",
			mcp.Description("Tree path of the subtree to show (e.g. docs/guides). Omit for the whole forest."),
		),
	)
}

func treeHandler(ex *explorer.Explorer) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		var nodes []*domain.Node
		if path == "" {
			nodes = ex.Roots()
		} else {
			n := ex.NodeByTreePath(path)
			if n == nil {
				return toolError(fmt.Errorf("no entry at tree path %q", path))
			}
			nodes = []*domain.Node{n}
		}

		if len(nodes) == 0 {
			return mcp.NewToolResultText("The explorer is empty."), nil
		}

		var sb strings.Builder
		for _, n := range nodes {
			renderTree(&sb, n, "")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.Node, prefix string) {
	marker := "-"
	if node.IsGroup() {
		marker = "+"
	}
	fmt.Fprintf(sb, "%s%s %s", prefix, marker, node.Label)
	if node.FilePath != "" {
		fmt.Fprintf(sb, "  (%s)", node.FilePath)
	}
	sb.WriteByte('\n')
	for _, child := range node.Children {
		renderTree(sb, child, prefix+"  ")
	}
}

// --- resolve_path ---

func resolvePathTool() mcp.Tool {
	return mcp.NewTool("resolve_path",
		mcp.WithDescription("Get the filesystem path recorded for a tree path."),
		mcp.WithString("path",
			mcp.Description("Tree path of the entry (e.g. docs/readme.md)"),
			mcp.Required(),
		),
	)
}

func resolvePathHandler(ex *explorer.Explorer) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		n := ex.NodeByTreePath(path)
		if n == nil {
			return toolError(fmt.Errorf("no entry at tree path %q", path))
		}
		if n.FilePath == "" {
			return mcp.NewToolResultText("(no filesystem path recorded)"), nil
		}
		return mcp.NewToolResultText(n.FilePath), nil
	}
}

// --- severity ---

func severityTool() mcp.Tool {
	return mcp.NewTool("severity",
		mcp.WithDescription("Report the diagnostic severity of an entry. Groups report the worst severity among their descendants."),
		mcp.WithString("path",
			mcp.Description("Tree path of the entry"),
			mcp.Required(),
		),
	)
}

func severityHandler(ex *explorer.Explorer) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		n := ex.NodeByTreePath(path)
		if n == nil {
			return toolError(fmt.Errorf("no entry at tree path %q", path))
		}
		return mcp.NewToolResultText(ex.SeverityOf(n).String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
