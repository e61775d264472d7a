package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kamahir0/custom-explorer/internal/domain"
	"github.com/kamahir0/custom-explorer/internal/explorer"
)

// RegisterWriteTools adds all mutating explorer tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, ex *explorer.Explorer) {
	s.AddTool(addGroupTool(), addGroupHandler(ex))
	s.AddTool(addFileTool(), addFileHandler(ex))
	s.AddTool(importTool(), importHandler(ex))
	s.AddTool(moveTool(), moveHandler(ex))
	s.AddTool(renameTool(), renameHandler(ex))
	s.AddTool(removeTool(), removeHandler(ex))
}

// parentAt resolves an optional tree path into the parent group for an
// insert. An empty path means the forest root.
func parentAt(ex *explorer.Explorer, path string) (*domain.Node, error) {
	if path == "" {
		return nil, nil
	}
	n := ex.NodeByTreePath(path)
	if n == nil {
		return nil, fmt.Errorf("no entry at tree path %q", path)
	}
	if !n.IsGroup() {
		return nil, fmt.Errorf("%q is a file, not a group", path)
	}
	return n, nil
}

// --- add_group ---

func addGroupTool() mcp.Tool {
	return mcp.NewTool("add_group",
		mcp.WithDescription("Create a new group in the explorer."),
		mcp.WithString("label",
			mcp.Description("Label for the new group"),
			mcp.Required(),
		),
		mcp.WithString("parent",
			mcp.Description("Tree path of the parent group. Omit to create at the root."),
		),
	)
}

func addGroupHandler(ex *explorer.Explorer) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		label := req.GetString("label", "")
		parent, err := parentAt(ex, req.GetString("parent", ""))
		if err != nil {
			return toolError(err)
		}

		group, err := ex.AddGroup(label, parent)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Created group %q at %s", group.Label, group.TreePath)), nil
	}
}

// --- add_file ---

func addFileTool() mcp.Tool {
	return mcp.NewTool("add_file",
		mcp.WithDescription("Add a file entry to the explorer by filesystem path."),
		mcp.WithString("file_path",
			mcp.Description("Filesystem path of the file"),
			mcp.Required(),
		),
		mcp.WithString("parent",
			mcp.Description("Tree path of the parent group. Omit to add at the root."),
		),
	)
}

func addFileHandler(ex *explorer.Explorer) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath := req.GetString("file_path", "")
		if filePath == "" {
			return toolError(fmt.Errorf("file_path is required"))
		}
		parent, err := parentAt(ex, req.GetString("parent", ""))
		if err != nil {
			return toolError(err)
		}

		node, ok := ex.AddFile(filePath, parent)
		if !ok {
			return mcp.NewToolResultText("Skipped: the path matches an excluded suffix."), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Added %q at %s", node.Label, node.TreePath)), nil
	}
}

// --- import ---

func importTool() mcp.Tool {
	return mcp.NewTool("import",
		mcp.WithDescription("Import a directory recursively as a group subtree."),
		mcp.WithString("dir",
			mcp.Description("Filesystem path of the directory to import"),
			mcp.Required(),
		),
		mcp.WithString("parent",
			mcp.Description("Tree path of the parent group. Omit to import at the root."),
		),
	)
}

func importHandler(ex *explorer.Explorer) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("dir", "")
		if dir == "" {
			return toolError(fmt.Errorf("dir is required"))
		}
		parent, err := parentAt(ex, req.GetString("parent", ""))
		if err != nil {
			return toolError(err)
		}

		group, err := ex.ImportDirectory(dir, parent)
		if err != nil {
			return toolError(err)
		}
		if group == nil {
			return mcp.NewToolResultText("Skipped: the directory matches an excluded suffix."), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Imported %d entries under %q", group.Count(), group.Label)), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move an entry to a new parent. Moving a group onto its own descendant is rejected."),
		mcp.WithString("source",
			mcp.Description("Tree path of the entry to move"),
			mcp.Required(),
		),
		mcp.WithString("target",
			mcp.Description("Tree path of the destination. A group receives the entry; any other target means the forest root. Omit for the root."),
		),
	)
}

func moveHandler(ex *explorer.Explorer) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		srcPath := req.GetString("source", "")
		src := ex.NodeByTreePath(srcPath)
		if src == nil {
			return toolError(fmt.Errorf("no entry at tree path %q", srcPath))
		}

		var target *domain.Node
		if tgtPath := req.GetString("target", ""); tgtPath != "" {
			target = ex.NodeByTreePath(tgtPath)
			if target == nil {
				return toolError(fmt.Errorf("no entry at tree path %q", tgtPath))
			}
		}

		if err := ex.ValidateMove(src, target); err != nil {
			return toolError(err)
		}
		ex.Move([]*domain.Node{src}, target)
		return mcp.NewToolResultText(fmt.Sprintf("Moved %q to %s", src.Label, src.TreePath)), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename an entry's label. The recorded filesystem path is not touched."),
		mcp.WithString("path",
			mcp.Description("Tree path of the entry to rename"),
			mcp.Required(),
		),
		mcp.WithString("label",
			mcp.Description("New label"),
			mcp.Required(),
		),
	)
}

func renameHandler(ex *explorer.Explorer) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		label := req.GetString("label", "")

		n := ex.NodeByTreePath(path)
		if n == nil {
			return toolError(fmt.Errorf("no entry at tree path %q", path))
		}
		if err := ex.Rename(n, label); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Renamed to %q", n.Label)), nil
	}
}

// --- remove ---

func removeTool() mcp.Tool {
	return mcp.NewTool("remove",
		mcp.WithDescription("Remove an entry from the explorer. Removing a group removes its whole subtree. Files on disk are never touched."),
		mcp.WithString("path",
			mcp.Description("Tree path of the entry to remove"),
			mcp.Required(),
		),
	)
}

func removeHandler(ex *explorer.Explorer) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		n := ex.NodeByTreePath(path)
		if n == nil {
			return toolError(fmt.Errorf("no entry at tree path %q", path))
		}
		label := n.Label
		if !ex.Remove(n, true) {
			return toolError(fmt.Errorf("could not remove %q", path))
		}
		return mcp.NewToolResultText(fmt.Sprintf("Removed %q", label)), nil
	}
}
