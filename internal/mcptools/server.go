// Package mcptools exposes scaffolding as MCP tools for --serve-mcp.
package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with the scaffold, preview_manifests and
// list_dependencies tools registered.
func NewServer(svc *ScaffoldService, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cargo-dimension",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scaffold",
		Description: "Create a new contract workspace (contract and tests packages, Makefile, toolchain pin, CI config) at an absolute path that must not exist yet. Optionally patch the shared crates to a local node workspace or a git branch.",
	}, svc.Scaffold)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview_manifests",
		Description: "Render the contract and tests Cargo.toml files a scaffold would write, without touching the filesystem.",
	}, svc.PreviewManifests)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_dependencies",
		Description: "List the shared crates every generated package depends on, with their versions and node workspace locations.",
	}, svc.ListDependencies)

	return server
}

// RunStdio runs server on the stdio transport, blocking until stdin is
// closed or ctx is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
