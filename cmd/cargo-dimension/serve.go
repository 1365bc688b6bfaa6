package main

import (
	"context"
	"log/slog"

	"github.com/dimension-labs/cargo-dimension/internal/dependency"
	"github.com/dimension-labs/cargo-dimension/internal/mcptools"
	"github.com/dimension-labs/cargo-dimension/internal/rustcheck"
	"github.com/dimension-labs/cargo-dimension/internal/scaffold"
)

// serveMCP runs the MCP server on stdio until the client disconnects.
func serveMCP(ctx context.Context, reg *dependency.Registry, logger *slog.Logger) error {
	orch := scaffold.New(scaffold.OSFS{}, reg,
		scaffold.WithChecker(rustcheck.New()),
		scaffold.WithLogger(logger),
	)
	server := mcptools.NewServer(mcptools.NewScaffoldService(orch, reg), version)

	logger.InfoContext(ctx, "serving MCP on stdio", "version", version)
	return mcptools.RunStdio(ctx, server)
}
