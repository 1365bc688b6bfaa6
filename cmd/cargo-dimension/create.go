package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dimension-labs/cargo-dimension/internal/dependency"
	"github.com/dimension-labs/cargo-dimension/internal/rustcheck"
	"github.com/dimension-labs/cargo-dimension/internal/scaffold"
)

// createWorkspace scaffolds opts.Path and prints each created file followed
// by the next steps.
func createWorkspace(ctx context.Context, w io.Writer, opts options, reg *dependency.Registry, logger *slog.Logger) error {
	orch := scaffold.New(scaffold.OSFS{}, reg,
		scaffold.WithChecker(rustcheck.New()),
		scaffold.WithLogger(logger),
	)

	result, err := orch.Run(ctx, opts.Path, opts.Selection)
	for _, rel := range result.Files {
		fmt.Fprintf(w, "  created ./%s\n", rel)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nCreated contract workspace at %s using crates from %s.\n\n", result.Root, opts.Selection)
	fmt.Fprintf(w, "    cd %s\n    make prepare\n    make test\n", result.Root)
	return nil
}
