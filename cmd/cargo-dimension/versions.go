package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dimension-labs/cargo-dimension/internal/cratesindex"
	"github.com/dimension-labs/cargo-dimension/internal/dependency"
)

// checkVersions compares every registered version with the latest one on the
// index at indexURL. It fails with a *cratesindex.DriftError when any is
// behind.
func checkVersions(ctx context.Context, w io.Writer, reg *dependency.Registry, indexURL string, logger *slog.Logger) error {
	client := cratesindex.NewClient(indexURL, nil)

	logger.DebugContext(ctx, "checking crate versions", "index", indexURL, "crates", len(reg.Entries()))
	results, err := client.CheckAll(ctx, reg.Descriptors())
	if err != nil {
		return fmt.Errorf("checking versions against %s: %w", indexURL, err)
	}

	fmt.Fprintf(w, "%-32s %-12s %-12s %s\n", "CRATE", "REGISTERED", "LATEST", "STATUS")
	for _, d := range results {
		status := "ok"
		if !d.Current() {
			status = "outdated"
		}
		logger.DebugContext(ctx, "fetched crate", "name", d.Name, "registered", d.Registered, "latest", d.Latest)
		fmt.Fprintf(w, "%-32s %-12s %-12s %s\n", d.Name, d.Registered, d.Latest, status)
	}

	return cratesindex.Stale(results)
}
