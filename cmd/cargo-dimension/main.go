package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gookit/color"

	"github.com/dimension-labs/cargo-dimension/internal/config"
	"github.com/dimension-labs/cargo-dimension/internal/dependency"
	"github.com/dimension-labs/cargo-dimension/internal/logging"
)

// exitFailure is the status for every failure.
const exitFailure = 101

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", color.Red.Sprint("error"), err)
		os.Exit(exitFailure)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger := logging.New(
		firstNonEmpty(opts.LogLevel, cfg.LogLevel),
		firstNonEmpty(opts.LogFormat, cfg.LogFormat),
		stderr,
	)

	reg, err := dependency.Default().WithVersions(cfg.Versions)
	if err != nil {
		return fmt.Errorf("applying version pins: %w", err)
	}

	switch {
	case opts.ServeMCP:
		return serveMCP(ctx, reg, logger)
	case opts.CheckVersions:
		return checkVersions(ctx, stdout, reg, cfg.IndexURLOrDefault(), logger)
	default:
		return createWorkspace(ctx, stdout, opts, reg, logger)
	}
}

// loadConfig reads the --config file, or the default location when the flag
// is absent.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path, true)
	}

	home, err := os.UserHomeDir()
	if err != nil && os.Getenv("XDG_CONFIG_HOME") == "" {
		return &config.Config{}, nil
	}
	return config.Load(config.DefaultPath(os.Getenv, home), false)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
