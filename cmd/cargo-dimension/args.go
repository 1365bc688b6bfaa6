package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dimension-labs/cargo-dimension/internal/config"
	"github.com/dimension-labs/cargo-dimension/internal/override"
)

// subcommandName is the argument cargo injects when run as `cargo dimension`.
const subcommandName = "dimension"

// hiddenFlags select where the shared crates come from. They are for node
// developers and stay out of the usage text.
var hiddenFlags = map[string]bool{
	"workspace-path": true,
	"git-url":        true,
	"git-branch":     true,
}

// options are the parsed command line.
type options struct {
	Path      string // absolute
	Selection override.Selection

	ConfigPath    string
	LogLevel      string
	LogFormat     string
	CheckVersions bool
	ServeMCP      bool
	Version       bool
}

// usageError is an argument problem. It is reported like any other error.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error() + "\n\nUsage: cargo dimension [FLAGS] <path>"
}

func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// parseArgs parses args (without the program name). Flags may come before or
// after the path. It returns flag.ErrHelp after printing usage for -h.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	if len(args) > 0 && args[0] == subcommandName {
		args = args[1:]
	}

	var (
		opts                             options
		workspacePath, gitURL, gitBranch string
	)

	fs := flag.NewFlagSet("cargo-dimension", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&workspacePath, "workspace-path", "", "patch the shared crates to a local node workspace")
	fs.StringVar(&gitURL, "git-url", "", "patch the shared crates to a git repository")
	fs.StringVar(&gitBranch, "git-branch", "", "branch of --git-url")
	fs.StringVar(&opts.ConfigPath, "config", "", "path to config.yml (default $XDG_CONFIG_HOME/cargo-dimension/config.yml)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&opts.LogFormat, "log-format", "", "log format: text or json")
	fs.BoolVar(&opts.CheckVersions, "check-versions", false, "compare the built-in crate versions with crates.io and exit")
	fs.BoolVar(&opts.ServeMCP, "serve-mcp", false, "run as an MCP server on stdio")
	fs.BoolVar(&opts.Version, "version", false, "print version and exit")
	fs.Usage = func() { printUsage(fs) }

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if err == flag.ErrHelp {
				return options{}, err
			}
			return options{}, &usageError{err: err}
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	if err := (&config.Config{LogLevel: opts.LogLevel, LogFormat: opts.LogFormat}).Validate(); err != nil {
		return options{}, &usageError{err: err}
	}

	sel, err := override.Resolve(workspacePath, gitURL, gitBranch)
	if err != nil {
		return options{}, &usageError{err: err}
	}
	opts.Selection = sel

	standalone := opts.Version || opts.CheckVersions || opts.ServeMCP
	switch {
	case len(positional) > 1:
		return options{}, usageErrorf("unexpected argument %q", positional[1])
	case len(positional) == 0 && !standalone:
		return options{}, usageErrorf("the following required arguments were not provided: <path>")
	case len(positional) == 1 && standalone:
		return options{}, usageErrorf("<path> cannot be used with --version, --check-versions or --serve-mcp")
	case len(positional) == 1:
		abs, err := filepath.Abs(positional[0])
		if err != nil {
			return options{}, fmt.Errorf("resolving %s: %w", positional[0], err)
		}
		opts.Path = abs
	}

	return opts, nil
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprint(out, `Create a Wasm contract and tests for the Dimension platform.

Usage:
    cargo dimension [FLAGS] <path>
    cd <path>
    make prepare
    make test

Arguments:
    <path>    Path to new folder for contract and tests

Flags:
`)
	fs.VisitAll(func(f *flag.Flag) {
		if hiddenFlags[f.Name] {
			return
		}
		name, usage := flag.UnquoteUsage(f)
		if name != "" {
			name = " <" + name + ">"
		}
		fmt.Fprintf(out, "    --%s%s\n        %s\n", f.Name, name, usage)
	})
}
