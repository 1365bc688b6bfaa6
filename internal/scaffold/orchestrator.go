// Package scaffold creates a new contract workspace on disk: the contract and
// tests packages with their manifests, plus the workspace-level toolchain,
// build and CI files.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/dimension-labs/cargo-dimension/internal/dependency"
	"github.com/dimension-labs/cargo-dimension/internal/manifest"
	"github.com/dimension-labs/cargo-dimension/internal/override"
	"github.com/dimension-labs/cargo-dimension/internal/rustcheck"
	"github.com/dimension-labs/cargo-dimension/internal/templates"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Orchestrator drives one scaffold run. It holds no per-run state, so a
// single Orchestrator may serve many runs.
type Orchestrator struct {
	fs        FS
	registry  *dependency.Registry
	checker   rustcheck.Checker
	logger    *slog.Logger
	packages  []Package
	auxiliary []templates.File
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithChecker sets the Rust syntax checker applied to package sources.
func WithChecker(c rustcheck.Checker) Option {
	return func(o *Orchestrator) { o.checker = c }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// New creates an Orchestrator writing through fsys with versions from reg.
func New(fsys FS, reg *dependency.Registry, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		fs:        fsys,
		registry:  reg,
		checker:   rustcheck.Nop{},
		logger:    slog.New(slog.DiscardHandler),
		packages:  []Package{ContractPackage(), TestsPackage()},
		auxiliary: templates.Auxiliary(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Result lists what a successful run created.
type Result struct {
	Root  string
	Files []string // slash-separated, relative to Root, in write order
}

// plannedFile is one file of the run, fully rendered before any write.
type plannedFile struct {
	rel     string
	content []byte
}

// Compose renders the manifest for pkg under sel and validates it against
// the registry. It touches no files.
func (o *Orchestrator) Compose(pkg Package, sel override.Selection) (manifest.Manifest, error) {
	entries := o.registry.Select(pkg.Roles...)
	block := override.Render(sel, entries)

	m, err := manifest.Compose(pkg.Identity, dependency.Descriptors(entries), block)
	if err != nil {
		return manifest.Manifest{}, err
	}
	if err := manifest.Validate(m, o.registry); err != nil {
		return manifest.Manifest{}, err
	}
	return m, nil
}

// Manifests composes the manifest of every package, in package order.
func (o *Orchestrator) Manifests(sel override.Selection) ([]manifest.Manifest, error) {
	out := make([]manifest.Manifest, 0, len(o.packages))
	for _, pkg := range o.packages {
		m, err := o.Compose(pkg, sel)
		if err != nil {
			return nil, &Error{Kind: KindInternal, Op: "compose", Path: path.Join(pkg.Dir, ManifestName), Err: err}
		}
		out = append(out, m)
	}
	return out, nil
}

// Run scaffolds a workspace at dest. dest must not exist. Every file is
// rendered and checked before the directory is created, so content defects
// abort without touching the disk. A filesystem failure part-way through
// aborts the run and leaves already written files in place.
func (o *Orchestrator) Run(ctx context.Context, dest string, sel override.Selection) (Result, error) {
	if sel == nil {
		return Result{}, &Error{Kind: KindInternal, Op: "resolve", Err: errors.New("no override selection")}
	}

	if _, err := o.fs.Stat(dest); err == nil {
		return Result{}, &Error{Kind: KindPrecondition, Op: "check", Path: dest, Err: ErrDestinationExists}
	} else if !errors.Is(err, iofs.ErrNotExist) {
		return Result{}, &Error{Kind: KindFilesystem, Op: "check", Path: dest, Err: err}
	}

	plan, err := o.plan(sel)
	if err != nil {
		return Result{}, err
	}

	o.logger.DebugContext(ctx, "scaffolding workspace", "dest", dest, "dependencies", sel.String(), "files", len(plan))

	if err := o.fs.MkdirAll(dest, dirPerm); err != nil {
		return Result{}, &Error{Kind: KindFilesystem, Op: "create", Path: dest, Err: err}
	}

	result := Result{Root: dest}
	for _, f := range plan {
		target := filepath.Join(dest, filepath.FromSlash(f.rel))

		if dir := filepath.Dir(target); dir != dest {
			if err := o.fs.MkdirAll(dir, dirPerm); err != nil {
				return result, &Error{Kind: KindFilesystem, Op: "create", Path: dir, Err: err}
			}
		}
		if err := o.fs.WriteFile(target, f.content, filePerm); err != nil {
			return result, &Error{Kind: KindFilesystem, Op: "write", Path: target, Err: err}
		}

		o.logger.DebugContext(ctx, "created file", "path", f.rel, "bytes", len(f.content))
		result.Files = append(result.Files, f.rel)
	}

	o.logger.InfoContext(ctx, "workspace created", "dest", dest, "files", len(result.Files))
	return result, nil
}

// plan renders every file of the run: per package its manifest then its
// sources, followed by the auxiliary files.
func (o *Orchestrator) plan(sel override.Selection) ([]plannedFile, error) {
	manifests, err := o.Manifests(sel)
	if err != nil {
		return nil, err
	}

	var plan []plannedFile
	for i, pkg := range o.packages {
		plan = append(plan, plannedFile{
			rel:     path.Join(pkg.Dir, ManifestName),
			content: []byte(manifests[i].Text),
		})

		for _, src := range pkg.Sources {
			rel := path.Join(pkg.Dir, src.RelPath)
			if src.IsRust() {
				if err := o.checker.Check(rel, src.Content); err != nil {
					return nil, &Error{Kind: KindInternal, Op: "check", Path: rel, Err: err}
				}
			}
			plan = append(plan, plannedFile{rel: rel, content: src.Content})
		}
	}

	for _, aux := range o.auxiliary {
		plan = append(plan, plannedFile{rel: aux.RelPath, content: aux.Content})
	}

	if len(plan) == 0 {
		return nil, &Error{Kind: KindInternal, Op: "plan", Err: fmt.Errorf("nothing to write")}
	}
	return plan, nil
}
