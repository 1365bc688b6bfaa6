// Package manifest renders Cargo.toml text for the generated packages.
package manifest

import (
	"fmt"
	"strings"

	"github.com/dimension-labs/cargo-dimension/internal/dependency"
	"github.com/dimension-labs/cargo-dimension/internal/override"
)

// Dependency tables a manifest may declare its shared crates in.
const (
	TableDependencies    = "dependencies"
	TableDevDependencies = "dev-dependencies"
)

// Identity is the package-level part of a manifest.
type Identity struct {
	Name    string
	Version string
	Edition string

	// DependencyTable is TableDependencies or TableDevDependencies.
	DependencyTable string

	// Appendix is fixed TOML emitted after the dependency table, e.g. bin
	// targets and profiles. It must be a sequence of complete tables.
	Appendix string
}

// Manifest is the rendered text of one Cargo.toml.
type Manifest struct {
	Package         string
	DependencyTable string
	Text            string
}

// Compose renders the manifest for id declaring deps, followed by
// overrideBlock when it is non-empty. deps must come from the registry so the
// version strings are never copied by hand. Compose is pure: identical input
// yields byte-identical text.
func Compose(id Identity, deps []dependency.Descriptor, overrideBlock string) (Manifest, error) {
	if id.Name == "" {
		return Manifest{}, fmt.Errorf("compose manifest: empty package name")
	}
	if id.Version == "" {
		return Manifest{}, fmt.Errorf("compose manifest %s: empty package version", id.Name)
	}
	if id.DependencyTable != TableDependencies && id.DependencyTable != TableDevDependencies {
		return Manifest{}, fmt.Errorf("compose manifest %s: unknown dependency table %q", id.Name, id.DependencyTable)
	}

	seen := make(map[string]bool, len(deps))
	for _, d := range deps {
		if d.Name == "" || d.Version == "" {
			return Manifest{}, fmt.Errorf("compose manifest %s: incomplete dependency %+v", id.Name, d)
		}
		if seen[d.Name] {
			return Manifest{}, fmt.Errorf("compose manifest %s: dependency %s declared twice", id.Name, d.Name)
		}
		seen[d.Name] = true
	}

	var sb strings.Builder
	sb.WriteString("[package]\n")
	fmt.Fprintf(&sb, "name = %s\n", override.Quote(id.Name))
	fmt.Fprintf(&sb, "version = %s\n", override.Quote(id.Version))
	if id.Edition != "" {
		fmt.Fprintf(&sb, "edition = %s\n", override.Quote(id.Edition))
	}

	fmt.Fprintf(&sb, "\n[%s]\n", id.DependencyTable)
	for _, d := range deps {
		fmt.Fprintf(&sb, "%s = %s\n", d.Name, override.Quote(d.Version))
	}

	if appendix := strings.Trim(id.Appendix, "\n"); appendix != "" {
		sb.WriteString("\n")
		sb.WriteString(appendix)
		sb.WriteString("\n")
	}

	if overrideBlock != "" {
		sb.WriteString("\n")
		sb.WriteString(overrideBlock)
		if !strings.HasSuffix(overrideBlock, "\n") {
			sb.WriteString("\n")
		}
	}

	return Manifest{
		Package:         id.Name,
		DependencyTable: id.DependencyTable,
		Text:            sb.String(),
	}, nil
}
