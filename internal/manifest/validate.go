package manifest

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dimension-labs/cargo-dimension/internal/dependency"
)

// Document is the parsed view of a composed manifest that Validate checks.
type Document struct {
	Package string

	// Declared maps crate name to the version string in the dependency table.
	Declared map[string]string

	// Patched maps crate name to its [patch.crates-io] entry. Nil when the
	// manifest has no patch section.
	Patched map[string]map[string]any
}

// Parse decodes the manifest text with a TOML parser.
func Parse(m Manifest) (*Document, error) {
	var raw map[string]any
	if err := toml.Unmarshal([]byte(m.Text), &raw); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("manifest %s is not valid TOML at %d:%d: %w", m.Package, row, col, err)
		}
		return nil, fmt.Errorf("manifest %s is not valid TOML: %w", m.Package, err)
	}

	doc := &Document{Declared: make(map[string]string)}

	if pkg, ok := raw["package"].(map[string]any); ok {
		doc.Package, _ = pkg["name"].(string)
	}

	if table, ok := raw[m.DependencyTable].(map[string]any); ok {
		for name, v := range table {
			version, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("manifest %s: dependency %s is not a plain version string", m.Package, name)
			}
			doc.Declared[name] = version
		}
	}

	if patch, ok := raw["patch"].(map[string]any); ok {
		crates, ok := patch["crates-io"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("manifest %s: patch section without crates-io table", m.Package)
		}
		doc.Patched = make(map[string]map[string]any, len(crates))
		for name, v := range crates {
			spec, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("manifest %s: patch entry %s is not an inline table", m.Package, name)
			}
			doc.Patched[name] = spec
		}
	}

	return doc, nil
}

// Validate checks that m parses, that every declared version is the one
// registered in reg, and that a patch section, if present, redirects exactly
// the declared crates.
func Validate(m Manifest, reg *dependency.Registry) error {
	doc, err := Parse(m)
	if err != nil {
		return err
	}

	if doc.Package != m.Package {
		return fmt.Errorf("manifest %s: package name parsed as %q", m.Package, doc.Package)
	}

	registered := make(map[string]string)
	for _, d := range reg.Descriptors() {
		registered[d.Name] = d.Version
	}
	for name, version := range doc.Declared {
		want, ok := registered[name]
		if !ok {
			return fmt.Errorf("manifest %s: %s is not a registered dependency", m.Package, name)
		}
		if version != want {
			return fmt.Errorf("manifest %s: %s declared at %s, registry has %s", m.Package, name, version, want)
		}
	}

	if doc.Patched == nil {
		return nil
	}
	if missing, extra := diffKeys(doc.Declared, doc.Patched); len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("manifest %s: patch section does not match dependencies (unpatched: %s; undeclared: %s)",
			m.Package, strings.Join(missing, ", "), strings.Join(extra, ", "))
	}
	return nil
}

// diffKeys returns the declared names missing from patched and the patched
// names that were never declared, both sorted.
func diffKeys(declared map[string]string, patched map[string]map[string]any) (missing, extra []string) {
	for name := range declared {
		if _, ok := patched[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range patched {
		if _, ok := declared[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}
