// Package dependency holds the shared crates every generated package depends
// on. The Registry is the single source of truth for their names and
// versions: manifests never carry a version string that did not come from it.
package dependency

import (
	"fmt"
	"regexp"
	"sort"
)

// Role identifies a shared crate by what it does rather than by its name, so
// callers never hard-code registry indices or crate names.
type Role string

const (
	RoleContract          Role = "contract"
	RoleEngineTestSupport Role = "engine-test-support"
	RoleExecutionEngine   Role = "execution-engine"
	RoleTypes             Role = "types"
)

// Descriptor is an immutable name/version pair for one shared crate.
type Descriptor struct {
	Name    string
	Version string
}

// Entry is one registry row.
type Entry struct {
	Role       Role
	Descriptor Descriptor

	// WorkspaceSubPath is where the crate lives inside a checkout of the
	// upstream node workspace, slash-separated.
	WorkspaceSubPath string
}

// semverPattern accepts MAJOR.MINOR.PATCH with optional pre-release and
// build metadata.
var semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)

// ValidVersion reports whether v is a semantic-version-shaped string.
func ValidVersion(v string) bool {
	return semverPattern.MatchString(v)
}

// Registry is an ordered, duplicate-free set of shared crates.
type Registry struct {
	entries []Entry
}

// Default returns the registry of crates published for the current platform
// release.
func Default() *Registry {
	return &Registry{entries: []Entry{
		{
			Role:             RoleContract,
			Descriptor:       Descriptor{Name: "dimension-contract", Version: "1.4.3"},
			WorkspaceSubPath: "smart_contracts/contract",
		},
		{
			Role:             RoleEngineTestSupport,
			Descriptor:       Descriptor{Name: "dimension-engine-test-support", Version: "2.0.3"},
			WorkspaceSubPath: "execution_engine_testing/test_support",
		},
		{
			Role:             RoleExecutionEngine,
			Descriptor:       Descriptor{Name: "dimension-execution-engine", Version: "1.4.4"},
			WorkspaceSubPath: "execution_engine",
		},
		{
			Role:             RoleTypes,
			Descriptor:       Descriptor{Name: "dimension-types", Version: "1.4.6"},
			WorkspaceSubPath: "types",
		},
	}}
}

// New builds a registry from entries, keeping their order. It rejects empty
// or duplicate names and roles, malformed versions and empty sub-paths.
func New(entries ...Entry) (*Registry, error) {
	names := make(map[string]bool, len(entries))
	roles := make(map[Role]bool, len(entries))
	for i, e := range entries {
		switch {
		case e.Role == "":
			return nil, fmt.Errorf("entry %d: empty role", i)
		case e.Descriptor.Name == "":
			return nil, fmt.Errorf("entry %d (%s): empty crate name", i, e.Role)
		case !ValidVersion(e.Descriptor.Version):
			return nil, fmt.Errorf("entry %d (%s): invalid version %q", i, e.Descriptor.Name, e.Descriptor.Version)
		case e.WorkspaceSubPath == "":
			return nil, fmt.Errorf("entry %d (%s): empty workspace sub-path", i, e.Descriptor.Name)
		case names[e.Descriptor.Name]:
			return nil, fmt.Errorf("duplicate crate name %q", e.Descriptor.Name)
		case roles[e.Role]:
			return nil, fmt.Errorf("duplicate role %q", e.Role)
		}
		names[e.Descriptor.Name] = true
		roles[e.Role] = true
	}

	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Registry{entries: cp}, nil
}

// Entries returns a copy of all entries in registry order.
func (r *Registry) Entries() []Entry {
	cp := make([]Entry, len(r.entries))
	copy(cp, r.entries)
	return cp
}

// Descriptors returns the name/version pairs in registry order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Descriptor
	}
	return out
}

// Lookup returns the entry for role. A missing role is a programming error
// and panics.
func (r *Registry) Lookup(role Role) Entry {
	for _, e := range r.entries {
		if e.Role == role {
			return e
		}
	}
	panic(fmt.Sprintf("dependency: role %q is not registered", role))
}

// Select returns the entries for roles in registry order, regardless of the
// order roles are given in. Like Lookup it panics on an unknown role.
func (r *Registry) Select(roles ...Role) []Entry {
	want := make(map[Role]bool, len(roles))
	for _, role := range roles {
		r.Lookup(role)
		want[role] = true
	}

	var out []Entry
	for _, e := range r.entries {
		if want[e.Role] {
			out = append(out, e)
		}
	}
	return out
}

// WithVersions returns a copy of r whose versions are replaced by pins,
// keyed by crate name. Pinning a crate the registry does not know, or to a
// malformed version, is an error.
func (r *Registry) WithVersions(pins map[string]string) (*Registry, error) {
	if len(pins) == 0 {
		return r, nil
	}

	index := make(map[string]int, len(r.entries))
	for i, e := range r.entries {
		index[e.Descriptor.Name] = i
	}

	names := make([]string, 0, len(pins))
	for name := range pins {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := r.Entries()
	for _, name := range names {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("version pin for unknown crate %q", name)
		}
		version := pins[name]
		if !ValidVersion(version) {
			return nil, fmt.Errorf("version pin for %s: invalid version %q", name, version)
		}
		entries[i].Descriptor.Version = version
	}
	return &Registry{entries: entries}, nil
}

// Descriptors extracts the name/version pairs from entries, keeping order.
func Descriptors(entries []Entry) []Descriptor {
	out := make([]Descriptor, len(entries))
	for i, e := range entries {
		out[i] = e.Descriptor
	}
	return out
}
