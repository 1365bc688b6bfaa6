package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_RegistryShape(t *testing.T) {
	reg := Default()

	entries := reg.Entries()
	require.Len(t, entries, 4)

	names := make(map[string]bool)
	for _, e := range entries {
		assert.NotEmpty(t, e.Descriptor.Name)
		assert.True(t, ValidVersion(e.Descriptor.Version), "version %q for %s", e.Descriptor.Version, e.Descriptor.Name)
		assert.NotEmpty(t, e.WorkspaceSubPath)
		assert.False(t, names[e.Descriptor.Name], "duplicate name %s", e.Descriptor.Name)
		names[e.Descriptor.Name] = true
	}

	// Default must pass its own validation.
	_, err := New(entries...)
	require.NoError(t, err)
}

func TestLookup_EachRole(t *testing.T) {
	reg := Default()

	tests := []struct {
		role Role
		name string
		sub  string
	}{
		{RoleContract, "dimension-contract", "smart_contracts/contract"},
		{RoleEngineTestSupport, "dimension-engine-test-support", "execution_engine_testing/test_support"},
		{RoleExecutionEngine, "dimension-execution-engine", "execution_engine"},
		{RoleTypes, "dimension-types", "types"},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			e := reg.Lookup(tt.role)
			assert.Equal(t, tt.name, e.Descriptor.Name)
			assert.Equal(t, tt.sub, e.WorkspaceSubPath)
		})
	}
}

func TestLookup_UnknownRolePanics(t *testing.T) {
	reg := Default()
	assert.PanicsWithValue(t, `dependency: role "wallet" is not registered`, func() {
		reg.Lookup(Role("wallet"))
	})
}

func TestSelect_KeepsRegistryOrder(t *testing.T) {
	reg := Default()

	got := reg.Select(RoleTypes, RoleContract, RoleExecutionEngine)
	require.Len(t, got, 3)
	assert.Equal(t, "dimension-contract", got[0].Descriptor.Name)
	assert.Equal(t, "dimension-execution-engine", got[1].Descriptor.Name)
	assert.Equal(t, "dimension-types", got[2].Descriptor.Name)

	assert.Panics(t, func() { reg.Select(RoleTypes, Role("nope")) })
}

func TestEntries_ReturnsCopy(t *testing.T) {
	reg := Default()
	entries := reg.Entries()
	entries[0].Descriptor.Version = "9.9.9"

	assert.Equal(t, "1.4.3", reg.Lookup(RoleContract).Descriptor.Version)
}

func TestNew_Rejects(t *testing.T) {
	ok := Entry{Role: RoleTypes, Descriptor: Descriptor{Name: "a", Version: "1.0.0"}, WorkspaceSubPath: "a"}

	tests := []struct {
		name    string
		entries []Entry
		wantErr string
	}{
		{"empty role", []Entry{{Descriptor: ok.Descriptor, WorkspaceSubPath: "a"}}, "empty role"},
		{"empty name", []Entry{{Role: RoleTypes, Descriptor: Descriptor{Version: "1.0.0"}, WorkspaceSubPath: "a"}}, "empty crate name"},
		{"bad version", []Entry{{Role: RoleTypes, Descriptor: Descriptor{Name: "a", Version: "latest"}, WorkspaceSubPath: "a"}}, "invalid version"},
		{"empty sub-path", []Entry{{Role: RoleTypes, Descriptor: ok.Descriptor}}, "empty workspace sub-path"},
		{"duplicate name", []Entry{ok, {Role: RoleContract, Descriptor: ok.Descriptor, WorkspaceSubPath: "b"}}, "duplicate crate name"},
		{"duplicate role", []Entry{ok, {Role: RoleTypes, Descriptor: Descriptor{Name: "b", Version: "1.0.0"}, WorkspaceSubPath: "b"}}, "duplicate role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWithVersions(t *testing.T) {
	reg := Default()

	pinned, err := reg.WithVersions(map[string]string{"dimension-types": "1.5.0-rc.1"})
	require.NoError(t, err)
	assert.Equal(t, "1.5.0-rc.1", pinned.Lookup(RoleTypes).Descriptor.Version)
	assert.Equal(t, "1.4.6", reg.Lookup(RoleTypes).Descriptor.Version, "base registry must be untouched")

	_, err = reg.WithVersions(map[string]string{"dimension-wallet": "1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown crate")

	_, err = reg.WithVersions(map[string]string{"dimension-types": "v1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid version")

	same, err := reg.WithVersions(nil)
	require.NoError(t, err)
	assert.Same(t, reg, same)
}

func TestValidVersion(t *testing.T) {
	for _, v := range []string{"0.0.1", "1.4.3", "10.20.30", "1.0.0-alpha.1", "1.0.0+build.5"} {
		assert.True(t, ValidVersion(v), v)
	}
	for _, v := range []string{"", "1", "1.2", "01.2.3", "v1.2.3", "1.2.3 "} {
		assert.False(t, ValidVersion(v), v)
	}
}
