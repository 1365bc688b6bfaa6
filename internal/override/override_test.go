package override

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimension-labs/cargo-dimension/internal/dependency"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name               string
		local, url, branch string
		want               Selection
		wantErr            error
	}{
		{name: "nothing", want: None{}},
		{name: "local only", local: "/work", want: LocalPath{Root: "/work"}},
		{name: "git only", url: "https://example.com/node.git", branch: "dev", want: RemoteBranch{URL: "https://example.com/node.git", Branch: "dev"}},
		{name: "local and url", local: "/work", url: "https://example.com/node.git", wantErr: ErrConflictingOverrides},
		{name: "local and branch", local: "/work", branch: "dev", wantErr: ErrConflictingOverrides},
		{name: "all three", local: "/work", url: "u", branch: "b", wantErr: ErrConflictingOverrides},
		{name: "url without branch", url: "u", wantErr: ErrIncompleteGitOverride},
		{name: "branch without url", branch: "b", wantErr: ErrIncompleteGitOverride},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.local, tt.url, tt.branch)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_None(t *testing.T) {
	entries := dependency.Default().Entries()
	assert.Equal(t, "", Render(None{}, entries))
}

func TestRender_LocalPath(t *testing.T) {
	entries := dependency.Default().Entries()

	got := Render(LocalPath{Root: "/work/node/"}, entries)

	want := `[patch.crates-io]
dimension-contract = { path = "/work/node/smart_contracts/contract" }
dimension-engine-test-support = { path = "/work/node/execution_engine_testing/test_support" }
dimension-execution-engine = { path = "/work/node/execution_engine" }
dimension-types = { path = "/work/node/types" }
`
	assert.Equal(t, want, got)
}

func TestRender_RemoteBranch(t *testing.T) {
	reg := dependency.Default()
	entries := reg.Select(dependency.RoleTypes, dependency.RoleContract)

	got := Render(RemoteBranch{URL: "https://github.com/dimension-labs/dimension-node", Branch: "dev"}, entries)

	want := `[patch.crates-io]
dimension-contract = { git = "https://github.com/dimension-labs/dimension-node", branch = "dev" }
dimension-types = { git = "https://github.com/dimension-labs/dimension-node", branch = "dev" }
`
	assert.Equal(t, want, got)
}

func TestRender_OneLinePerEntryUnderSingleHeader(t *testing.T) {
	entries := dependency.Default().Entries()
	for _, sel := range []Selection{LocalPath{Root: "/w"}, RemoteBranch{URL: "u", Branch: "b"}} {
		out := Render(sel, entries)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, len(entries)+1, sel.String())
		assert.Equal(t, PatchHeader, lines[0])
		assert.Equal(t, 1, strings.Count(out, "[patch"))
	}
}

func TestRender_Idempotent(t *testing.T) {
	entries := dependency.Default().Entries()
	sel := RemoteBranch{URL: "git@example.com:node.git", Branch: "feat/x"}
	assert.Equal(t, Render(sel, entries), Render(sel, entries))
}

func TestRender_EmptyEntries(t *testing.T) {
	assert.Equal(t, "", Render(LocalPath{Root: "/w"}, nil))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, Quote("plain"))
	assert.Equal(t, `"C:\\work\\node"`, Quote(`C:\work\node`))
	assert.Equal(t, `"say \"hi\""`, Quote(`say "hi"`))
	assert.Equal(t, `"a\tb\u0001"`, Quote("a\tb\x01"))
}

func TestSelectionString(t *testing.T) {
	assert.Equal(t, "crates.io", None{}.String())
	assert.Equal(t, "path /w", LocalPath{Root: "/w"}.String())
	assert.Equal(t, "git u (branch b)", RemoteBranch{URL: "u", Branch: "b"}.String())
}
