// Package override decides where the shared crates are sourced from and
// renders the matching [patch.crates-io] section.
package override

import (
	"errors"
	"fmt"
)

var (
	// ErrConflictingOverrides means a workspace path was given together with
	// git source fields.
	ErrConflictingOverrides = errors.New("--workspace-path cannot be combined with --git-url or --git-branch")

	// ErrIncompleteGitOverride means only one of the git url and branch was
	// given.
	ErrIncompleteGitOverride = errors.New("--git-url and --git-branch must be given together")
)

// Selection is the active dependency sourcing mode. It is one of None,
// LocalPath or RemoteBranch; the unexported marker keeps the set closed.
type Selection interface {
	isSelection()
	String() string
}

// None keeps every crate on its published crates.io version.
type None struct{}

// LocalPath redirects every crate into a local checkout of the node
// workspace rooted at Root.
type LocalPath struct {
	Root string
}

// RemoteBranch redirects every crate to Branch of the git repository at URL.
type RemoteBranch struct {
	URL    string
	Branch string
}

func (None) isSelection()         {}
func (LocalPath) isSelection()    {}
func (RemoteBranch) isSelection() {}

func (None) String() string { return "crates.io" }

func (s LocalPath) String() string { return "path " + s.Root }

func (s RemoteBranch) String() string { return fmt.Sprintf("git %s (branch %s)", s.URL, s.Branch) }

// Resolve builds the Selection for the three optional inputs. Empty strings
// mean "not given". Combinations other than local-only, git-only or nothing
// are rejected rather than resolved in favour of either side.
func Resolve(localPath, url, branch string) (Selection, error) {
	hasLocal := localPath != ""
	hasURL := url != ""
	hasBranch := branch != ""

	switch {
	case hasLocal && (hasURL || hasBranch):
		return nil, ErrConflictingOverrides
	case hasURL != hasBranch:
		return nil, ErrIncompleteGitOverride
	case hasLocal:
		return LocalPath{Root: localPath}, nil
	case hasURL:
		return RemoteBranch{URL: url, Branch: branch}, nil
	default:
		return None{}, nil
	}
}
