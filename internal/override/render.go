package override

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dimension-labs/cargo-dimension/internal/dependency"
)

// PatchHeader opens the override section in a Cargo manifest.
const PatchHeader = "[patch.crates-io]"

// Render returns the patch section redirecting entries according to sel, or
// "" for None. Entries are emitted in the order given; callers pass them in
// registry order. The result ends with a newline.
func Render(sel Selection, entries []dependency.Entry) string {
	var source func(dependency.Entry) string

	switch s := sel.(type) {
	case None:
		return ""
	case LocalPath:
		root := strings.TrimRight(filepath.ToSlash(s.Root), "/")
		source = func(e dependency.Entry) string {
			return fmt.Sprintf("{ path = %s }", Quote(root+"/"+e.WorkspaceSubPath))
		}
	case RemoteBranch:
		source = func(dependency.Entry) string {
			return fmt.Sprintf("{ git = %s, branch = %s }", Quote(s.URL), Quote(s.Branch))
		}
	default:
		panic(fmt.Sprintf("override: unhandled selection %T", sel))
	}

	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(PatchHeader)
	sb.WriteByte('\n')
	for _, e := range entries {
		sb.WriteString(e.Descriptor.Name)
		sb.WriteString(" = ")
		sb.WriteString(source(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Quote renders s as a TOML basic string.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04X`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
