//go:build cgo

package rustcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimension-labs/cargo-dimension/internal/templates"
)

func TestTreeSitter_EmbeddedSourcesParse(t *testing.T) {
	checker := New()

	var files []templates.File
	files = append(files, templates.ContractSources()...)
	files = append(files, templates.TestsSources()...)

	for _, f := range files {
		if !f.IsRust() {
			continue
		}
		t.Run(f.RelPath, func(t *testing.T) {
			require.NoError(t, checker.Check(f.RelPath, f.Content))
		})
	}
}

func TestTreeSitter_ReportsFirstError(t *testing.T) {
	src := []byte("fn ok() {}\n\nfn broken( {\n    let x = ;\n}\n")

	err := New().Check("src/lib.rs", src)
	require.Error(t, err)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "src/lib.rs", se.Path)
	assert.GreaterOrEqual(t, se.Line, 3, "error should not be reported before the broken function")
	assert.Contains(t, err.Error(), "src/lib.rs:")
}

func TestTreeSitter_ValidSource(t *testing.T) {
	src := []byte("pub struct Point { x: i32 }\n\nimpl Point {\n    pub fn x(&self) -> i32 { self.x }\n}\n")
	assert.NoError(t, New().Check("point.rs", src))
}
