// Package templates embeds the static files written into every scaffolded
// workspace: package sources, the toolchain pin, the Makefile and the CI
// config. None of them depend on the dependency registry or the override
// selection.
package templates

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed files/*
var filesFS embed.FS

// File is one static file to write, relative to its parent directory.
type File struct {
	RelPath string
	Content []byte
}

// IsRust reports whether f holds Rust source.
func (f File) IsRust() bool {
	return strings.HasSuffix(f.RelPath, ".rs")
}

// ContractSources are the files of the contract package besides its manifest.
func ContractSources() []File {
	return []File{
		{RelPath: "src/main.rs", Content: mustRead("contract_main.rs")},
		{RelPath: ".cargo/config.toml", Content: mustRead("cargo_config.toml")},
	}
}

// TestsSources are the files of the tests package besides its manifest.
func TestsSources() []File {
	return []File{
		{RelPath: "src/integration_tests.rs", Content: mustRead("integration_tests.rs")},
	}
}

// Auxiliary are the workspace-level files: toolchain pin, Makefile and CI
// config.
func Auxiliary() []File {
	return []File{
		{RelPath: "rust-toolchain", Content: mustRead("rust-toolchain")},
		{RelPath: "Makefile", Content: mustRead("Makefile")},
		{RelPath: ".travis.yml", Content: mustRead("travis.yml")},
	}
}

func mustRead(name string) []byte {
	data, err := filesFS.ReadFile("files/" + name)
	if err != nil {
		panic(fmt.Sprintf("templates: embedded file %s missing: %v", name, err))
	}
	return data
}
