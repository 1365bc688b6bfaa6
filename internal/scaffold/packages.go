package scaffold

import (
	"github.com/dimension-labs/cargo-dimension/internal/dependency"
	"github.com/dimension-labs/cargo-dimension/internal/manifest"
	"github.com/dimension-labs/cargo-dimension/internal/templates"
)

// ManifestName is the file name of every generated package manifest.
const ManifestName = "Cargo.toml"

// Package describes one generated Cargo package.
type Package struct {
	Dir      string // relative to the destination
	Identity manifest.Identity
	Roles    []dependency.Role
	Sources  []templates.File // relative to Dir
}

// ContractPackage is the Wasm contract package.
func ContractPackage() Package {
	return Package{
		Dir: "contract",
		Identity: manifest.Identity{
			Name:            "contract",
			Version:         "0.1.0",
			Edition:         "2021",
			DependencyTable: manifest.TableDependencies,
			Appendix: `[[bin]]
name = "contract"
path = "src/main.rs"
bench = false
doctest = false
test = false

[profile.release]
codegen-units = 1
lto = true
`,
		},
		Roles: []dependency.Role{
			dependency.RoleContract,
			dependency.RoleExecutionEngine,
			dependency.RoleTypes,
		},
		Sources: templates.ContractSources(),
	}
}

// TestsPackage is the integration-test package exercising the contract.
func TestsPackage() Package {
	return Package{
		Dir: "tests",
		Identity: manifest.Identity{
			Name:            "tests",
			Version:         "0.1.0",
			Edition:         "2021",
			DependencyTable: manifest.TableDevDependencies,
			Appendix: `[[bin]]
name = "integration-tests"
path = "src/integration_tests.rs"
bench = false
doctest = false
`,
		},
		Roles: []dependency.Role{
			dependency.RoleContract,
			dependency.RoleEngineTestSupport,
			dependency.RoleExecutionEngine,
			dependency.RoleTypes,
		},
		Sources: templates.TestsSources(),
	}
}
