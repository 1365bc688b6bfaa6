package mcptools

// --- MCP tool types for --serve-mcp ---

// ScaffoldInput is the input for the scaffold tool.
type ScaffoldInput struct {
	Path          string `json:"path" jsonschema:"absolute path of the new workspace; must not exist"`
	WorkspacePath string `json:"workspacePath,omitempty" jsonschema:"local node workspace to patch the shared crates to"`
	GitURL        string `json:"gitUrl,omitempty" jsonschema:"git repository to patch the shared crates to (requires gitBranch)"`
	GitBranch     string `json:"gitBranch,omitempty" jsonschema:"branch of gitUrl (requires gitUrl)"`
}

// ScaffoldOutput is the result of the scaffold tool.
type ScaffoldOutput struct {
	Root         string   `json:"root"`
	FilesWritten []string `json:"filesWritten"`
	Dependencies string   `json:"dependencies"` // where the shared crates come from
}

// PreviewManifestsInput is the input for the preview_manifests tool.
type PreviewManifestsInput struct {
	WorkspacePath string `json:"workspacePath,omitempty" jsonschema:"local node workspace to patch the shared crates to"`
	GitURL        string `json:"gitUrl,omitempty" jsonschema:"git repository to patch the shared crates to (requires gitBranch)"`
	GitBranch     string `json:"gitBranch,omitempty" jsonschema:"branch of gitUrl (requires gitUrl)"`
}

// PreviewManifestsOutput carries the manifests a scaffold would write.
type PreviewManifestsOutput struct {
	Manifests []ManifestPreview `json:"manifests"`
}

// ManifestPreview is one rendered Cargo.toml.
type ManifestPreview struct {
	Package string `json:"package"`
	Path    string `json:"path"`
	Text    string `json:"text"`
}

// ListDependenciesInput is the (empty) input for the list_dependencies tool.
type ListDependenciesInput struct{}

// ListDependenciesOutput lists the shared crates.
type ListDependenciesOutput struct {
	Dependencies []DependencyInfo `json:"dependencies"`
}

// DependencyInfo describes one registry entry.
type DependencyInfo struct {
	Role             string `json:"role"`
	Name             string `json:"name"`
	Version          string `json:"version"`
	WorkspaceSubPath string `json:"workspaceSubPath"`
}
