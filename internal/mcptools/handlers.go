package mcptools

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dimension-labs/cargo-dimension/internal/dependency"
	"github.com/dimension-labs/cargo-dimension/internal/override"
	"github.com/dimension-labs/cargo-dimension/internal/scaffold"
)

// ScaffoldService handles MCP tool calls. It wraps an Orchestrator and the
// registry it was built with.
type ScaffoldService struct {
	orch     *scaffold.Orchestrator
	registry *dependency.Registry
}

// NewScaffoldService creates a ScaffoldService.
func NewScaffoldService(orch *scaffold.Orchestrator, reg *dependency.Registry) *ScaffoldService {
	return &ScaffoldService{orch: orch, registry: reg}
}

// Scaffold creates a new workspace.
func (s *ScaffoldService) Scaffold(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScaffoldInput,
) (*mcp.CallToolResult, ScaffoldOutput, error) {
	if input.Path == "" {
		return nil, ScaffoldOutput{}, fmt.Errorf("path is required")
	}
	if !filepath.IsAbs(input.Path) {
		return nil, ScaffoldOutput{}, fmt.Errorf("path must be absolute, got %q", input.Path)
	}

	sel, err := override.Resolve(input.WorkspacePath, input.GitURL, input.GitBranch)
	if err != nil {
		return nil, ScaffoldOutput{}, err
	}

	result, err := s.orch.Run(ctx, input.Path, sel)
	if err != nil {
		return nil, ScaffoldOutput{}, err
	}

	return nil, ScaffoldOutput{
		Root:         result.Root,
		FilesWritten: result.Files,
		Dependencies: sel.String(),
	}, nil
}

// PreviewManifests renders both manifests without writing anything.
func (s *ScaffoldService) PreviewManifests(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PreviewManifestsInput,
) (*mcp.CallToolResult, PreviewManifestsOutput, error) {
	sel, err := override.Resolve(input.WorkspacePath, input.GitURL, input.GitBranch)
	if err != nil {
		return nil, PreviewManifestsOutput{}, err
	}

	manifests, err := s.orch.Manifests(sel)
	if err != nil {
		return nil, PreviewManifestsOutput{}, err
	}

	out := PreviewManifestsOutput{Manifests: make([]ManifestPreview, 0, len(manifests))}
	for _, m := range manifests {
		out.Manifests = append(out.Manifests, ManifestPreview{
			Package: m.Package,
			Path:    path.Join(m.Package, scaffold.ManifestName),
			Text:    m.Text,
		})
	}
	return nil, out, nil
}

// ListDependencies reports the shared crates in registry order.
func (s *ScaffoldService) ListDependencies(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListDependenciesInput,
) (*mcp.CallToolResult, ListDependenciesOutput, error) {
	entries := s.registry.Entries()
	out := ListDependenciesOutput{Dependencies: make([]DependencyInfo, len(entries))}
	for i, e := range entries {
		out.Dependencies[i] = DependencyInfo{
			Role:             string(e.Role),
			Name:             e.Descriptor.Name,
			Version:          e.Descriptor.Version,
			WorkspaceSubPath: e.WorkspaceSubPath,
		}
	}
	return nil, out, nil
}
