package cleaner

import (
	"fmt"
	"os"

	"github.com/portalis-dev/descaff/internal/manifest"
	"github.com/portalis-dev/descaff/internal/naming"
)

// Package is a validated plugin package. It is established once at run
// start and read-only afterward; the pipeline mutates the subtree under
// Root, never this record or the manifest file itself.
type Package struct {
	Root     string
	Manifest *manifest.Manifest
	PluginID string
	Role     string

	// Warnings are non-fatal validation findings, surfaced in the report.
	Warnings []string
}

// Validate confirms path points at a well-formed plugin package and
// extracts its identifier. Fails with a *ValidationError before any side
// effect; no later step re-checks manifest integrity.
func Validate(path string) (*Package, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, &ValidationError{Kind: MissingDirectory, Path: path}
	}

	manifestPath := manifest.Path(path)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, &ValidationError{Kind: MissingManifest, Path: path, Hint: "expected " + manifest.FileName}
	}
	if !manifest.Valid(data) {
		return nil, &ValidationError{Kind: MissingManifest, Path: path, Hint: manifest.FileName + " is not valid JSON"}
	}

	id := manifest.PluginID(data)
	if id == "" {
		return nil, &ValidationError{
			Kind: MissingIdentifier,
			Path: path,
			Hint: "set the portalis.pluginId field to the plugin's identifier",
		}
	}

	m, err := manifest.Parse(data)
	if err != nil {
		return nil, &ValidationError{Kind: MissingManifest, Path: path, Hint: err.Error()}
	}

	pkg := &Package{
		Root:     path,
		Manifest: m,
		PluginID: id,
		Role:     manifest.Role(data),
	}

	if !naming.Conventional(id) {
		pkg.Warnings = append(pkg.Warnings,
			fmt.Sprintf("plugin id %q does not follow the kebab-case convention", id))
	}

	// Structural drift from the generator's schema is informational only;
	// the pipeline gates on the plugin id alone.
	if result, err := manifest.Validate(data); err == nil && !result.Valid {
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			pkg.Warnings = append(pkg.Warnings, "manifest: "+msg)
		}
	}

	return pkg, nil
}
