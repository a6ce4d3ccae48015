package cleaner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/portalis-dev/descaff/internal/fsops"
	"github.com/portalis-dev/descaff/internal/naming"
	"github.com/portalis-dev/descaff/internal/plan"
	"github.com/portalis-dev/descaff/internal/rewrite"
)

// Finding is one piece of leftover scaffolding Verify located.
type Finding struct {
	Path   string
	Detail string
}

// VerifyResult is the outcome of a read-only remnant scan.
type VerifyResult struct {
	Clean    bool
	Findings []Finding
}

// Verify scans a validated package for anything the plan would still
// change: removal targets that exist, the placeholder directory, textual
// references to the placeholder identifier under src/, and patch patterns
// that still match. It performs no mutation.
func Verify(pkg *Package, p *plan.Plan) (*VerifyResult, error) {
	result := &VerifyResult{}

	for _, target := range p.Removals {
		path, err := fsops.Resolve(pkg.Root, target.Path)
		if err != nil {
			return nil, err
		}
		if fsops.Exists(path) {
			result.Findings = append(result.Findings, Finding{
				Path:   target.Path,
				Detail: "scaffolding target still present (" + target.Reason + ")",
			})
		}
	}

	if p.Rename != nil {
		dir, err := fsops.Resolve(pkg.Root, p.Rename.Dir)
		if err != nil {
			return nil, err
		}
		if fsops.IsDir(dir) {
			result.Findings = append(result.Findings, Finding{
				Path:   p.Rename.Dir,
				Detail: "placeholder directory not yet renamed to " + naming.Component(pkg.PluginID, p.Rename.Suffix),
			})
		}

		if err := scanIdentifier(pkg.Root, p.Rename.Placeholder, result); err != nil {
			return nil, err
		}
	}

	for i := range p.Patches {
		rule := &p.Patches[i]
		path, err := fsops.Resolve(pkg.Root, rule.File)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue // absent wiring file means nothing left to patch
		}
		if _, changed := rewrite.Apply(string(data), rule.Regexp(), rule.Replacement); changed {
			result.Findings = append(result.Findings, Finding{
				Path:   rule.File,
				Detail: "patch still applies (" + rule.Note + ")",
			})
		}
	}

	result.Clean = len(result.Findings) == 0
	return result, nil
}

// scanIdentifier walks src/ looking for whole-identifier references to the
// placeholder name.
func scanIdentifier(root, placeholder string, result *VerifyResult) error {
	srcDir := filepath.Join(root, "src")
	if !fsops.IsDir(srcDir) {
		return nil
	}

	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(placeholder) + `\b`)
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if n := len(re.FindAllIndex(data, -1)); n > 0 {
			rel, _ := filepath.Rel(root, path)
			result.Findings = append(result.Findings, Finding{
				Path:   rel,
				Detail: fmt.Sprintf("%d reference(s) to %s remain", n, placeholder),
			})
		}
		return nil
	})
}
