// Package plan defines the declarative cleanup tables for each pipeline
// variant. A plan lists what the upstream generator left behind: subtrees
// to remove, the placeholder unit to rename, pattern patches for wiring
// files, and the guidance printed after a successful run. Plans are
// embedded YAML so adding a variant never touches the executor.
package plan

import (
	"embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed plans/*.yaml
var planFS embed.FS

// RemovalTarget names one path (file or directory, relative to the package
// root) that is known scaffolding junk for the variant.
type RemovalTarget struct {
	Path   string `yaml:"path"`
	Reason string `yaml:"reason"`
}

// RenameSpec describes the placeholder unit the rename step moves and
// rewrites. StripUnits are sibling units whose removal was requested
// elsewhere in the plan; their imports and element usages are stripped
// from the moved files. Wiring lists the files outside the unit that
// reference it by path or symbol.
type RenameSpec struct {
	Dir         string   `yaml:"dir"`
	Placeholder string   `yaml:"placeholder"`
	Suffix      string   `yaml:"suffix"`
	StripUnits  []string `yaml:"strip_units"`
	Wiring      []string `yaml:"wiring"`
}

// PatchRule is one pattern substitution against one wiring file. A rule
// whose file is absent or whose pattern no longer matches is a no-op.
type PatchRule struct {
	File        string `yaml:"file"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Note        string `yaml:"note"`

	re *regexp.Regexp
}

// Regexp returns the rule's compiled pattern.
func (r *PatchRule) Regexp() *regexp.Regexp { return r.re }

// Plan is the full cleanup table for one variant.
type Plan struct {
	Name     string          `yaml:"name"`
	Role     string          `yaml:"role"`
	Removals []RemovalTarget `yaml:"removals"`
	Rename   *RenameSpec     `yaml:"rename"`
	Patches  []PatchRule     `yaml:"patches"`
	Guidance []string        `yaml:"guidance"`
}

// Load reads and compiles the embedded plan for the named variant.
// Patterns are compiled here so a malformed rule fails at load time,
// never partway through a run.
func Load(name string) (*Plan, error) {
	data, err := planFS.ReadFile("plans/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown plan %q (available: %s)", name, strings.Join(Names(), ", "))
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan %q: %w", name, err)
	}

	for i := range p.Patches {
		re, err := regexp.Compile(p.Patches[i].Pattern)
		if err != nil {
			return nil, fmt.Errorf("plan %q: compiling pattern for %s: %w", name, p.Patches[i].File, err)
		}
		p.Patches[i].re = re
	}

	return &p, nil
}

// Names returns the available plan names, sorted.
func Names() []string {
	entries, err := planFS.ReadDir("plans")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// ForRole returns the plan whose role discriminator matches the manifest's
// portalis.role value.
func ForRole(role string) (*Plan, error) {
	for _, name := range Names() {
		p, err := Load(name)
		if err != nil {
			return nil, err
		}
		if p.Role == role {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no cleanup plan for role %q", role)
}
