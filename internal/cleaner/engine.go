package cleaner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/portalis-dev/descaff/internal/fsops"
	"github.com/portalis-dev/descaff/internal/logging"
	"github.com/portalis-dev/descaff/internal/naming"
	"github.com/portalis-dev/descaff/internal/plan"
	"github.com/portalis-dev/descaff/internal/report"
	"github.com/portalis-dev/descaff/internal/rewrite"
)

// Engine interprets a cleanup plan against a validated package. One engine
// handles one run; steps execute strictly in plan order with no parallelism.
type Engine struct {
	log zerolog.Logger
}

// NewEngine returns an engine ready for a single run.
func NewEngine() *Engine {
	return &Engine{log: logging.Component("cleaner")}
}

// Run executes the plan: remove targets, rename and rewrite the placeholder
// unit, patch wiring files. The returned report is complete on success and
// partial on failure; the error (a *MutationError) is also recorded on it.
// No rollback: a failure leaves earlier steps applied.
func (e *Engine) Run(pkg *Package, p *plan.Plan) (*report.Report, error) {
	rep := report.New(p.Name, pkg.PluginID)
	log := e.log.With().Str("run_id", rep.RunID).Str("plugin", pkg.PluginID).Logger()
	log.Info().Str("plan", p.Name).Str("root", pkg.Root).Msg("starting cleanup run")

	for _, w := range pkg.Warnings {
		rep.Add("validate", report.ActionWarning, w)
	}

	if err := e.removeStep(pkg, p, rep, log); err != nil {
		rep.Fail(err)
		return rep, err
	}
	if p.Rename != nil {
		if err := e.renameStep(pkg, p.Rename, rep, log); err != nil {
			rep.Fail(err)
			return rep, err
		}
	}
	if err := e.patchStep(pkg, p, rep, log); err != nil {
		rep.Fail(err)
		return rep, err
	}

	log.Info().Int("entries", len(rep.Entries)).Msg("cleanup run finished")
	return rep, nil
}

// removeStep deletes each removal target, tolerating absence.
func (e *Engine) removeStep(pkg *Package, p *plan.Plan, rep *report.Report, log zerolog.Logger) error {
	for _, target := range p.Removals {
		removed, err := fsops.RemoveTree(pkg.Root, target.Path)
		if err != nil {
			rep.Add("remove", report.ActionFailed, target.Path)
			return &MutationError{Step: "remove", Path: target.Path, Err: err}
		}
		if removed {
			log.Debug().Str("target", target.Path).Msg("removed scaffolding target")
			rep.Add("remove", report.ActionRemoved, fmt.Sprintf("%s (%s)", target.Path, target.Reason))
		} else {
			rep.Add("remove", report.ActionSkipped, target.Path+" (already absent)")
		}
	}
	return nil
}

// renameStep moves the placeholder directory to its derived name and
// rewrites the moved files and the wiring files that reference the unit.
// An absent placeholder directory skips the whole step: the package was
// already cleaned.
func (e *Engine) renameStep(pkg *Package, spec *plan.RenameSpec, rep *report.Report, log zerolog.Logger) error {
	component := naming.Component(pkg.PluginID, spec.Suffix)
	rep.ComponentName = component

	srcDir, err := fsops.Resolve(pkg.Root, spec.Dir)
	if err != nil {
		return &MutationError{Step: "rename", Path: spec.Dir, Err: err}
	}
	if !fsops.IsDir(srcDir) {
		rep.Add("rename", report.ActionSkipped, spec.Dir+" (already renamed)")
		return nil
	}

	dstRel := filepath.Join(filepath.Dir(spec.Dir), component)
	dstDir := filepath.Join(pkg.Root, dstRel)
	if err := fsops.MoveDir(srcDir, dstDir); err != nil {
		rep.Add("rename", report.ActionFailed, spec.Dir)
		return &MutationError{Step: "rename", Path: spec.Dir, Err: err}
	}
	log.Debug().Str("from", spec.Dir).Str("to", dstRel).Msg("moved placeholder directory")
	rep.Add("rename", report.ActionRenamed, spec.Dir+" -> "+dstRel)

	entries, err := os.ReadDir(dstDir)
	if err != nil {
		return &MutationError{Step: "rename", Path: dstRel, Err: err}
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if err := e.rewriteMovedFile(dstDir, dstRel, entry.Name(), spec, component, rep, log); err != nil {
			return err
		}
	}

	for _, rel := range spec.Wiring {
		if err := e.rewireFile(pkg, rel, spec.Placeholder, component, rep, log); err != nil {
			return err
		}
	}
	return nil
}

// rewriteMovedFile applies the rename substitutions to one file inside the
// moved directory. The rewritten content goes to the new file name first;
// the old file is deleted only after the write succeeds.
func (e *Engine) rewriteMovedFile(dir, dirRel, name string, spec *plan.RenameSpec, component string, rep *report.Report, log zerolog.Logger) error {
	oldPath := filepath.Join(dir, name)
	info, err := os.Stat(oldPath)
	if err != nil {
		// Listed a moment ago but gone now; treat like the plan's other
		// absent files and move on.
		rep.Add("rewrite", report.ActionSkipped, filepath.Join(dirRel, name)+" (missing)")
		return nil
	}

	data, err := os.ReadFile(oldPath)
	if err != nil {
		rep.Add("rewrite", report.ActionFailed, filepath.Join(dirRel, name))
		return &MutationError{Step: "rewrite", Path: filepath.Join(dirRel, name), Err: err}
	}

	content, _ := rewrite.ReplaceIdentifier(string(data), spec.Placeholder, component)
	for _, unit := range spec.StripUnits {
		content, _ = rewrite.StripImports(content, unit)
		content, _ = rewrite.StripElementUsage(content, unit)
	}

	newName := strings.ReplaceAll(name, spec.Placeholder, component)
	newPath := filepath.Join(dir, newName)
	if err := os.WriteFile(newPath, []byte(content), info.Mode().Perm()); err != nil {
		rep.Add("rewrite", report.ActionFailed, filepath.Join(dirRel, newName))
		return &MutationError{Step: "rewrite", Path: filepath.Join(dirRel, newName), Err: err}
	}
	if newName != name {
		if err := os.Remove(oldPath); err != nil {
			rep.Add("rewrite", report.ActionFailed, filepath.Join(dirRel, name))
			return &MutationError{Step: "rewrite", Path: filepath.Join(dirRel, name), Err: err}
		}
	}

	log.Debug().Str("file", filepath.Join(dirRel, newName)).Msg("rewrote moved file")
	rep.Add("rewrite", report.ActionRewritten, filepath.Join(dirRel, newName))
	return nil
}

// rewireFile updates one wiring file's references to the renamed unit.
// Import path segments and symbol references are both whole-identifier
// occurrences of the placeholder, so one substitution covers them.
func (e *Engine) rewireFile(pkg *Package, rel, placeholder, component string, rep *report.Report, log zerolog.Logger) error {
	path, err := fsops.Resolve(pkg.Root, rel)
	if err != nil {
		return &MutationError{Step: "rewire", Path: rel, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			rep.Add("rewire", report.ActionSkipped, rel+" (not present)")
			return nil
		}
		rep.Add("rewire", report.ActionFailed, rel)
		return &MutationError{Step: "rewire", Path: rel, Err: err}
	}

	content, n := rewrite.ReplaceIdentifier(string(data), placeholder, component)
	if n == 0 {
		rep.Add("rewire", report.ActionSkipped, rel+" (no references)")
		return nil
	}
	if err := fsops.WriteFileKeepMode(path, []byte(content)); err != nil {
		rep.Add("rewire", report.ActionFailed, rel)
		return &MutationError{Step: "rewire", Path: rel, Err: err}
	}

	log.Debug().Str("file", rel).Int("references", n).Msg("rewired file")
	rep.Add("rewire", report.ActionRewritten, fmt.Sprintf("%s (%d references)", rel, n))
	return nil
}

// patchStep applies each patch rule to its wiring file. Absent files and
// zero-match patterns are skips; template versions drift.
func (e *Engine) patchStep(pkg *Package, p *plan.Plan, rep *report.Report, log zerolog.Logger) error {
	for i := range p.Patches {
		rule := &p.Patches[i]

		path, err := fsops.Resolve(pkg.Root, rule.File)
		if err != nil {
			return &MutationError{Step: "patch", Path: rule.File, Err: err}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				rep.Add("patch", report.ActionSkipped, rule.File+" (not present)")
				continue
			}
			rep.Add("patch", report.ActionFailed, rule.File)
			return &MutationError{Step: "patch", Path: rule.File, Err: err}
		}

		content, changed := rewrite.Apply(string(data), rule.Regexp(), rule.Replacement)
		if !changed {
			rep.Add("patch", report.ActionSkipped, fmt.Sprintf("%s (%s: no match)", rule.File, rule.Note))
			continue
		}
		if err := fsops.WriteFileKeepMode(path, []byte(content)); err != nil {
			rep.Add("patch", report.ActionFailed, rule.File)
			return &MutationError{Step: "patch", Path: rule.File, Err: err}
		}

		log.Debug().Str("file", rule.File).Str("note", rule.Note).Msg("patched wiring file")
		rep.Add("patch", report.ActionPatched, fmt.Sprintf("%s (%s)", rule.File, rule.Note))
	}
	return nil
}
