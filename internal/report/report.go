// Package report accumulates the run report the cleanup pipeline prints:
// one entry per completed or skipped sub-step, a digest of what changed,
// and the post-run guidance block. The report is rendered even when a run
// aborts, so the operator always knows which steps completed.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Action classifies what happened in one sub-step.
type Action string

const (
	ActionRemoved   Action = "removed"
	ActionRenamed   Action = "renamed"
	ActionRewritten Action = "rewritten"
	ActionPatched   Action = "patched"
	ActionSkipped   Action = "skipped"
	ActionWarning   Action = "warning"
	ActionFailed    Action = "failed"
)

// Entry is one line of the run report.
type Entry struct {
	Step   string // "remove", "rename", "rewrite", "patch", ...
	Action Action
	Detail string
}

// Report is the accumulated outcome of one pipeline run.
type Report struct {
	RunID         string
	Variant       string
	PluginID      string
	ComponentName string
	Entries       []Entry
	Err           error
}

// New creates an empty report for one run.
func New(variant, pluginID string) *Report {
	return &Report{
		RunID:    uuid.NewString(),
		Variant:  variant,
		PluginID: pluginID,
	}
}

// Add appends one entry in execution order.
func (r *Report) Add(step string, action Action, detail string) {
	r.Entries = append(r.Entries, Entry{Step: step, Action: action, Detail: detail})
}

// Fail records the error that aborted the run.
func (r *Report) Fail(err error) {
	r.Err = err
}

// Counts returns the number of entries per action.
func (r *Report) Counts() map[Action]int {
	counts := make(map[Action]int)
	for _, e := range r.Entries {
		counts[e.Action]++
	}
	return counts
}

// tag returns the status tag rendered in front of an entry.
func tag(a Action) string {
	switch a {
	case ActionSkipped:
		return "[SKIP]"
	case ActionWarning:
		return "[WARN]"
	case ActionFailed:
		return "[FAIL]"
	default:
		return "[ OK ]"
	}
}

// Render writes the per-step lines and the change digest. On a failed run
// the partial report is rendered the same way, followed by the error.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Cleaning %s (%s):\n", r.PluginID, r.Variant)
	for _, e := range r.Entries {
		fmt.Fprintf(w, "  %s %s %s\n", tag(e.Action), e.Step, e.Detail)
	}

	counts := r.Counts()
	var parts []string
	for _, a := range []Action{ActionRemoved, ActionRenamed, ActionRewritten, ActionPatched} {
		if counts[a] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[a], a))
		}
	}
	digest := "nothing to do"
	if len(parts) > 0 {
		digest = strings.Join(parts, ", ")
	}
	if counts[ActionSkipped] > 0 {
		digest += fmt.Sprintf(" (%d skipped)", counts[ActionSkipped])
	}
	fmt.Fprintf(w, "\nChanged: %s\n", digest)

	if r.Err != nil {
		fmt.Fprintf(w, "\nRun aborted: %v\n", r.Err)
	}
}

// RenderGuidance prints the numbered "Next steps" block. The {pm} token in
// a guidance line is replaced with the detected package-manager run prefix.
func (r *Report) RenderGuidance(w io.Writer, lines []string, runPrefix string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(w, "\nNext steps:")
	for i, line := range lines {
		fmt.Fprintf(w, "  %d. %s\n", i+1, strings.ReplaceAll(line, "{pm}", runPrefix))
	}
}
