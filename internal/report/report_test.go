package report

import (
	"errors"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	r := New("frontend", "my-service")
	r.ComponentName = "MyServicePage"
	r.Add("remove", ActionRemoved, "src/components/ExampleFetchComponent (demo fetch/table component)")
	r.Add("remove", ActionSkipped, "dev (already absent)")
	r.Add("rename", ActionRenamed, "src/components/ExampleComponent -> src/components/MyServicePage")
	r.Add("rewrite", ActionRewritten, "src/components/MyServicePage/MyServicePage.tsx")
	r.Add("patch", ActionPatched, "src/plugin.ts (drop the removed fetch component import)")

	var b strings.Builder
	r.Render(&b)
	out := b.String()

	if !strings.Contains(out, "Cleaning my-service (frontend):") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "[ OK ] remove src/components/ExampleFetchComponent") {
		t.Errorf("missing removed line:\n%s", out)
	}
	if !strings.Contains(out, "[SKIP] remove dev (already absent)") {
		t.Errorf("missing skip line:\n%s", out)
	}
	if !strings.Contains(out, "Changed: 1 removed, 1 renamed, 1 rewritten, 1 patched (1 skipped)") {
		t.Errorf("bad digest:\n%s", out)
	}
	if strings.Contains(out, "Run aborted") {
		t.Errorf("successful run rendered an abort line:\n%s", out)
	}
}

func TestRender_Failure(t *testing.T) {
	r := New("backend", "example")
	r.Add("remove", ActionRemoved, "dev")
	r.Add("patch", ActionFailed, "src/router.ts")
	r.Fail(errors.New("writing src/router.ts: permission denied"))

	var b strings.Builder
	r.Render(&b)
	out := b.String()

	// Partial report still rendered.
	if !strings.Contains(out, "[ OK ] remove dev") {
		t.Errorf("partial entries missing:\n%s", out)
	}
	if !strings.Contains(out, "[FAIL] patch src/router.ts") {
		t.Errorf("failed entry missing:\n%s", out)
	}
	if !strings.Contains(out, "Run aborted: writing src/router.ts: permission denied") {
		t.Errorf("abort line missing:\n%s", out)
	}
}

func TestRender_NothingToDo(t *testing.T) {
	r := New("backend", "example")
	r.Add("remove", ActionSkipped, "dev (already absent)")

	var b strings.Builder
	r.Render(&b)

	if !strings.Contains(b.String(), "Changed: nothing to do (1 skipped)") {
		t.Errorf("bad digest:\n%s", b.String())
	}
}

func TestRenderGuidance(t *testing.T) {
	r := New("frontend", "my-service")

	var b strings.Builder
	r.RenderGuidance(&b, []string{
		"Run '{pm} test' to confirm the package is consistent",
		"Commit the cleaned package",
	}, "yarn")
	out := b.String()

	if !strings.Contains(out, "Next steps:") {
		t.Errorf("missing heading:\n%s", out)
	}
	if !strings.Contains(out, "1. Run 'yarn test' to confirm the package is consistent") {
		t.Errorf("token not substituted:\n%s", out)
	}
	if !strings.Contains(out, "2. Commit the cleaned package") {
		t.Errorf("missing numbered line:\n%s", out)
	}
}

func TestRenderGuidance_Empty(t *testing.T) {
	r := New("frontend", "my-service")
	var b strings.Builder
	r.RenderGuidance(&b, nil, "npm run")
	if b.Len() != 0 {
		t.Errorf("empty guidance rendered output: %q", b.String())
	}
}

func TestNew_RunID(t *testing.T) {
	a, b := New("frontend", "x"), New("frontend", "x")
	if a.RunID == "" || a.RunID == b.RunID {
		t.Error("run ids should be unique and non-empty")
	}
}
