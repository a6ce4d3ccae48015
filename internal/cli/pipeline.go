package cli

import (
	"os"

	"github.com/portalis-dev/descaff/internal/cleaner"
	"github.com/portalis-dev/descaff/internal/config"
	"github.com/portalis-dev/descaff/internal/pkgmgr"
	"github.com/portalis-dev/descaff/internal/plan"
)

// executePlan runs one cleanup pipeline against a validated package and
// renders the report. The report is rendered even when the run aborts;
// the error then propagates for the top-level Error line and exit code.
func executePlan(pkg *cleaner.Package, p *plan.Plan) error {
	rep, runErr := cleaner.NewEngine().Run(pkg, p)
	rep.Render(os.Stdout)
	if runErr != nil {
		return runErr
	}

	if config.GetBool(config.KeyGuidance) {
		pm := pkgmgr.Detect(pkg.Root)
		rep.RenderGuidance(os.Stdout, p.Guidance, pm.RunPrefix)
	}
	return nil
}
