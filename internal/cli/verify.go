package cli

import (
	"fmt"

	"github.com/portalis-dev/descaff/internal/cleaner"
	"github.com/portalis-dev/descaff/internal/manifest"
	"github.com/portalis-dev/descaff/internal/plan"
	"github.com/spf13/cobra"
)

var verifyVariant string

func init() {
	verifyCmd.Flags().StringVar(&verifyVariant, "variant", "", "Plan to verify against (default: from portalis.role)")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify <path>",
	Short: "Check a package for leftover scaffolding without changing it",
	Long: `Scan a plugin package for anything a cleanup run would still change:
removal targets that exist, the placeholder component directory, textual
references to the placeholder name, and wiring patterns that still match.
Manifest drift from the generator's schema is reported as warnings.
Exits non-zero when the package is not clean. Performs no mutation.

Example:
  descaff verify ./plugins/my-service`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		pkg, err := cleaner.Validate(args[0])
		if err != nil {
			return err
		}

		var p *plan.Plan
		if verifyVariant != "" {
			p, err = plan.Load(verifyVariant)
		} else {
			p, err = plan.ForRole(pkg.Role)
		}
		if err != nil {
			return err
		}

		result, err := cleaner.Verify(pkg, p)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Verifying %s (%s):\n", pkg.PluginID, p.Name)

		// Schema drift does not make the package dirty, but the operator
		// should see it before publishing.
		drift, err := manifest.ValidateFile(manifest.Path(args[0]))
		if err != nil {
			return err
		}
		for _, issue := range drift.Issues {
			fmt.Fprintf(out, "  [WARN] %s%s: %s\n", manifest.FileName, issue.Path, issue.Message)
		}

		if result.Clean {
			fmt.Fprintln(out, "  [ OK ] no leftover scaffolding found")
			return nil
		}
		for _, f := range result.Findings {
			fmt.Fprintf(out, "  [WARN] %s: %s\n", f.Path, f.Detail)
		}
		return fmt.Errorf("%d leftover scaffolding item(s); run 'descaff %s %s' to clean", len(result.Findings), p.Name, args[0])
	},
}
