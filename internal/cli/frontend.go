package cli

import (
	"github.com/portalis-dev/descaff/internal/cleaner"
	"github.com/portalis-dev/descaff/internal/plan"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(frontendCmd)
}

var frontendCmd = &cobra.Command{
	Use:   "frontend <path>",
	Short: "Clean a frontend plugin package",
	Long: `Run the frontend cleanup pipeline: remove the demo fetch component, the
example data, and the dev harness; rename the placeholder page component
after the plugin id; rewrite every reference to it.

Example:
  descaff frontend ./plugins/my-service`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pkg, err := cleaner.Validate(args[0])
		if err != nil {
			return err
		}
		p, err := plan.Load("frontend")
		if err != nil {
			return err
		}
		return executePlan(pkg, p)
	},
}
