package cli

import (
	"github.com/portalis-dev/descaff/internal/cleaner"
	"github.com/portalis-dev/descaff/internal/plan"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(backendCmd)
}

var backendCmd = &cobra.Command{
	Use:   "backend <path>",
	Short: "Clean a backend plugin package",
	Long: `Run the backend cleanup pipeline: remove the placeholder todo service, its
generated route test, and the dev harness, then patch the wiring files so
only the health route remains registered. The backend variant performs no
rename.

Example:
  descaff backend ./plugins/example-backend`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pkg, err := cleaner.Validate(args[0])
		if err != nil {
			return err
		}
		p, err := plan.Load("backend")
		if err != nil {
			return err
		}
		return executePlan(pkg, p)
	},
}
