package cli

import (
	"fmt"
	"strings"

	"github.com/portalis-dev/descaff/internal/cleaner"
	"github.com/portalis-dev/descaff/internal/manifest"
	"github.com/portalis-dev/descaff/internal/plan"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cleanCmd)
}

var cleanCmd = &cobra.Command{
	Use:   "clean <path>",
	Short: "Clean a plugin package, auto-detecting its variant",
	Long: `Clean a freshly generated plugin package. The pipeline variant is chosen
from the portalis.role field in the package's package.json.

Examples:
  descaff clean ./plugins/my-service
  descaff clean ../generated/example-backend`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pkg, err := cleaner.Validate(args[0])
		if err != nil {
			return err
		}

		p, err := plan.ForRole(pkg.Role)
		if err != nil {
			return &cleaner.ValidationError{
				Kind: cleaner.UnknownRole,
				Path: args[0],
				Hint: fmt.Sprintf("portalis.role %q selects no cleanup variant; set it to one of %s, or run 'descaff frontend' or 'descaff backend' explicitly",
					pkg.Role, strings.Join(manifest.ValidRoles, ", ")),
			}
		}

		return executePlan(pkg, p)
	},
}
