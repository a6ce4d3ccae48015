package cli

import (
	"fmt"
	"os"

	"github.com/portalis-dev/descaff/internal/branding"
	"github.com/portalis-dev/descaff/internal/config"
	"github.com/portalis-dev/descaff/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` removes the example code the plugin generator leaves in a freshly
scaffolded Portalis plugin package, renames the placeholder component after
the plugin's real identifier, and rewrites every cross-file reference so the
package stays internally consistent.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		v := verbosity
		if v == 0 {
			v = config.GetInt(config.KeyVerbosity)
		}
		logging.Setup(v)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase diagnostic verbosity (-v, -vv, -vvv)")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed once, here, so commands just return them.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
