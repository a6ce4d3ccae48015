package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/portalis-dev/descaff/internal/plan"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan [variant]",
	Short: "Show a variant's cleanup tables",
	Long: `Print the declarative cleanup tables baked into the binary: removal
targets, the rename specification, and the wiring patches. Without an
argument, lists the available variants.

Example:
  descaff plan frontend`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			fmt.Fprintln(out, "Available variants:")
			for _, name := range plan.Names() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Plan %s (role %s)\n\n", p.Name, p.Role)

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "REMOVE\tREASON")
		for _, target := range p.Removals {
			fmt.Fprintf(w, "%s\t%s\n", target.Path, target.Reason)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if p.Rename != nil {
			fmt.Fprintf(out, "\nRename %s\n", p.Rename.Dir)
			fmt.Fprintf(out, "  placeholder %s, suffix %s\n", p.Rename.Placeholder, p.Rename.Suffix)
			if len(p.Rename.StripUnits) > 0 {
				fmt.Fprintf(out, "  strip usages of: %s\n", strings.Join(p.Rename.StripUnits, ", "))
			}
			fmt.Fprintf(out, "  wiring files: %s\n", strings.Join(p.Rename.Wiring, ", "))
		}

		fmt.Fprintln(out)
		w = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PATCH\tNOTE")
		for i := range p.Patches {
			fmt.Fprintf(w, "%s\t%s\n", p.Patches[i].File, p.Patches[i].Note)
		}
		return w.Flush()
	},
}
