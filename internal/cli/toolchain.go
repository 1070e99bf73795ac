package cli

import (
	"github.com/spf13/cobra"
	"github.com/vuedj/vuedj/internal/config"
	"github.com/vuedj/vuedj/internal/toolchain"
)

var vuecheckDetails bool

func init() {
	vuecheckCmd.Flags().BoolVar(&vuecheckDetails, "details", false, "Show path and version of each tool")
	rootCmd.AddCommand(vuecheckCmd)
	rootCmd.AddCommand(installVueCLICmd)
}

func newChecker(cmd *cobra.Command) *toolchain.Checker {
	return toolchain.NewChecker(newRunner(cmd, true), config.Current())
}

var vuecheckCmd = &cobra.Command{
	Use:     "vuecheck",
	Aliases: []string{"check-toolchain"},
	Short:   "Check that node and npm are installed",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newStatusPrinter(cmd.OutOrStdout())
		checker := newChecker(cmd)

		if checker.ProbeRuntime(cmd.Context()) {
			p.OK("Found node and npm")
		} else {
			p.Miss("Missing node and npm installation")
		}

		if vuecheckDetails {
			printToolReport(p, checker.Report(cmd.Context()))
		}
		return nil
	},
}

var installVueCLICmd = &cobra.Command{
	Use:     "installvuecli",
	Aliases: []string{"install-cli"},
	Short:   "Install vue-cli globally unless a valid version is present",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newStatusPrinter(cmd.OutOrStdout())
		checker := newChecker(cmd)

		if checker.ProbeCLI(cmd.Context()) {
			p.OK("Found valid vue-cli")
			return nil
		}

		checker.InstallCLI(cmd.Context())
		p.OK("Installed vue-cli globally")

		if !checker.ProbeCLI(cmd.Context()) {
			p.Warn("vue-cli >= %s is still not available; check npm's global install permissions", checker.MinVersion)
		}
		return nil
	},
}

func printToolReport(p *statusPrinter, report []toolchain.ToolStatus) {
	for _, st := range report {
		desc := st.Name
		if st.Version != "" {
			desc += " " + st.Version
		}
		if st.Path != "" {
			desc += " at " + st.Path
		}
		if st.Min != "" {
			desc += " (requires >= " + st.Min + ")"
		}
		switch {
		case st.OK:
			p.OK("%s", desc)
		case st.Path == "":
			p.Miss("%s not found", st.Name)
		default:
			p.Fail("%s", desc)
		}
	}
}
