package cli

import (
	"github.com/spf13/cobra"
	"github.com/vuedj/vuedj/internal/config"
	"github.com/vuedj/vuedj/internal/project"
)

var (
	projectDir  string
	startDir    string
	startStrict bool
)

func init() {
	for _, c := range []*cobra.Command{startVueAppCmd, djStartVueAppCmd} {
		c.Flags().StringVar(&startDir, "dir", ".", "Directory in which the project is created")
		c.Flags().BoolVar(&startStrict, "strict", false, "Fail when scaffolding or dependency installation fails")
	}
	for _, c := range []*cobra.Command{vueBuildCmd, vueDevCmd} {
		c.Flags().StringVar(&projectDir, "dir", ".", "Vue.js project directory")
	}

	rootCmd.AddCommand(startVueAppCmd)
	rootCmd.AddCommand(vueBuildCmd)
	rootCmd.AddCommand(vueDevCmd)
}

func newBuilder(cmd *cobra.Command) *project.Builder {
	settings := config.Current()
	if startStrict {
		settings.Strict = true
	}
	r := newRunner(cmd, false)
	b := project.NewBuilder(r, newChecker(cmd), settings)
	b.Logger = &logger
	return b
}

// startProject runs StartProject and reports its outcome. A failed outcome
// becomes an ExitError.
func startProject(cmd *cobra.Command, name string) error {
	p := newStatusPrinter(cmd.OutOrStdout())
	outcome := newBuilder(cmd).StartProject(cmd.Context(), project.Config{Name: name, Dir: startDir})
	if !outcome.Status {
		p.Fail("Could not create Vue.js project %s", name)
		p.Detail(outcome.Output)
		return &ExitError{Code: outcome.ExitCode}
	}
	p.OK("Created Vue.js project %s", name)
	return nil
}

var startVueAppCmd = &cobra.Command{
	Use:     "startvueapp <name>",
	Aliases: []string{"start-project"},
	Short:   "Scaffold a Vue.js project with vue-cli and install its dependencies",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return startProject(cmd, args[0])
	},
}

// runScript reports a Dev/Build outcome, exiting with the program's code.
func runScript(cmd *cobra.Command, what string, outcome project.Outcome) error {
	if outcome.Status {
		return nil
	}
	p := newStatusPrinter(cmd.ErrOrStderr())
	p.Fail("%s exited with status %d", what, outcome.ExitCode)
	return &ExitError{Code: outcome.ExitCode}
}

var vueBuildCmd = &cobra.Command{
	Use:     "vuebuild",
	Aliases: []string{"build"},
	Short:   "Build the Vue.js project for production (npm run build)",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, "npm run build", newBuilder(cmd).Build(cmd.Context(), projectDir))
	},
}

var vueDevCmd = &cobra.Command{
	Use:     "vuedev",
	Aliases: []string{"dev"},
	Short:   "Run the Vue.js development server (npm run dev)",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, "npm run dev", newBuilder(cmd).Dev(cmd.Context(), projectDir))
	},
}
