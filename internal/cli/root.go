package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vuedj/vuedj/internal/branding"
	"github.com/vuedj/vuedj/internal/config"
	"github.com/vuedj/vuedj/internal/runtime"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	logger  = zerolog.Nop()
)

// Swapped in tests.
var (
	newRunner = execRunner
	newFS     = func(dir string) billy.Filesystem {
		return osfs.New(dir)
	}
)

// execRunner runs programs attached to the command's streams. Quiet runners
// only capture output, for probes whose output is parsed rather than shown.
func execRunner(cmd *cobra.Command, quiet bool) runtime.Runner {
	return &runtime.ExecRunner{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Quiet:  quiet,
		Env:    config.Current().Env,
		Logger: &logger,
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace external commands on stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` automates Vue.js projects living inside a Django project: it checks the
node/npm/vue-cli toolchain, scaffolds projects, runs their npm scripts and turns
their webpack build into a Django app served through {% static %}.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logger = zerolog.Nop()
		if verbose {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(zerolog.DebugLevel).
				With().Timestamp().Logger()
		}
	},
}

// ExitError carries the exit status a command wants the process to end with.
// Its message has already been shown to the user.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
