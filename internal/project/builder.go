package project

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vuedj/vuedj/internal/config"
	"github.com/vuedj/vuedj/internal/runtime"
)

// State is a step of the StartProject state machine.
type State string

const (
	StateStart             State = "start"
	StateCLICheck          State = "cli_check"
	StateScaffold          State = "scaffold"
	StateDependencyInstall State = "dependency_install"
	StateDone              State = "done"
	StateFailed            State = "failed"
)

// Policy decides whether the scaffold and install steps gate the final status.
type Policy int

const (
	// PolicyLenient reports success once the vue-cli check passes,
	// whatever the scaffold and install steps return.
	PolicyLenient Policy = iota
	// PolicyStrict fails as soon as the scaffold or install step fails.
	PolicyStrict
)

// CLIProber is the part of toolchain.Checker the builder needs.
type CLIProber interface {
	ProbeCLI(ctx context.Context) bool
}

// Builder runs project lifecycle commands.
type Builder struct {
	Runner   runtime.Runner
	Checker  CLIProber
	VueBin   string
	NpmBin   string
	Template string
	Policy   Policy
	Logger   *zerolog.Logger

	trace []State
}

// NewBuilder builds a Builder from settings.
func NewBuilder(r runtime.Runner, checker CLIProber, s config.Settings) *Builder {
	b := &Builder{
		Runner:   r,
		Checker:  checker,
		VueBin:   s.VueBin,
		NpmBin:   s.NpmBin,
		Template: s.VueTemplate,
	}
	if b.VueBin == "" {
		b.VueBin = config.DefaultVueBin
	}
	if b.NpmBin == "" {
		b.NpmBin = config.DefaultNpmBin
	}
	if b.Template == "" {
		b.Template = config.DefaultVueTemplate
	}
	if s.Strict {
		b.Policy = PolicyStrict
	}
	return b
}

// Trace returns the states visited by the last StartProject call.
func (b *Builder) Trace() []State {
	return append([]State(nil), b.trace...)
}

// StartProject checks vue-cli, scaffolds cfg.Name inside cfg.Dir and
// installs its dependencies. When the vue-cli check fails nothing else runs.
func (b *Builder) StartProject(ctx context.Context, cfg Config) Outcome {
	b.trace = []State{StateStart}
	log := b.logger().With().Str("project", cfg.Name).Logger()

	if err := cfg.Validate(); err != nil {
		return b.fail(log, err.Error())
	}

	b.enter(log, StateCLICheck)
	if !b.Checker.ProbeCLI(ctx) {
		return b.fail(log, "vue-cli not found or too old; run installvuecli first")
	}

	b.enter(log, StateScaffold)
	out, ok := b.run(ctx, b.VueBin, []string{"init", b.Template, cfg.Name}, cfg.Dir)
	if !ok && b.Policy == PolicyStrict {
		return b.fail(log, out)
	}

	b.enter(log, StateDependencyInstall)
	out, ok = b.run(ctx, b.NpmBin, []string{"install"}, cfg.ProjectDir())
	if !ok && b.Policy == PolicyStrict {
		return b.fail(log, out)
	}

	b.enter(log, StateDone)
	return Succeeded(out)
}

// Dev runs the project's development server and blocks until it exits.
func (b *Builder) Dev(ctx context.Context, dir string) Outcome {
	return b.script(ctx, "dev", dir)
}

// Build runs the project's production build.
func (b *Builder) Build(ctx context.Context, dir string) Outcome {
	return b.script(ctx, "build", dir)
}

func (b *Builder) script(ctx context.Context, name, dir string) Outcome {
	out, err := b.Runner.Run(ctx, b.NpmBin, []string{"run", name}, dir)
	if err != nil {
		return Failed(fmt.Sprintf("%s: %v", b.NpmBin, err))
	}
	return exited(out.Combined, out.ExitCode)
}

// run executes a program and returns its combined output, or the start
// error text when it could not be launched.
func (b *Builder) run(ctx context.Context, name string, args []string, dir string) (string, bool) {
	out, err := b.Runner.Run(ctx, name, args, dir)
	if err != nil {
		b.logger().Debug().Err(err).Str("program", name).Msg("could not start")
		return fmt.Sprintf("%s: %v", name, err), false
	}
	return out.Combined, out.Success()
}

func (b *Builder) enter(log zerolog.Logger, s State) {
	b.trace = append(b.trace, s)
	log.Debug().Str("state", string(s)).Msg("enter")
}

func (b *Builder) fail(log zerolog.Logger, msg string) Outcome {
	b.enter(log, StateFailed)
	return Failed(msg)
}

func (b *Builder) logger() *zerolog.Logger {
	if b.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return b.Logger
}
