package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// interruptGrace is how long a cancelled program may take to exit after
// os.Interrupt before it is killed.
const interruptGrace = 10 * time.Second

// ExecRunner runs programs with os/exec.
type ExecRunner struct {
	// Stdin feeds the program; default os.Stdin so prompts such as
	// "vue init" can be answered.
	Stdin io.Reader
	// Stdout and Stderr receive the live program output; default os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Quiet suppresses live output. Output is still captured.
	Quiet bool
	// Env entries are set on top of the inherited environment.
	Env map[string]string
	// Logger traces each invocation; the zero value is replaced by a no-op logger.
	Logger *zerolog.Logger
}

// Run executes name with args in dir, streaming output to the configured
// writers while capturing it.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, dir string) (*Output, error) {
	log := r.logger()

	bin, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Str("program", name).Err(err).Msg("program not found")
		return nil, fmt.Errorf("%s not found: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = r.stdin()
	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	cmd.WaitDelay = interruptGrace
	if len(r.Env) > 0 {
		env := os.Environ()
		for k, v := range r.Env {
			env = setEnv(env, k, v)
		}
		cmd.Env = env
	}

	stdout, stderr := r.writers()
	var stdoutBuf, stderrBuf bytes.Buffer
	combined := &lockedBuffer{}
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf, combined)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf, combined)

	log.Debug().
		Str("program", bin).
		Str("args", strings.Join(args, " ")).
		Str("dir", dir).
		Msg("running")

	err = cmd.Run()

	output := &Output{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Combined: combined.String(),
	}

	// Once the program has run, its own status wins over ExitError, a
	// cancelled context or a WaitDelay timeout.
	if err != nil && cmd.ProcessState == nil {
		return output, fmt.Errorf("executing %s: %w", name, err)
	}

	output.ExitCode = exitCode(cmd.ProcessState)
	log.Debug().Str("program", name).Int("exit", output.ExitCode).Msg("exited")
	return output, nil
}

// exitCode returns the program's exit status, or 128+signal when a signal
// ended it, the way shells report it.
func exitCode(state *os.ProcessState) int {
	code := state.ExitCode()
	if code != -1 {
		return code
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return code
}

func (r *ExecRunner) stdin() io.Reader {
	if r.Stdin == nil {
		return os.Stdin
	}
	return r.Stdin
}

func (r *ExecRunner) writers() (io.Writer, io.Writer) {
	if r.Quiet {
		return io.Discard, io.Discard
	}
	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdout, stderr
}

func (r *ExecRunner) logger() *zerolog.Logger {
	if r.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return r.Logger
}

// lockedBuffer serializes the stdout and stderr copy goroutines exec starts
// when both streams share one writer.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
