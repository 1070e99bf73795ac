package runtime

import (
	"context"
)

// Runner runs an external program and reports how it exited.
type Runner interface {
	// Run executes name with args inside dir and blocks until it exits.
	// A non-zero exit code is reported through Output, not as an error;
	// the error return is for programs that could not be started.
	Run(ctx context.Context, name string, args []string, dir string) (*Output, error)
}

// Output captures the result of a program execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
	// Combined holds stdout and stderr interleaved in arrival order.
	Combined string
}

// Success reports whether the program exited with status 0.
func (o *Output) Success() bool {
	return o != nil && o.ExitCode == 0
}
