// Package runtimetest provides a scripted runtime.Runner for tests.
package runtimetest

import (
	"context"
	"strings"
	"sync"

	"github.com/vuedj/vuedj/internal/runtime"
)

// Call records one Run invocation.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// Line returns the invocation as "name arg1 arg2".
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is what the fake returns for a scripted command line.
type Response struct {
	Output *runtime.Output
	Err    error
}

// Runner is a fake runtime.Runner. Responses are keyed by Call.Line();
// unscripted commands succeed with empty output.
type Runner struct {
	mu        sync.Mutex
	Responses map[string]Response
	Calls     []Call
}

// New returns an empty fake runner.
func New() *Runner {
	return &Runner{Responses: make(map[string]Response)}
}

// On scripts the output for a command line.
func (r *Runner) On(line string, exitCode int, combined string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Responses[line] = Response{Output: &runtime.Output{
		ExitCode: exitCode,
		Stdout:   combined,
		Combined: combined,
	}}
	return r
}

// Fail scripts a start failure (e.g. missing binary) for a command line.
func (r *Runner) Fail(line string, err error) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Responses[line] = Response{Err: err}
	return r
}

// Run implements runtime.Runner.
func (r *Runner) Run(_ context.Context, name string, args []string, dir string) (*runtime.Output, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := Call{Name: name, Args: append([]string(nil), args...), Dir: dir}
	r.Calls = append(r.Calls, call)

	resp, ok := r.Responses[call.Line()]
	if !ok {
		return &runtime.Output{}, nil
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	out := *resp.Output
	return &out, nil
}

// Lines returns the recorded command lines in order.
func (r *Runner) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		lines = append(lines, c.Line())
	}
	return lines
}

// Count returns how many times a command line was run.
func (r *Runner) Count(line string) int {
	n := 0
	for _, l := range r.Lines() {
		if l == line {
			n++
		}
	}
	return n
}
