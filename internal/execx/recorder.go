package execx

import (
	"context"
	"sync"
)

// Invocation is one recorded call to a Recorder.
type Invocation struct {
	Name string
	Args []string
	Dir  string
}

// CommandLine renders the invocation as a single string.
func (i Invocation) CommandLine() string {
	return CommandLine(i.Name, i.Args)
}

// Recorder is a Runner that records invocations instead of running them.
// Failures maps a command line (e.g. "pnpm install") to the error it returns.
type Recorder struct {
	mu       sync.Mutex
	Calls    []Invocation
	Failures map[string]error
}

// Run implements Runner.
func (r *Recorder) Run(_ context.Context, name string, args []string, opts Options) (*Output, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv := Invocation{Name: name, Args: append([]string(nil), args...), Dir: opts.Dir}
	r.Calls = append(r.Calls, inv)

	if err, ok := r.Failures[inv.CommandLine()]; ok {
		return &Output{ExitCode: 1}, err
	}
	return &Output{}, nil
}

// CommandLines returns the recorded invocations as strings.
func (r *Recorder) CommandLines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.CommandLine()
	}
	return lines
}
