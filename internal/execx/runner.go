package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes a command and waits for it to finish.
type Runner interface {
	// Run executes name with args. A non-zero exit is reported as *ExitError
	// alongside the captured Output.
	Run(ctx context.Context, name string, args []string, opts Options) (*Output, error)
}

// Options controls a single invocation.
type Options struct {
	Dir    string    // working directory; empty means the current one
	Stdout io.Writer // optional live copy of stdout
	Stderr io.Writer // optional live copy of stderr
}

// Output captures the result of an invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + lastLine(s)
	}
	return msg
}

// CommandLine renders name and args the way a user would type them.
func CommandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

// IsNotFound reports whether err means the executable is not on PATH.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

// ExecRunner runs commands with os/exec. There is no timeout: a hung child
// blocks until ctx is cancelled.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args []string, opts Options) (*Output, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = opts.Dir
	cmd.Env = os.Environ()

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = teeTo(&stdoutBuf, opts.Stdout)
	cmd.Stderr = teeTo(&stderrBuf, opts.Stderr)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, &ExitError{
				Command:  CommandLine(name, args),
				ExitCode: output.ExitCode,
				Stderr:   output.Stderr,
			}
		}
		return output, fmt.Errorf("executing %s: %w", CommandLine(name, args), err)
	}

	return output, nil
}

func teeTo(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
