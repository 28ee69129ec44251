package install

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/frontkit-labs/frontkit/internal/execx"
	"github.com/rs/zerolog"
)

// ErrInstallFailed marks a failed command in a plan.
var ErrInstallFailed = errors.New("dependency installation failed")

// StepError reports the command that stopped a plan.
type StepError struct {
	Command   Command
	Index     int
	Abandoned []Command
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

func (e *StepError) Is(target error) bool { return target == ErrInstallFailed }

// Executor runs plans.
type Executor struct {
	Runner execx.Runner
	Logger zerolog.Logger

	// Output receives live command output when set.
	Output io.Writer
}

// Execute runs the plan's commands in order inside dir. The first failing
// command stops the sequence; the returned *StepError lists what was
// abandoned.
func (e *Executor) Execute(ctx context.Context, plan *Plan, dir string) error {
	for i, cmd := range plan.Commands {
		e.Logger.Info().Str("command", cmd.String()).Str("dir", dir).Msg("running")

		_, err := e.Runner.Run(ctx, cmd.Name, cmd.Args, execx.Options{
			Dir:    dir,
			Stdout: e.Output,
			Stderr: e.Output,
		})
		if err != nil {
			return &StepError{
				Command:   cmd,
				Index:     i,
				Abandoned: plan.Commands[i+1:],
				Err:       err,
			}
		}
	}
	return nil
}
