package install

import (
	"context"
	"errors"
	"testing"

	"github.com/frontkit-labs/frontkit/internal/execx"
	"github.com/frontkit-labs/frontkit/internal/pkgmanager"
	"github.com/rs/zerolog"
)

func TestExecuteRunsInOrderInProjectDir(t *testing.T) {
	rec := &execx.Recorder{}
	ex := &Executor{Runner: rec, Logger: zerolog.Nop()}

	plan := BuildPlan(pkgmanager.PNPM, true)
	if err := ex.Execute(context.Background(), plan, "/work/my-project"); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := rec.CommandLines()
	want := plan.Strings()
	if len(got) != len(want) {
		t.Fatalf("ran %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %q, want %q", i, got[i], want[i])
		}
		if rec.Calls[i].Dir != "/work/my-project" {
			t.Errorf("command %d ran in %q, want /work/my-project", i, rec.Calls[i].Dir)
		}
	}
}

func TestExecuteStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("network down")
	rec := &execx.Recorder{Failures: map[string]error{"npm install @tanstack/react-router": boom}}
	ex := &Executor{Runner: rec, Logger: zerolog.Nop()}

	err := ex.Execute(context.Background(), BuildPlan(pkgmanager.NPM, true), "/p")
	if !errors.Is(err, ErrInstallFailed) {
		t.Fatalf("error = %v, want ErrInstallFailed", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("error should wrap the runner error: %v", err)
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("error = %T, want *StepError", err)
	}
	if stepErr.Index != 1 {
		t.Errorf("Index = %d, want 1", stepErr.Index)
	}
	if len(stepErr.Abandoned) != 1 || stepErr.Abandoned[0].String() != "npm install --save-dev @tanstack/router-devtools" {
		t.Errorf("Abandoned = %v", stepErr.Abandoned)
	}

	if got := len(rec.Calls); got != 2 {
		t.Errorf("ran %d commands, want 2 (remaining sequence abandoned)", got)
	}
}
