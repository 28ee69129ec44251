//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frontkit-labs/frontkit/internal/execx"
	"github.com/frontkit-labs/frontkit/internal/prompt"
	"github.com/frontkit-labs/frontkit/internal/scaffold"
	"github.com/frontkit-labs/frontkit/internal/ui"
	"github.com/rs/zerolog"
)

// templatesDir is the template tree shipped with the repository.
var templatesDir = filepath.Join("..", "..", "templates")

// testEnv holds an isolated working directory and the collaborators of a run.
type testEnv struct {
	Cwd      string
	Runner   *execx.Recorder
	Prompter *prompt.Scripted
	Out      *bytes.Buffer
	Scaffold *scaffold.Scaffolder
}

// setupTestEnv returns a scaffolder over the real templates and filesystem
// whose external commands are recorded instead of run.
func setupTestEnv(t *testing.T, answers ...any) *testEnv {
	t.Helper()

	abs, err := filepath.Abs(templatesDir)
	if err != nil {
		t.Fatalf("resolving templates: %v", err)
	}
	assertDirExists(t, filepath.Join(abs, "base"))

	env := &testEnv{
		Cwd:      t.TempDir(),
		Runner:   &execx.Recorder{},
		Prompter: &prompt.Scripted{Answers: answers},
		Out:      &bytes.Buffer{},
	}
	env.Scaffold = &scaffold.Scaffolder{
		Prompter:     env.Prompter,
		Runner:       env.Runner,
		Reporter:     ui.New(env.Out, true),
		Logger:       zerolog.Nop(),
		TemplatesDir: abs,
	}
	return env
}

func boolPtr(b bool) *bool { return &b }

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected directory to exist: %s", path)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("expected %s to contain %q", path, substr)
	}
}

// options scaffolds target inside the environment's working directory with
// every prompt answered by flags.
func options(env *testEnv, target string, git, install, router bool) scaffold.Options {
	return scaffold.Options{
		Args:    []string{target},
		Cwd:     env.Cwd,
		Git:     boolPtr(git),
		Install: boolPtr(install),
		Router:  boolPtr(router),
	}
}
