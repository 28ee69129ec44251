package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/frontkit-labs/frontkit/internal/pkgmanager"
)

// NextSteps lists the commands left for the user: cd into the project when
// it is not the working directory, install when that did not happen, and
// start the dev server.
func NextSteps(cwd, target string, manager pkgmanager.Manager, installed bool) []string {
	var steps []string

	if rel := relativeTarget(cwd, target); rel != "." {
		steps = append(steps, "cd "+quote(rel))
	}
	if !installed {
		steps = append(steps, manager.String()+" install")
	}
	steps = append(steps, strings.Join(manager.RunScript("dev"), " "))
	return steps
}

func relativeTarget(cwd, target string) string {
	rel, err := filepath.Rel(cwd, target)
	if err != nil {
		return target
	}
	return rel
}

func quote(path string) string {
	if strings.ContainsAny(path, " \t'\"") {
		return `"` + strings.ReplaceAll(path, `"`, `\"`) + `"`
	}
	return path
}
