package pkgmanager

import (
	"fmt"
	"strings"
)

// Manager identifies a supported package manager.
type Manager string

// Supported package managers.
const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
	Bun  Manager = "bun"
)

// All lists the supported managers in a stable order.
var All = []Manager{NPM, Yarn, PNPM, Bun}

func (m Manager) String() string { return string(m) }

// Parse converts a user-supplied name into a Manager.
func Parse(name string) (Manager, error) {
	m := Manager(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range All {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown package manager %q: supported managers are npm, yarn, pnpm and bun", name)
}

// RunScript returns the argv that runs a package.json script with this manager.
func (m Manager) RunScript(script string) []string {
	return []string{string(m), "run", script}
}
