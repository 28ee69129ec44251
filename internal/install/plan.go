package install

import (
	"github.com/frontkit-labs/frontkit/internal/addon"
	"github.com/frontkit-labs/frontkit/internal/execx"
	"github.com/frontkit-labs/frontkit/internal/pkgmanager"
)

// Command is one planned invocation.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return execx.CommandLine(c.Name, c.Args)
}

// Plan is the ordered command sequence for one run.
type Plan struct {
	Manager  pkgmanager.Manager
	Commands []Command
}

// Strings renders every command of the plan.
func (p *Plan) Strings() []string {
	out := make([]string, len(p.Commands))
	for i, c := range p.Commands {
		out[i] = c.String()
	}
	return out
}

// BuildPlan returns the install commands for manager. With withAddon the
// router add-on's production and development packages follow the base step.
func BuildPlan(manager pkgmanager.Manager, withAddon bool) *Plan {
	plan := &Plan{
		Manager:  manager,
		Commands: []Command{baseCommand(manager)},
	}
	if withAddon {
		plan.Commands = append(plan.Commands,
			addCommand(manager, false, addon.Packages),
			addCommand(manager, true, addon.DevPackages),
		)
	}
	return plan
}

// baseCommand installs everything package.json declares. yarn gets a bare
// "add", matching what generated projects have always used.
func baseCommand(m pkgmanager.Manager) Command {
	if m == pkgmanager.Yarn {
		return Command{Name: m.String(), Args: []string{"add"}}
	}
	return Command{Name: m.String(), Args: []string{"install"}}
}

func addCommand(m pkgmanager.Manager, dev bool, packages []string) Command {
	args := []string{addVerb(m)}
	if dev {
		args = append(args, DevFlag(m))
	}
	args = append(args, packages...)
	return Command{Name: m.String(), Args: args}
}

func addVerb(m pkgmanager.Manager) string {
	if m == pkgmanager.NPM {
		return "install"
	}
	return "add"
}

// DevFlag returns the manager's flag for a development-only dependency.
func DevFlag(m pkgmanager.Manager) string {
	switch m {
	case pkgmanager.NPM:
		return "--save-dev"
	case pkgmanager.Bun:
		return "-d"
	default:
		return "-D"
	}
}
