package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/frontkit-labs/frontkit/internal/addon"
	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/execx"
	"github.com/frontkit-labs/frontkit/internal/install"
	"github.com/frontkit-labs/frontkit/internal/logging"
	"github.com/frontkit-labs/frontkit/internal/pkgmanager"
	"github.com/frontkit-labs/frontkit/internal/prompt"
	"github.com/frontkit-labs/frontkit/internal/template"
	"github.com/frontkit-labs/frontkit/internal/ui"
	"github.com/frontkit-labs/frontkit/internal/vcs"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// baseTemplate is the skeleton directory inside the templates root.
const baseTemplate = "base"

// Prompt texts, asked in this order.
const (
	questionTarget  = "Where should we create your project?"
	questionGit     = "Initialize a new git repository?"
	questionInstall = "Install dependencies?"
	questionRouter  = "Add the router add-on?"
)

// Options are the explicit inputs of a run. Nothing is read from the
// process environment.
type Options struct {
	Args      []string // positional arguments; Args[0] is the target path
	Cwd       string   // working directory, absolute
	UserAgent string   // package manager user-agent hint

	// Git, Install and Router skip their prompt when non-nil.
	Git     *bool
	Install *bool
	Router  *bool

	// Yes answers every remaining prompt with its default.
	Yes bool

	// PackageManager bypasses detection when set.
	PackageManager pkgmanager.Manager
}

// Result summarizes a finished run.
type Result struct {
	TargetDir string
	Detection pkgmanager.Detection

	// Selections made by flags or prompts.
	Git     bool
	Install bool
	Router  bool

	// What actually happened.
	GitInitialized bool
	Installed      bool
	RouterInjected bool

	Files     []string
	Warnings  []string
	NextSteps []string
	Trace     []State
}

// Scaffolder wires the collaborators of a run.
type Scaffolder struct {
	Prompter     prompt.Prompter
	Runner       execx.Runner
	FS           afero.Fs
	Reporter     *ui.Reporter
	Logger       zerolog.Logger
	TemplatesDir string

	// Output receives live output of install commands when set.
	Output io.Writer
}

// ExitCode maps the error returned by Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Run performs one scaffold. A non-nil error is fatal and has already been
// reported; the Result is still returned with the states visited so far.
func (s *Scaffolder) Run(ctx context.Context, opts Options) (*Result, error) {
	log := logging.Component(s.Logger, "scaffold")
	fsys := s.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	res := &Result{}
	enter := func(st State) {
		res.Trace = append(res.Trace, st)
		log.Debug().Stringer("state", st).Msg("entering")
	}

	s.Reporter.Intro(branding.CLIName())

	// Target.
	enter(StateResolvingTarget)
	target, err := s.resolveTarget(opts)
	if err != nil {
		return res, s.fatal(err)
	}
	res.TargetDir = target

	enter(StateValidatingTarget)
	materializer := &template.Materializer{FS: fsys, Logger: log}
	if err := materializer.CheckTarget(target); err != nil {
		return res, s.fatal(err)
	}

	// Options.
	enter(StateCollectingOptions)
	res.Detection = s.detect(fsys, opts, log)
	if res.Git, err = s.confirm(questionGit, true, opts.Git, opts.Yes); err != nil {
		return res, s.fatal(err)
	}
	if res.Install, err = s.confirm(questionInstall, true, opts.Install, opts.Yes); err != nil {
		return res, s.fatal(err)
	}
	if res.Router, err = s.confirm(questionRouter, false, opts.Router, opts.Yes); err != nil {
		return res, s.fatal(err)
	}

	// Template.
	enter(StateMaterializing)
	s.Reporter.Start("Scaffolding project in " + target)
	mres, err := materializer.Materialize(filepath.Join(s.TemplatesDir, baseTemplate), target)
	if err != nil {
		return res, s.fatal(err)
	}
	res.Files = mres.Files
	for _, w := range mres.Warnings {
		s.warn(res, log, w, nil)
	}
	s.Reporter.Done(fmt.Sprintf("Copied %d files", len(mres.Files)))

	// Best-effort steps from here on.
	if res.Router {
		enter(StateInjectingAddon)
		injector := &addon.Injector{FS: fsys, Logger: log}
		if _, err := injector.Inject(addon.Root(s.TemplatesDir), target); err != nil {
			s.warn(res, log, "Router add-on skipped: "+err.Error(), err)
		} else {
			res.RouterInjected = true
			s.Reporter.Done("Added the router add-on")
		}
	}

	if res.Git {
		enter(StateGitInit)
		s.Reporter.Start("Initializing git repository")
		gi := &vcs.Initializer{Runner: s.Runner, Logger: log}
		if method, err := gi.Init(ctx, target); err != nil {
			s.warn(res, log, "git init failed: "+err.Error(), err)
		} else {
			res.GitInitialized = true
			s.Reporter.Done(fmt.Sprintf("Initialized git repository (%s)", method))
		}
	}

	if res.Install {
		enter(StateInstalling)
		manager := res.Detection.Manager
		plan := install.BuildPlan(manager, res.RouterInjected)
		s.Reporter.Start(fmt.Sprintf("Installing dependencies with %s", manager))
		ex := &install.Executor{Runner: s.Runner, Logger: log, Output: s.Output}
		if err := ex.Execute(ctx, plan, target); err != nil {
			s.warn(res, log, "Dependency installation failed: "+err.Error(), err)
		} else {
			res.Installed = true
			s.Reporter.Done("Installed dependencies")
		}
	}

	enter(StateReportingNextSteps)
	res.NextSteps = NextSteps(opts.Cwd, target, res.Detection.Manager, res.Installed)
	s.Reporter.NextSteps(res.NextSteps)

	enter(StateTerminal)
	s.Reporter.Outro("Project ready")
	return res, nil
}

// resolveTarget returns the absolute target directory.
func (s *Scaffolder) resolveTarget(opts Options) (string, error) {
	var raw string
	if len(opts.Args) > 0 {
		raw = opts.Args[0]
	} else {
		answer, err := s.Prompter.Text(questionTarget, ".")
		if err != nil {
			return "", err
		}
		raw = answer
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", prompt.ErrCancelled
	}
	if filepath.IsAbs(raw) {
		return filepath.Clean(raw), nil
	}
	return filepath.Join(opts.Cwd, raw), nil
}

func (s *Scaffolder) detect(fsys afero.Fs, opts Options, log zerolog.Logger) pkgmanager.Detection {
	var det pkgmanager.Detection
	if opts.PackageManager != "" {
		det = pkgmanager.Detection{Manager: opts.PackageManager, Source: pkgmanager.SourceOverride}
	} else {
		d := &pkgmanager.Detector{FS: fsys, Logger: log}
		det = d.DetectWithSource(opts.UserAgent, opts.Cwd)
	}

	label := det.Manager.String()
	if det.Version != nil {
		label += " " + det.Version.String()
	}
	log.Info().Str("manager", det.Manager.String()).Str("source", string(det.Source)).Msg("package manager selected")
	s.Reporter.Info(fmt.Sprintf("Using %s (%s)", label, det.Source))
	return det
}

// confirm resolves a yes/no option from a flag, --yes, or a prompt.
func (s *Scaffolder) confirm(question string, defaultValue bool, preset *bool, yes bool) (bool, error) {
	if preset != nil {
		return *preset, nil
	}
	if yes {
		return defaultValue, nil
	}
	return s.Prompter.Confirm(question, defaultValue)
}

// fatal reports err and returns it.
func (s *Scaffolder) fatal(err error) error {
	switch {
	case errors.Is(err, prompt.ErrCancelled):
		s.Reporter.Error("Operation cancelled")
	default:
		s.Reporter.Error(err.Error())
	}
	s.Logger.Info().Err(err).Msg("scaffold aborted")
	return err
}

func (s *Scaffolder) warn(res *Result, log zerolog.Logger, msg string, err error) {
	res.Warnings = append(res.Warnings, msg)
	s.Reporter.Warn(msg)
	ev := log.Warn()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
