package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/config"
	"github.com/frontkit-labs/frontkit/internal/execx"
	"github.com/frontkit-labs/frontkit/internal/logging"
	"github.com/frontkit-labs/frontkit/internal/pkgmanager"
	"github.com/frontkit-labs/frontkit/internal/prompt"
	"github.com/frontkit-labs/frontkit/internal/scaffold"
	"github.com/frontkit-labs/frontkit/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagGit            bool
	flagInstall        bool
	flagRouter         bool
	flagYes            bool
	flagPackageManager string
	flagTemplatesDir   string
	flagVerbose        int
	flagNoColor        bool
)

// errReported marks a failure the scaffolder has already shown to the user.
type errReported struct{ err error }

func (e *errReported) Error() string { return e.err.Error() }
func (e *errReported) Unwrap() error { return e.err }

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [target-path]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies a ready-to-run front-end project into a new directory, then
optionally adds the router add-on, initializes git and installs dependencies
with the package manager that launched it.

Examples:
  npm create frontkit@latest my-app
  pnpm create frontkit my-app --router --yes
  ` + branding.CLIName() + ` . --git=false --install=false`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runScaffold,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flagGit, "git", true, "Initialize a git repository (skips the prompt)")
	f.BoolVar(&flagInstall, "install", true, "Install dependencies (skips the prompt)")
	f.BoolVar(&flagRouter, "router", false, "Add the router add-on (skips the prompt)")
	f.BoolVarP(&flagYes, "yes", "y", false, "Accept the default for every remaining prompt")
	f.StringVar(&flagPackageManager, "package-manager", "", "Force a package manager: npm, yarn, pnpm or bun")
	f.StringVar(&flagTemplatesDir, "templates-dir", "", "Directory holding the base template and add-ons")

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flagVerbose, "verbose", "v", "Increase log verbosity (-v, -vv, -vvv)")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	// Flags override the config file and FRONTKIT_* environment variables.
	_ = viper.BindPFlag(config.KeyTemplatesDir, f.Lookup("templates-dir"))
	_ = viper.BindPFlag(config.KeyPackageManager, f.Lookup("package-manager"))
}

func runScaffold(cmd *cobra.Command, args []string) error {
	logger := logging.Setup(cmd.ErrOrStderr(), flagVerbose)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	opts, err := optionsFromFlags(cmd, args, cwd, os.Getenv(branding.UserAgentEnv()))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := &scaffold.Scaffolder{
		Prompter:     prompt.NewTerminal(cmd.InOrStdin(), out),
		Runner:       execx.ExecRunner{},
		FS:           afero.NewOsFs(),
		Reporter:     ui.New(out, flagNoColor),
		Logger:       logger,
		TemplatesDir: config.TemplatesDir(),
		Output:       installOutput(cmd.ErrOrStderr(), flagVerbose),
	}
	logger.Debug().
		Str("templates", s.TemplatesDir).
		Str("cwd", cwd).
		Strs("args", args).
		Msg("starting scaffold")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := s.Run(ctx, opts); err != nil {
		return &errReported{err: err}
	}
	return nil
}

// optionsFromFlags turns the parsed command line into scaffold options. Only
// flags the user actually set skip their prompt.
func optionsFromFlags(cmd *cobra.Command, args []string, cwd, userAgent string) (scaffold.Options, error) {
	opts := scaffold.Options{
		Args:      args,
		Cwd:       cwd,
		UserAgent: userAgent,
		Yes:       flagYes,
	}

	f := cmd.Flags()
	if f.Changed("git") {
		opts.Git = &flagGit
	}
	if f.Changed("install") {
		opts.Install = &flagInstall
	}
	if f.Changed("router") {
		opts.Router = &flagRouter
	}

	if name := config.PackageManager(); name != "" {
		m, err := pkgmanager.Parse(name)
		if err != nil {
			return opts, err
		}
		opts.PackageManager = m
	}
	return opts, nil
}

// installOutput streams package manager output when running verbosely.
func installOutput(w io.Writer, verbosity int) io.Writer {
	if verbosity > 0 {
		return w
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionLine() + "\n")

	err := rootCmd.Execute()
	var reported *errReported
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// ExitCode maps the error returned by Execute to a process exit status.
func ExitCode(err error) int {
	var reported *errReported
	if errors.As(err, &reported) {
		return scaffold.ExitCode(reported.err)
	}
	if err != nil {
		return 1
	}
	return 0
}
