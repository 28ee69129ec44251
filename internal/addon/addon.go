package addon

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/frontkit-labs/frontkit/internal/template"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ID names the router add-on; its tree lives at <templates>/addons/<ID>.
const ID = "router"

const (
	// Destination is where the add-on tree lands inside the project.
	Destination = "src/router"

	// EntryPoint is the project file replaced on injection.
	EntryPoint = "src/main.tsx"
)

// Dependencies the add-on needs in the generated project.
var (
	Packages    = []string{"@tanstack/react-router"}
	DevPackages = []string{"@tanstack/router-devtools"}
)

// entryPointSource replaces EntryPoint in full.
const entryPointSource = `import { StrictMode } from 'react'
import { createRoot } from 'react-dom/client'
import { RouterProvider } from '@tanstack/react-router'
import { router } from './router'
import './index.css'

createRoot(document.getElementById('root')!).render(
  <StrictMode>
    <RouterProvider router={router} />
  </StrictMode>,
)
`

// ErrAddonMissing means the add-on tree is not installed next to the tool.
var ErrAddonMissing = errors.New("add-on not found")

// MissingError reports the add-on root that could not be found.
type MissingError struct {
	Root string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("add-on %q not found at %s; the project was created without it", ID, e.Root)
}

func (e *MissingError) Is(target error) bool { return target == ErrAddonMissing }

// Root returns the add-on directory inside a template root.
func Root(templatesDir string) string {
	return filepath.Join(templatesDir, "addons", ID)
}

// Result describes an injection.
type Result struct {
	Files      []string // add-on files copied, relative to Destination
	EntryPoint string   // absolute path of the rewritten entry point
}

// Injector copies the add-on into a project.
type Injector struct {
	FS     afero.Fs
	Logger zerolog.Logger
}

// NewInjector returns an Injector over the real filesystem.
func NewInjector(logger zerolog.Logger) *Injector {
	return &Injector{FS: afero.NewOsFs(), Logger: logger}
}

// Inject copies addonRoot into targetDir/Destination and rewrites the
// entry point. It returns a *MissingError, and touches nothing, when
// addonRoot does not exist.
func (i *Injector) Inject(addonRoot, targetDir string) (*Result, error) {
	fsys := i.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	info, err := fsys.Stat(addonRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingError{Root: addonRoot}
		}
		return nil, fmt.Errorf("checking add-on %s: %w", addonRoot, err)
	}
	if !info.IsDir() {
		return nil, &MissingError{Root: addonRoot}
	}

	dst := filepath.Join(targetDir, filepath.FromSlash(Destination))
	files, err := template.CopyTree(fsys, addonRoot, dst, nil)
	if err != nil {
		return nil, fmt.Errorf("copying add-on into %s: %w", dst, err)
	}

	entry := filepath.Join(targetDir, filepath.FromSlash(EntryPoint))
	if err := fsys.MkdirAll(filepath.Dir(entry), 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Dir(entry), err)
	}
	if err := afero.WriteFile(fsys, entry, []byte(entryPointSource), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", entry, err)
	}

	i.Logger.Debug().Int("files", len(files)).Str("entry", entry).Msg("router add-on injected")
	return &Result{Files: files, EntryPoint: entry}, nil
}
