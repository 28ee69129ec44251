package pkgmanager

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Source records which signal produced a detection.
type Source string

// Detection sources.
const (
	SourceUserAgent Source = "user-agent"
	SourceLockfile  Source = "lockfile"
	SourceDefault   Source = "default"
	SourceOverride  Source = "override"
)

// lockfiles are probed in this order.
var lockfiles = []struct {
	name    string
	manager Manager
}{
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"bun.lock", Bun},
}

// Detection is the outcome of a detection run.
type Detection struct {
	Manager Manager
	Version *semver.Version // nil unless the user agent carried one
	Source  Source
}

// Detector chooses a package manager from explicit inputs. It never reads
// process state itself: the caller passes the user-agent hint and directory.
type Detector struct {
	FS     afero.Fs
	Logger zerolog.Logger
}

// NewDetector returns a Detector over the real filesystem.
func NewDetector(logger zerolog.Logger) *Detector {
	return &Detector{FS: afero.NewOsFs(), Logger: logger}
}

// Detect returns the package manager for the run. It never fails.
func (d *Detector) Detect(hint, cwd string) Manager {
	return d.DetectWithSource(hint, cwd).Manager
}

// DetectWithSource is Detect plus the signal that decided it.
func (d *Detector) DetectWithSource(hint, cwd string) Detection {
	if m, ok := managerFromHint(hint); ok {
		det := Detection{Manager: m, Source: SourceUserAgent}
		if uaManager, v, ok := ParseUserAgent(hint); ok && uaManager == m {
			det.Version = v
		}
		d.Logger.Debug().Str("manager", m.String()).Str("hint", hint).Msg("package manager from user agent")
		return det
	}

	fsys := d.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	for _, lf := range lockfiles {
		path := filepath.Join(cwd, lf.name)
		_, err := fsys.Stat(path)
		if err == nil {
			d.Logger.Debug().Str("manager", lf.manager.String()).Str("lockfile", path).Msg("package manager from lockfile")
			return Detection{Manager: lf.manager, Source: SourceLockfile}
		}
		if !errors.Is(err, fs.ErrNotExist) {
			d.Logger.Debug().Err(err).Str("lockfile", path).Msg("lockfile probe failed, using npm")
			break
		}
	}

	return Detection{Manager: NPM, Source: SourceDefault}
}
