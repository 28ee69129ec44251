package template

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// StagedIgnoreFile holds the project's .gitignore inside the template,
	// named so the template's own tooling does not treat it as an ignore file.
	StagedIgnoreFile = "git-ignore.txt"

	// GitIgnoreFile is the name StagedIgnoreFile is materialized as.
	GitIgnoreFile = ".gitignore"

	// PackageJSON is validated after the copy.
	PackageJSON = "package.json"
)

// Result holds the outcome of a materialization.
type Result struct {
	TargetDir string
	Files     []string
	Warnings  []string
}

// Materializer copies a template tree into a target directory.
type Materializer struct {
	FS     afero.Fs
	Logger zerolog.Logger

	// Filter overrides ShouldCopy when set.
	Filter Predicate
}

// NewMaterializer returns a Materializer over the real filesystem.
func NewMaterializer(logger zerolog.Logger) *Materializer {
	return &Materializer{FS: afero.NewOsFs(), Logger: logger}
}

func (m *Materializer) fs() afero.Fs {
	if m.FS == nil {
		m.FS = afero.NewOsFs()
	}
	return m.FS
}

// CheckTarget fails with a *ConflictError when dir exists and has entries.
// A missing directory is fine; it is created by Materialize.
func (m *Materializer) CheckTarget(dir string) error {
	entries, err := afero.ReadDir(m.fs(), dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		// Not a readable directory: let the copy step surface the real error.
		m.Logger.Debug().Err(err).Str("dir", dir).Msg("target not listable")
		return nil
	}
	if len(entries) > 0 {
		return &ConflictError{Dir: dir, Entries: len(entries)}
	}
	return nil
}

// Materialize copies templateRoot into targetDir. The target is checked
// before anything is written; after a *CopyError the partial copy is left
// in place.
func (m *Materializer) Materialize(templateRoot, targetDir string) (*Result, error) {
	if err := m.CheckTarget(targetDir); err != nil {
		return nil, err
	}

	fsys := m.fs()

	info, err := fsys.Stat(templateRoot)
	if err != nil {
		return nil, &CopyError{Src: templateRoot, Dst: targetDir, Err: err}
	}
	if !info.IsDir() {
		return nil, &CopyError{Src: templateRoot, Dst: targetDir, Err: errors.New("template root is not a directory")}
	}

	if err := fsys.MkdirAll(targetDir, 0755); err != nil {
		return nil, &CopyError{Src: templateRoot, Dst: targetDir, Err: err}
	}

	filter := m.Filter
	if filter == nil {
		filter = ShouldCopy
	}

	files, err := CopyTree(fsys, templateRoot, targetDir, filter)
	if err != nil {
		return nil, &CopyError{Src: templateRoot, Dst: targetDir, Err: err}
	}
	m.Logger.Debug().Int("files", len(files)).Str("target", targetDir).Msg("template copied")

	result := &Result{TargetDir: targetDir, Files: files}

	renamed, err := m.restoreGitIgnore(targetDir)
	if err != nil {
		return nil, &CopyError{Src: filepath.Join(targetDir, StagedIgnoreFile), Dst: filepath.Join(targetDir, GitIgnoreFile), Err: err}
	}
	if renamed {
		result.Files = replaceFile(result.Files, StagedIgnoreFile, GitIgnoreFile)
	}

	result.Warnings = append(result.Warnings, m.validatePackageJSON(targetDir)...)
	return result, nil
}

// restoreGitIgnore copies the staged ignore file's content to .gitignore and
// removes the staged file. Content is copied rather than renamed so the step
// works across volumes.
func (m *Materializer) restoreGitIgnore(targetDir string) (bool, error) {
	fsys := m.fs()
	staged := filepath.Join(targetDir, StagedIgnoreFile)

	data, err := afero.ReadFile(fsys, staged)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	if err := afero.WriteFile(fsys, filepath.Join(targetDir, GitIgnoreFile), data, 0644); err != nil {
		return false, err
	}
	if err := fsys.Remove(staged); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Materializer) validatePackageJSON(targetDir string) []string {
	path := filepath.Join(targetDir, PackageJSON)
	data, err := afero.ReadFile(m.fs(), path)
	if err != nil {
		return []string{"template has no package.json: " + err.Error()}
	}

	res, err := ValidatePackageJSON(data)
	if err != nil {
		return []string{"could not validate package.json: " + err.Error()}
	}

	var warnings []string
	for _, issue := range res.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		warnings = append(warnings, "package.json "+msg)
	}
	return warnings
}

func replaceFile(files []string, old, replacement string) []string {
	for i, f := range files {
		if f == old {
			files[i] = replacement
		}
	}
	return files
}
