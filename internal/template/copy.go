package template

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Predicate decides whether the entry at a template-relative path is copied.
type Predicate func(relPath string) bool

// CopyTree recursively copies src into dst on fsys. Entries rejected by
// include are skipped entirely, directories included. A nil include copies
// everything. It returns the template-relative paths of the copied files.
func CopyTree(fsys afero.Fs, src, dst string, include Predicate) ([]string, error) {
	var copied []string
	err := copyDir(fsys, src, dst, "", include, &copied)
	return copied, err
}

func copyDir(fsys afero.Fs, src, dst, rel string, include Predicate, copied *[]string) error {
	srcInfo, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(dst, srcInfo.Mode().Perm()|0700); err != nil {
		return err
	}

	entries, err := afero.ReadDir(fsys, src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		entryRel := filepath.Join(rel, entry.Name())
		if include != nil && !include(entryRel) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			if err := copyDir(fsys, srcPath, dstPath, entryRel, include, copied); err != nil {
				return err
			}
		case entry.Mode().IsRegular():
			if err := copyFile(fsys, srcPath, dstPath, entry.Mode().Perm()); err != nil {
				return fmt.Errorf("%s: %w", entryRel, err)
			}
			*copied = append(*copied, entryRel)
		}
		// Skip symlinks and other special files during copy.
	}

	return nil
}

// copyFile streams src to dst, preserving permissions.
func copyFile(fsys afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
