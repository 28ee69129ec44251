package template

import (
	"path"
	"path/filepath"
	"strings"
)

// dependencyCacheDir is never copied out of the template.
const dependencyCacheDir = "node_modules"

// excludedSuffixes drops lockfiles. ".yaml" also drops any other YAML file
// in the template; templates must not rely on shipping one.
var excludedSuffixes = []string{"lock.json", ".lock", ".yaml"}

// ShouldCopy reports whether the template entry at relPath is copied.
func ShouldCopy(relPath string) bool {
	base := path.Base(filepath.ToSlash(relPath))
	if base == dependencyCacheDir {
		return false
	}
	for _, suffix := range excludedSuffixes {
		if strings.HasSuffix(base, suffix) {
			return false
		}
	}
	return true
}
