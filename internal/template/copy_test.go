package template

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestCopyTreeWithoutPredicate(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeTree(t, mem, "/src", map[string]string{
		"a.txt":         "a",
		"yarn.lock":     "",
		"deep/er/b.txt": "b",
	})

	files, err := CopyTree(mem, "/src", "/dst", nil)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("copied %d files, want 3: %v", len(files), files)
	}

	data, err := afero.ReadFile(mem, "/dst/deep/er/b.txt")
	if err != nil || string(data) != "b" {
		t.Errorf("deep/er/b.txt = %q, %v", data, err)
	}
}

func TestCopyTreePredicateSeesRelativePaths(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeTree(t, mem, "/src", map[string]string{
		"keep/a.txt": "a",
		"skip/b.txt": "b",
	})

	var seen []string
	include := func(rel string) bool {
		seen = append(seen, rel)
		return !strings.HasPrefix(rel, "skip")
	}

	if _, err := CopyTree(mem, "/src", "/dst", include); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	if ok, _ := afero.Exists(mem, "/dst/skip"); ok {
		t.Error("rejected directory should not be created")
	}
	for _, rel := range seen {
		if filepath.IsAbs(rel) {
			t.Errorf("predicate received absolute path %q", rel)
		}
	}
}

func TestCopyTreeMissingSource(t *testing.T) {
	if _, err := CopyTree(afero.NewMemMapFs(), "/nope", "/dst", nil); err == nil {
		t.Error("expected error for missing source")
	}
}
