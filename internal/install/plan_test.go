package install

import (
	"strings"
	"testing"

	"github.com/frontkit-labs/frontkit/internal/pkgmanager"
)

func TestBuildPlanBaseOnly(t *testing.T) {
	tests := []struct {
		manager pkgmanager.Manager
		want    string
	}{
		{pkgmanager.NPM, "npm install"},
		{pkgmanager.PNPM, "pnpm install"},
		{pkgmanager.Bun, "bun install"},
		{pkgmanager.Yarn, "yarn add"},
	}

	for _, tt := range tests {
		t.Run(tt.manager.String(), func(t *testing.T) {
			plan := BuildPlan(tt.manager, false)
			got := plan.Strings()
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("BuildPlan(%s, false) = %v, want [%s]", tt.manager, got, tt.want)
			}
		})
	}
}

func TestBuildPlanWithAddon(t *testing.T) {
	tests := []struct {
		manager pkgmanager.Manager
		want    []string
	}{
		{pkgmanager.Yarn, []string{
			"yarn add",
			"yarn add @tanstack/react-router",
			"yarn add -D @tanstack/router-devtools",
		}},
		{pkgmanager.PNPM, []string{
			"pnpm install",
			"pnpm add @tanstack/react-router",
			"pnpm add -D @tanstack/router-devtools",
		}},
		{pkgmanager.Bun, []string{
			"bun install",
			"bun add @tanstack/react-router",
			"bun add -d @tanstack/router-devtools",
		}},
		{pkgmanager.NPM, []string{
			"npm install",
			"npm install @tanstack/react-router",
			"npm install --save-dev @tanstack/router-devtools",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.manager.String(), func(t *testing.T) {
			got := BuildPlan(tt.manager, true).Strings()
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("BuildPlan(%s, true) =\n  %v\nwant\n  %v", tt.manager, got, tt.want)
			}
		})
	}
}

func TestDevFlag(t *testing.T) {
	want := map[pkgmanager.Manager]string{
		pkgmanager.NPM:  "--save-dev",
		pkgmanager.Yarn: "-D",
		pkgmanager.PNPM: "-D",
		pkgmanager.Bun:  "-d",
	}
	for m, flag := range want {
		if got := DevFlag(m); got != flag {
			t.Errorf("DevFlag(%s) = %q, want %q", m, got, flag)
		}
	}
}
