// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed; the hard defaults
// below apply when a key is missing from it.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	UserAgentEnv string `yaml:"user_agent_env"`
	GoModule     string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:      "create-frontkit",
			DisplayName:  "Frontkit",
			Description:  "Scaffold a new front-end application",
			HomeDir:      ".frontkit",
			EnvPrefix:    "FRONTKIT",
			UserAgentEnv: "npm_config_user_agent",
			GoModule:     "github.com/frontkit-labs/frontkit",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-frontkit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Frontkit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".frontkit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FRONTKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// UserAgentEnv names the variable through which the invoking package manager
// identifies itself (npm, yarn, pnpm and bun all set npm_config_user_agent).
func UserAgentEnv() string { load(); return defaults.UserAgentEnv }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("templates_dir") → "FRONTKIT_TEMPLATES_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
