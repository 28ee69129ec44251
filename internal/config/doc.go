// Package config manages user-level settings stored at ~/.frontkit/config.yaml.
// It resolves the template root and the optional package manager override,
// layering flags, FRONTKIT_* environment variables and the config file.
package config
