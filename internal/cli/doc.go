// Package cli defines the Cobra command tree for create-frontkit. The root
// command scaffolds a project; the version and config subcommands report
// build info and manage user settings. Commands only parse flags and build
// collaborators, the scaffold package does the work.
package cli
