// Package install turns a package manager and add-on selection into the
// ordered dependency commands for a new project, and runs them through an
// execx.Runner, stopping at the first failure.
package install
