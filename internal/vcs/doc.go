// Package vcs initializes a git repository in a freshly scaffolded project.
package vcs
