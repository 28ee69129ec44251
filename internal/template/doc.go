// Package template materializes the bundled project skeleton into a target
// directory. It refuses non-empty targets, filters dependency caches and
// lockfiles out of the copy, and turns the staged git-ignore.txt into a
// real .gitignore. A failed copy is not rolled back.
package template
