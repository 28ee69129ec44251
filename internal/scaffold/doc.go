// Package scaffold sequences a create-frontkit run: resolve and validate the
// target, collect options, materialize the template, then the best-effort
// steps (router add-on, git init, dependency install) and the next-steps
// summary. Only cancelled prompts, a non-empty target and a failed template
// copy abort the run; every later failure is reported and skipped.
package scaffold
