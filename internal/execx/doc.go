// Package execx is the narrow process-running capability used by the git and
// dependency-install steps. ExecRunner runs real child processes; Recorder
// is an in-memory substitute that records invocations for tests.
package execx
