// Package prompt abstracts the interactive questions asked while
// scaffolding. Terminal reads line-based answers from a reader; Scripted
// replays canned answers in tests. Both report a cancelled prompt as
// ErrCancelled.
package prompt
