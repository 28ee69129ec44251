package vcs

import (
	"context"
	"errors"
	"fmt"

	"github.com/frontkit-labs/frontkit/internal/execx"
	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
)

// ErrGitInit marks a failed repository initialization.
var ErrGitInit = errors.New("git init failed")

// Method records how a repository was created.
type Method string

// Initialization methods.
const (
	MethodCLI   Method = "git"
	MethodGoGit  Method = "go-git"
)

// Initializer runs "git init" through a Runner. When the git binary is not
// on PATH it creates the repository in-process with go-git instead.
type Initializer struct {
	Runner execx.Runner
	Logger zerolog.Logger
}

// Init creates a repository in dir.
func (i *Initializer) Init(ctx context.Context, dir string) (Method, error) {
	_, err := i.Runner.Run(ctx, "git", []string{"init"}, execx.Options{Dir: dir})
	if err == nil {
		return MethodCLI, nil
	}
	if !execx.IsNotFound(err) {
		return "", fmt.Errorf("%w: %w", ErrGitInit, err)
	}

	i.Logger.Debug().Str("dir", dir).Msg("git binary not found, initializing with go-git")
	if _, err := git.PlainInit(dir, false); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGitInit, err)
	}
	return MethodGoGit, nil
}
