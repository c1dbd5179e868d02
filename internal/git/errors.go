package git

import (
	"fmt"

	"github.com/mrdocs/mrdocs/internal/errors"
)

// WrappedError provides additional context for errors
type WrappedError struct {
	Err     error  // Original error
	Op      string // Operation that failed
	Context string // Additional context
}

func (e *WrappedError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Context, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WrappedError) Unwrap() error {
	return e.Err
}

// Git operation errors
var (
	ErrCommandSpawn = errors.New("failed to spawn git command")
	ErrGitClone     = errors.New("failed to complete git clone")
	ErrGitFetch     = errors.New("failed to complete git fetch")
	ErrNoWorkDir    = errors.New("working directory not set")
	ErrNotRepo      = errors.New("not a git repository")
	ErrReadFile     = errors.New("failed to read file at revision")
)
