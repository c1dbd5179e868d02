// Package catalog provides the typed errors raised while loading and building a documentation site.
package catalog

import (
	"fmt"
	"strings"
)

// ComponentsMissingError is returned when declared components could not be found
// in any lookup path and the build is not running in draft mode.
type ComponentsMissingError struct {
	// Names are the component names, sorted.
	Names []string
}

func (e ComponentsMissingError) Error() string {
	return fmt.Sprintf("components missing: [%s]", strings.Join(e.Names, " "))
}

// ConfigError is returned when a component declaration or site setting is malformed.
type ConfigError struct {
	File   string
	Field  string
	Reason string
	Index  int
}

func (e ConfigError) Error() string {
	where := e.File
	if where == "" {
		where = "configuration"
	}

	if e.Field == "" {
		return fmt.Sprintf("%s: %s", where, e.Reason)
	}

	return fmt.Sprintf("%s: components[%d].%s: %s", where, e.Index, e.Field, e.Reason)
}

// ErrRepositoryNotFound is returned when a repository cannot be found or accessed
type ErrRepositoryNotFound struct {
	Name  string
	Cause error
}

func (e ErrRepositoryNotFound) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("repository not found or cannot be accessed: %s (cause: %s)", e.Name, e.Cause)
	}

	return "repository not found or cannot be accessed: " + e.Name
}

func (e ErrRepositoryNotFound) Unwrap() error {
	return e.Cause
}

// ErrCloneFailure is returned when a repository clone operation fails
type ErrCloneFailure struct {
	RepoURL string
	Cause   error
}

func (e ErrCloneFailure) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to clone repository '%s': %s", e.RepoURL, e.Cause)
	}

	return "failed to clone repository '" + e.RepoURL + "'"
}

func (e ErrCloneFailure) Unwrap() error {
	return e.Cause
}

// Wrap wraps the given error with additional context
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf(format+": %w", append(args, err)...)
}
