// Package git provides the git operations mrdocs needs: reading repository metadata
// with go-git, and cloning or fetching through the git binary.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// Runner handles git command execution
type Runner struct {
	GitPath string
	WorkDir string
}

// NewRunner creates a new Runner instance
func NewRunner() (*Runner, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, &WrappedError{
			Op:      "git",
			Context: "git not found",
			Err:     ErrCommandSpawn,
		}
	}

	return &Runner{GitPath: gitPath}, nil
}

// WithWorkDir returns a new Runner with the specified working directory
func (g *Runner) WithWorkDir(workDir string) *Runner {
	copy := *g
	copy.WorkDir = workDir

	return &copy
}

// RequiresWorkDir returns an error if no working directory is set
func (g *Runner) RequiresWorkDir() error {
	if g.WorkDir == "" {
		return &WrappedError{
			Op:      "git",
			Context: "no working directory set",
			Err:     ErrNoWorkDir,
		}
	}

	return nil
}

// Clone clones repo into the working directory. A positive depth makes a shallow, single-branch clone.
func (g *Runner) Clone(ctx context.Context, repo string, depth int, branch string) error {
	if err := g.RequiresWorkDir(); err != nil {
		return err
	}

	args := []string{}

	if depth > 0 {
		args = append(args, "--depth", strconv.Itoa(depth), "--single-branch")
	}

	if branch != "" {
		args = append(args, "--branch", branch)
	}

	args = append(args, repo, g.WorkDir)

	if _, err := g.run(ctx, "", "clone", args...); err != nil {
		return &WrappedError{
			Op:      "git_clone",
			Context: err.Error(),
			Err:     ErrGitClone,
		}
	}

	return nil
}

// Fetch fetches ref from url into FETCH_HEAD of the repository in the working directory.
func (g *Runner) Fetch(ctx context.Context, url, ref string) error {
	if err := g.RequiresWorkDir(); err != nil {
		return err
	}

	if _, err := g.run(ctx, g.WorkDir, "fetch", url, ref); err != nil {
		return &WrappedError{
			Op:      "git_fetch",
			Context: err.Error(),
			Err:     ErrGitFetch,
		}
	}

	return nil
}

// Show returns the content of path at revision rev, e.g. `FETCH_HEAD`.
func (g *Runner) Show(ctx context.Context, rev, path string) ([]byte, error) {
	if err := g.RequiresWorkDir(); err != nil {
		return nil, err
	}

	out, err := g.run(ctx, g.WorkDir, "show", rev+":"+path)
	if err != nil {
		return nil, &WrappedError{
			Op:      "git_show",
			Context: err.Error(),
			Err:     ErrReadFile,
		}
	}

	return out, nil
}

// Run runs an arbitrary git subcommand in the working directory and returns its stdout.
func (g *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if err := g.RequiresWorkDir(); err != nil {
		return nil, err
	}

	out, err := g.run(ctx, g.WorkDir, name, args...)
	if err != nil {
		return nil, &WrappedError{
			Op:      "git_" + name,
			Context: err.Error(),
			Err:     ErrCommandSpawn,
		}
	}

	return out, nil
}

type commandError struct {
	stderr string
	err    error
}

func (e *commandError) Error() string {
	if e.stderr != "" {
		return e.stderr
	}

	return e.err.Error()
}

func (g *Runner) run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, g.GitPath, append([]string{name}, args...)...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &commandError{stderr: strings.TrimSpace(stderr.String()), err: err}
	}

	return stdout.Bytes(), nil
}

// RepoName extracts the repository name from a git URL
func RepoName(url string) string {
	url = strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")

	if idx := strings.LastIndexAny(url, "/:"); idx >= 0 {
		return url[idx+1:]
	}

	return url
}
