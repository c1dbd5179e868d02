// Package fetch clones the repositories of components that could not be found locally.
package fetch

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/gofrs/flock"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/internal/errors/catalog"
	"github.com/mrdocs/mrdocs/internal/git"
	"github.com/mrdocs/mrdocs/internal/telemetry"
	"github.com/mrdocs/mrdocs/pkg/log"
)

const (
	// LockFile is created in the destination while repositories are cloned into it.
	LockFile = ".mrdocs-fetch.lock"

	DefaultConcurrency = 4

	cloneDepth   = 1
	destDirPerms = 0o755
)

// Cloner clones url into dir.
type Cloner interface {
	Clone(ctx context.Context, url, dir string) error
}

// GitCloner clones shallowly with the git binary.
type GitCloner struct {
	runner *git.Runner
}

// NewGitCloner locates the git binary.
func NewGitCloner() (*GitCloner, error) {
	runner, err := git.NewRunner()
	if err != nil {
		return nil, err
	}

	return &GitCloner{runner: runner}, nil
}

// Clone runs `git clone --depth 1 url dir`.
func (c *GitCloner) Clone(ctx context.Context, url, dir string) error {
	return c.runner.WithWorkDir(dir).Clone(ctx, url, cloneDepth, "")
}

// Result lists repository names by outcome, each sorted.
type Result struct {
	Cloned  []string
	Present []string
	// Skipped are repositories none of whose missing specs declare a git URL.
	Skipped []string
	Failed  []string
}

// Fetcher clones missing repositories into a destination directory.
type Fetcher struct {
	cloner      Cloner
	dest        string
	concurrency int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithCloner replaces the git cloner.
func WithCloner(cloner Cloner) Option {
	return func(f *Fetcher) {
		f.cloner = cloner
	}
}

// WithConcurrency limits the number of clones running at once.
func WithConcurrency(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// New returns a Fetcher cloning into dest.
func New(dest string, opts ...Option) (*Fetcher, error) {
	if dest == "" {
		return nil, errors.Errorf("fetch destination is not set")
	}

	f := &Fetcher{dest: dest, concurrency: DefaultConcurrency}

	for _, opt := range opts {
		opt(f)
	}

	if f.cloner == nil {
		cloner, err := NewGitCloner()
		if err != nil {
			return nil, err
		}

		f.cloner = cloner
	}

	return f, nil
}

type task struct {
	name string
	url  string
}

// plan groups specs by repository name. The first git URL declared for a repository wins.
func plan(specs component.Specs) (tasks []task, skipped []string) {
	urls := map[string]string{}
	order := []string{}

	for _, spec := range specs {
		name := spec.RepositoryName()
		if _, seen := urls[name]; !seen {
			order = append(order, name)
			urls[name] = ""
		}

		if urls[name] == "" && spec.GitURL != "" {
			urls[name] = spec.GitURL
		}
	}

	for _, name := range order {
		if urls[name] == "" {
			skipped = append(skipped, name)
			continue
		}

		tasks = append(tasks, task{name: name, url: urls[name]})
	}

	return tasks, skipped
}

// Fetch clones the repository of every spec, once per repository, holding a file lock on the destination.
// Failed clones do not stop the others; they are returned together as a MultiError of ErrCloneFailure.
func (f *Fetcher) Fetch(ctx context.Context, l log.Logger, specs component.Specs) (*Result, error) {
	if err := os.MkdirAll(f.dest, destDirPerms); err != nil {
		return nil, errors.New(err)
	}

	lock := flock.New(filepath.Join(f.dest, LockFile))

	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.New(err)
	}

	if !locked {
		return nil, errors.Errorf("destination %s is locked by another fetch", f.dest)
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			l.Warnf("failed to release fetch lock: %v", unlockErr)
		}
	}()

	tasks, skipped := plan(specs)

	for _, name := range skipped {
		l.Warnf("Repository %s has no git_url, skipping", name)
	}

	outcomes := xsync.NewMapOf[string, error]()
	present := xsync.NewMapOf[string, struct{}]()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for _, t := range tasks {
		g.Go(func() error {
			dir := filepath.Join(f.dest, t.name)

			if _, err := os.Stat(dir); err == nil {
				l.Infof("Repository %s already present in %s", t.name, f.dest)
				present.Store(t.name, struct{}{})

				return nil
			}

			err := telemetry.TelemeterFromContext(ctx).Collect(ctx, "fetch_clone", map[string]any{
				"repository": t.name,
				"url":        t.url,
			}, func(ctx context.Context) error {
				l.Infof("Cloning %s into %s", t.url, dir)
				return f.cloner.Clone(ctx, t.url, dir)
			})

			outcomes.Store(t.name, err)

			return nil
		})
	}

	_ = g.Wait()

	result := &Result{Skipped: skipped}
	var errs *errors.MultiError

	present.Range(func(name string, _ struct{}) bool {
		result.Present = append(result.Present, name)
		return true
	})

	outcomes.Range(func(name string, err error) bool {
		if err != nil {
			result.Failed = append(result.Failed, name)
			return true
		}

		result.Cloned = append(result.Cloned, name)

		return true
	})

	slices.Sort(result.Cloned)
	slices.Sort(result.Present)
	slices.Sort(result.Skipped)
	slices.Sort(result.Failed)

	for _, name := range result.Failed {
		cause, _ := outcomes.Load(name)
		url := ""

		for _, t := range tasks {
			if t.name == name {
				url = t.url
			}
		}

		errs = errs.Append(catalog.ErrCloneFailure{RepoURL: url, Cause: cause})
	}

	return result, errs.ErrorOrNil()
}
