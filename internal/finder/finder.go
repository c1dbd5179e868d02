// Package finder resolves repository names to directories using an ordered list of lookup paths.
package finder

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/mrdocs/mrdocs/internal/errors"
)

// ScopeSeparator splits a lookup spec into the repository filter and the directory.
const ScopeSeparator = "@"

type lookupPath struct {
	dir     string
	filters []string
	global  bool
}

func (lp *lookupPath) permits(repoName string) bool {
	return lp.global || slices.Contains(lp.filters, repoName)
}

// Finder holds the lookup paths in registration order.
type Finder struct {
	paths []*lookupPath
}

// New returns a Finder with the given lookup specs registered in order.
func New(specs ...string) (*Finder, error) {
	finder := &Finder{}

	for _, spec := range specs {
		if err := finder.AddLookupPath(spec); err != nil {
			return nil, err
		}
	}

	return finder, nil
}

// AddLookupPath registers a lookup spec of the form `[repo_name@]directory`.
//
// A spec without a repository name makes the directory global: any filters it had are cleared.
// A scoped spec for a directory that is already global is a no-op.
func (finder *Finder) AddLookupPath(spec string) error {
	var repoName, dir string

	if idx := strings.LastIndex(spec, ScopeSeparator); idx >= 0 {
		repoName, dir = spec[:idx], spec[idx+1:]
	} else {
		dir = spec
	}

	if dir == "" {
		return errors.Errorf("invalid lookup path %q: directory is empty", spec)
	}

	dir, err := homedir.Expand(dir)
	if err != nil {
		return errors.New(err)
	}

	if dir, err = filepath.Abs(dir); err != nil {
		return errors.New(err)
	}

	lp := finder.lookup(dir)
	if lp == nil {
		lp = &lookupPath{dir: dir}
		finder.paths = append(finder.paths, lp)
	}

	switch {
	case repoName == "":
		lp.global = true
		lp.filters = nil
	case lp.global:
	case !slices.Contains(lp.filters, repoName):
		lp.filters = append(lp.filters, repoName)
	}

	return nil
}

// Find returns the first `{lookup_dir}/{repoName}` directory that exists, in registration order.
func (finder *Finder) Find(repoName string) (string, bool) {
	for _, lp := range finder.paths {
		if !lp.permits(repoName) {
			continue
		}

		candidate := filepath.Join(lp.dir, repoName)

		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
	}

	return "", false
}

// Dirs returns the registered lookup directories in order.
func (finder *Finder) Dirs() []string {
	dirs := make([]string, 0, len(finder.paths))

	for _, lp := range finder.paths {
		dirs = append(dirs, lp.dir)
	}

	return dirs
}

func (finder *Finder) lookup(dir string) *lookupPath {
	for _, lp := range finder.paths {
		if lp.dir == dir {
			return lp
		}
	}

	return nil
}
