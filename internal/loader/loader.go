// Package loader resolves declared components to checkouts on disk.
package loader

import (
	"slices"

	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/mrdocs/mrdocs/internal/errors/catalog"
	"github.com/mrdocs/mrdocs/internal/finder"
	"github.com/mrdocs/mrdocs/pkg/log"
)

// Loader resolves components through a Finder and extracts their metadata.
type Loader struct {
	finder    *finder.Finder
	extractor MetadataExtractor
	specs     component.Specs
}

// Option configures a Loader.
type Option func(*Loader)

// WithExtractor replaces the default DataExtractor.
func WithExtractor(extractor MetadataExtractor) Option {
	return func(ld *Loader) {
		ld.extractor = extractor
	}
}

// New registers lookupPaths in order and returns a Loader for specs.
func New(lookupPaths []string, specs component.Specs, opts ...Option) (*Loader, error) {
	f, err := finder.New(lookupPaths...)
	if err != nil {
		return nil, err
	}

	ld := &Loader{
		finder:    f,
		extractor: DataExtractor{},
		specs:     specs,
	}

	for _, opt := range opts {
		opt(ld)
	}

	return ld, nil
}

// Finder returns the finder used to resolve repositories.
func (ld *Loader) Finder() *finder.Finder {
	return ld.finder
}

// LoadComponent resolves one spec. It returns false when no lookup path holds the repository.
func (ld *Loader) LoadComponent(l log.Logger, spec *component.Spec) (*component.Loaded, bool) {
	repositoryDir, ok := ld.finder.Find(spec.RepositoryName())
	if !ok {
		l.Debugf("Repository %s of component %s not found", spec.RepositoryName(), spec.Label())
		return nil, false
	}

	loaded := &component.Loaded{Spec: spec, RepositoryDir: repositoryDir}
	meta := ld.extractor.Extract(l, loaded.ComponentDir(), repositoryDir)

	loaded.PkgVersion = meta.PkgVersion
	loaded.GitRevision = meta.GitRevision
	loaded.GitBranch = meta.GitBranch
	loaded.GitDirty = meta.GitDirty

	l.Debugf("Loaded component %s from %s", spec.Label(), repositoryDir)

	return loaded, true
}

// LoadAll resolves every declared spec in declaration order.
func (ld *Loader) LoadAll(l log.Logger) *LoadResult {
	result := &LoadResult{All: ld.specs}

	for _, spec := range ld.specs {
		if loaded, ok := ld.LoadComponent(l, spec); ok {
			result.Loaded = append(result.Loaded, loaded)
		} else {
			result.Missing = append(result.Missing, spec)
		}
	}

	return result
}

// LoadResult partitions the declared specs into loaded and missing.
type LoadResult struct {
	All     component.Specs
	Loaded  component.LoadedList
	Missing component.Specs
}

// MissingNames returns the sorted labels of the missing components.
func (res *LoadResult) MissingNames() []string {
	names := res.Missing.Names()
	slices.Sort(names)

	return names
}

// Check enforces the draft policy: missing components are fatal unless draft is set,
// in which case they are reported as a warning.
func (res *LoadResult) Check(l log.Logger, draft bool) error {
	if len(res.Missing) == 0 {
		return nil
	}

	if !draft {
		return catalog.ComponentsMissingError{Names: res.MissingNames()}
	}

	l.Warnf("Components missing: %v", res.MissingNames())

	return nil
}
