// Package component provides types for representing declared documentation components.
//
// This package contains only data types and their associated methods, with no resolution logic.
// It exists separately from the loader package to allow other packages (like nav and collect) to
// depend on these types without creating circular dependencies.
package component

import (
	"path"
	"path/filepath"
	"strings"
)

// Kind is the taxonomy label that groups components in the top-level manuals, e.g. "core" or "plugin".
type Kind string

const (
	KindCore   Kind = "core"
	KindPlugin Kind = "plugin"
	KindExtra  Kind = "extra"
)

// Spec is the immutable declaration of a documentation component.
type Spec struct {
	// Title is the display name.
	Title string `yaml:"title" json:"title"`
	// Path is the slash-separated, repository-relative path.
	// The first segment is the repository name, the last one the component name.
	Path string `yaml:"path" json:"path"`
	// Kind groups the component in the manuals.
	Kind Kind `yaml:"kind" json:"kind"`
	// GitURL is empty when the component cannot be cloned.
	GitURL string `yaml:"git_url,omitempty" json:"git_url,omitempty"`
	// RestAPI is empty when the component exposes no REST API.
	RestAPI string `yaml:"rest_api,omitempty" json:"rest_api,omitempty"`
}

// Segments returns the path split on "/".
func (spec *Spec) Segments() []string {
	return strings.Split(spec.Path, "/")
}

// RepositoryName returns the first path segment.
func (spec *Spec) RepositoryName() string {
	return spec.Variant().RepositoryName()
}

// ComponentName returns the last path segment, which is also the component slug in the site tree.
func (spec *Spec) ComponentName() string {
	return path.Base(spec.Path)
}

// Label is the name under which the component is reported.
func (spec *Spec) Label() string {
	return spec.ComponentName()
}

// Variant returns Repository when the component is a whole repository,
// and SubPackage when it lives inside a parent repository.
func (spec *Spec) Variant() Variant {
	segments := spec.Segments()
	if len(segments) == 1 {
		return Repository{Name: segments[0]}
	}

	return SubPackage{Parent: segments[0], Name: segments[len(segments)-1], Path: spec.Path}
}

// Variant is the sum type over the two shapes a component can take.
type Variant interface {
	RepositoryName() string
	// ComponentDir returns the component directory given the resolved repository directory.
	ComponentDir(repositoryDir string) string

	isVariant()
}

// Repository is a component that spans a whole repository.
type Repository struct {
	Name string
}

func (r Repository) RepositoryName() string {
	return r.Name
}

func (r Repository) ComponentDir(repositoryDir string) string {
	return filepath.Join(filepath.Dir(repositoryDir), filepath.FromSlash(r.Name))
}

func (Repository) isVariant() {}

// SubPackage is a component nested inside the repository named Parent.
type SubPackage struct {
	Parent string
	Name   string
	Path   string
}

func (s SubPackage) RepositoryName() string {
	return s.Parent
}

func (s SubPackage) ComponentDir(repositoryDir string) string {
	return filepath.Join(filepath.Dir(repositoryDir), filepath.FromSlash(s.Path))
}

func (SubPackage) isVariant() {}

// Specs is an ordered list of component declarations.
type Specs []*Spec

// Names returns the labels of the specs in declaration order.
func (specs Specs) Names() []string {
	names := make([]string, 0, len(specs))

	for _, spec := range specs {
		names = append(names, spec.Label())
	}

	return names
}

// Filter returns the specs of the given kind.
func (specs Specs) Filter(kind Kind) Specs {
	filtered := make(Specs, 0, len(specs))

	for _, spec := range specs {
		if spec.Kind == kind {
			filtered = append(filtered, spec)
		}
	}

	return filtered
}

// FindByPath returns the spec declared with the given path, or nil.
func (specs Specs) FindByPath(specPath string) *Spec {
	for _, spec := range specs {
		if spec.Path == specPath {
			return spec
		}
	}

	return nil
}
