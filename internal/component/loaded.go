package component

import (
	"path/filepath"
)

// Unknown is the value of metadata fields that could not be extracted.
const Unknown = "unknown"

// Loaded is a component whose repository was found on disk.
type Loaded struct {
	// Spec is shared with the registry, never copied.
	Spec *Spec
	// RepositoryDir is the absolute path of the repository root.
	RepositoryDir string
	PkgVersion    string
	GitRevision   string
	// GitBranch is empty when HEAD is detached or the revision is unknown.
	GitBranch string
	GitDirty  bool
}

// ComponentDir is `RepositoryDir/.. / Spec.Path`.
func (c *Loaded) ComponentDir() string {
	return c.Spec.Variant().ComponentDir(c.RepositoryDir)
}

// Slug is the directory of the component within the unified site tree.
func (c *Loaded) Slug() string {
	return c.Spec.ComponentName()
}

// RelToRepository returns the slash-separated path of p relative to the repository root.
func (c *Loaded) RelToRepository(p string) (string, error) {
	rel, err := filepath.Rel(c.RepositoryDir, p)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// LoadedList is an ordered list of loaded components.
type LoadedList []*Loaded

// Specs returns the specs of the loaded components.
func (list LoadedList) Specs() Specs {
	specs := make(Specs, 0, len(list))

	for _, c := range list {
		specs = append(specs, c.Spec)
	}

	return specs
}
