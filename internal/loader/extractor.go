package loader

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/internal/git"
	"github.com/mrdocs/mrdocs/pkg/log"
)

// PyprojectFile is the package manifest the version is read from.
const PyprojectFile = "pyproject.toml"

// Metadata is the best-effort information extracted from a component checkout.
type Metadata struct {
	PkgVersion  string
	GitRevision string
	GitBranch   string
	GitDirty    bool
}

// MetadataExtractor reads the package version and VCS state of a component.
// Implementations never fail: unresolvable fields are set to component.Unknown.
type MetadataExtractor interface {
	Extract(l log.Logger, componentDir, repositoryDir string) Metadata
}

// DataExtractor reads pyproject.toml with go-toml and the repository state with go-git.
type DataExtractor struct{}

type pyproject struct {
	Project struct {
		Version string `toml:"version"`
	} `toml:"project"`
}

// Extract implements MetadataExtractor.
func (DataExtractor) Extract(l log.Logger, componentDir, repositoryDir string) Metadata {
	meta := Metadata{PkgVersion: component.Unknown, GitRevision: component.Unknown}

	version, err := readVersion(componentDir)
	if err != nil {
		l.Warnf("Could not read package version of %s: %v", componentDir, err)
	} else {
		meta.PkgVersion = version
	}

	repo, err := git.Open(repositoryDir)
	if err != nil {
		l.Warnf("Could not read git state of %s: %v", repositoryDir, err)
		return meta
	}

	defer repo.Close()

	head, err := repo.Head()
	if err != nil {
		l.Warnf("Could not read git revision of %s: %v", repositoryDir, err)
		return meta
	}

	meta.GitRevision = head.Revision
	meta.GitBranch = head.Branch

	dirty, err := repo.IsDirty()
	if err != nil {
		l.Warnf("Could not read git status of %s: %v", repositoryDir, err)
		return meta
	}

	meta.GitDirty = dirty

	return meta
}

func readVersion(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, PyprojectFile))
	if err != nil {
		return "", errors.New(err)
	}

	var project pyproject
	if err := toml.Unmarshal(data, &project); err != nil {
		return "", errors.New(err)
	}

	if project.Project.Version == "" {
		return "", errors.Errorf("%s has no project.version", PyprojectFile)
	}

	return project.Project.Version, nil
}
