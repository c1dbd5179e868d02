package site

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrdocs/mrdocs/internal/collect"
	"github.com/mrdocs/mrdocs/internal/errors"
)

const (
	NavFileName      = "nav.yml"
	ManifestFileName = "manifest.json"

	outputDirPerms  = 0o755
	outputFilePerms = 0o644
)

// NavDocument is the content of nav.yml.
type NavDocument struct {
	SiteName string `yaml:"site_name"`
	Nav      []any  `yaml:"nav"`
}

// Manifest is the content of manifest.json: everything a renderer needs besides the nav.
type Manifest struct {
	BuildID     string          `json:"build_id"`
	SiteName    string          `json:"site_name"`
	Config      string          `json:"config"`
	Files       collect.Files   `json:"files"`
	Watch       []string        `json:"watch"`
	PythonPaths []string        `json:"python_paths"`
	Components  []ComponentData `json:"components"`
	Missing     []string        `json:"missing"`
}

func writeOutputs(dir string, doc *NavDocument, manifest *Manifest) error {
	if err := os.MkdirAll(dir, outputDirPerms); err != nil {
		return errors.New(err)
	}

	navData, err := yaml.Marshal(doc)
	if err != nil {
		return errors.New(err)
	}

	if err := os.WriteFile(filepath.Join(dir, NavFileName), navData, outputFilePerms); err != nil {
		return errors.New(err)
	}

	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errors.New(err)
	}

	if err := os.WriteFile(filepath.Join(dir, ManifestFileName), manifestData, outputFilePerms); err != nil {
		return errors.New(err)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
