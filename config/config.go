// Package config reads the site configuration: site settings, static navigation entries,
// and the ordered list of component declarations.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/internal/errors/catalog"
)

const (
	// DefaultConfigFile is looked up in the working directory when no config path is given.
	DefaultConfigFile = "mrdocs.yml"

	DefaultNavFile        = "_SUMMARY.md"
	DefaultDocsRepository = "pulp-docs"
	DefaultSiteName       = "Pulp Project"
)

// SiteConfig is the content of the config file.
type SiteConfig struct {
	SiteName string `yaml:"site_name"`
	// NavFile is the name of a curated table of contents inside a taxonomy bucket.
	NavFile string `yaml:"nav_file"`
	// DocsRepository is the repository that carries generated data such as OpenAPI blobs.
	DocsRepository string `yaml:"docs_repository"`
	// Nav holds static navigation entries placed before the manuals.
	Nav        []any           `yaml:"nav"`
	Components component.Specs `yaml:"components"`

	// Path is the file the config was read from.
	Path string `yaml:"-"`
}

// LoadSiteConfig reads and validates the config file at path.
func LoadSiteConfig(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(err)
	}

	return ParseSiteConfig(data, path)
}

// ParseSiteConfig decodes data, applies defaults and validates the declarations.
// filename is only used in error messages.
func ParseSiteConfig(data []byte, filename string) (*SiteConfig, error) {
	cfg := &SiteConfig{Path: filename}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.New(catalog.ConfigError{File: filename, Reason: err.Error()})
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *SiteConfig) setDefaults() {
	if cfg.SiteName == "" {
		cfg.SiteName = DefaultSiteName
	}

	if cfg.NavFile == "" {
		cfg.NavFile = DefaultNavFile
	}

	if cfg.DocsRepository == "" {
		cfg.DocsRepository = DefaultDocsRepository
	}
}

// Validate fails on the first malformed component declaration.
func (cfg *SiteConfig) Validate() error {
	if strings.Contains(cfg.NavFile, "/") {
		return errors.New(catalog.ConfigError{File: cfg.Path, Reason: fmt.Sprintf("nav_file %q must be a file name", cfg.NavFile)})
	}

	seen := make(map[string]int, len(cfg.Components))

	for i, spec := range cfg.Components {
		if spec == nil {
			return errors.New(catalog.ConfigError{File: cfg.Path, Index: i, Field: "title", Reason: "is required"})
		}

		for _, field := range []struct {
			name  string
			value string
		}{
			{"title", spec.Title},
			{"path", spec.Path},
			{"kind", string(spec.Kind)},
		} {
			if strings.TrimSpace(field.value) == "" {
				return errors.New(catalog.ConfigError{File: cfg.Path, Index: i, Field: field.name, Reason: "is required"})
			}
		}

		if slices.Contains(spec.Segments(), "") {
			return errors.New(catalog.ConfigError{File: cfg.Path, Index: i, Field: "path", Reason: fmt.Sprintf("%q has an empty segment", spec.Path)})
		}

		if slices.ContainsFunc(spec.Segments(), func(seg string) bool { return seg == "." || seg == ".." }) {
			return errors.New(catalog.ConfigError{File: cfg.Path, Index: i, Field: "path", Reason: fmt.Sprintf("%q has a relative segment", spec.Path)})
		}

		if prev, ok := seen[spec.Path]; ok {
			return errors.New(catalog.ConfigError{File: cfg.Path, Index: i, Field: "path", Reason: fmt.Sprintf("%q is already declared by components[%d]", spec.Path, prev)})
		}

		seen[spec.Path] = i
	}

	return nil
}

// ResolvePath returns path if set, otherwise DefaultConfigFile inside workingDir.
func ResolvePath(path, workingDir string) string {
	if path != "" {
		return path
	}

	return filepath.Join(workingDir, DefaultConfigFile)
}
