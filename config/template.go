package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrdocs/mrdocs/internal/errors"
)

const (
	// TemplateConfigFile holds the plugin template settings of a repository.
	TemplateConfigFile = "template_config.yml"

	DefaultGithubOrg = "pulp"
)

// TemplateConfig is the subset of a repository's template config mrdocs reads.
type TemplateConfig struct {
	GithubOrg string `yaml:"github_org"`
}

// LoadTemplateConfig reads TemplateConfigFile from dir, usually a component directory.
// A missing file yields the defaults.
func LoadTemplateConfig(dir string) (*TemplateConfig, error) {
	cfg := &TemplateConfig{}

	data, err := os.ReadFile(filepath.Join(dir, TemplateConfigFile))

	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.New(err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.New(err)
		}
	}

	if cfg.GithubOrg == "" {
		cfg.GithubOrg = DefaultGithubOrg
	}

	return cfg, nil
}
