package site

import (
	"fmt"
	"path/filepath"

	"github.com/mrdocs/mrdocs/config"
	"github.com/mrdocs/mrdocs/internal/collect"
	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/mrdocs/mrdocs/pkg/log"
)

// ComponentData is what page templates know about a loaded component.
type ComponentData struct {
	Title   string         `json:"title"`
	Kind    component.Kind `json:"kind"`
	Version string         `json:"version"`
	Links   []string       `json:"links"`
}

// NewComponentData renders the title and links of comp as site-relative markdown links.
func NewComponentData(l log.Logger, comp *component.Loaded) ComponentData {
	var (
		name = comp.Spec.ComponentName()
		dir  = comp.ComponentDir()
		org  = config.DefaultGithubOrg
	)

	if tmpl, err := config.LoadTemplateConfig(dir); err != nil {
		l.Debugf("Ignoring unreadable %s in %s: %v", config.TemplateConfigFile, dir, err)
	} else {
		org = tmpl.GithubOrg
	}

	links := []string{}

	if comp.Spec.RestAPI != "" {
		links = append(links, fmt.Sprintf("[REST API](site:%s/restapi/)", name))
	}

	links = append(links, fmt.Sprintf("[Repository](https://github.com/%s/%s)", org, name))

	if fileExists(filepath.Join(dir, collect.ChangesFile)) {
		links = append(links, fmt.Sprintf("[Changelog](site:%s/changes/)", name))
	}

	return ComponentData{
		Title:   fmt.Sprintf("[%s](site:%s/)", comp.Spec.Title, name),
		Kind:    comp.Spec.Kind,
		Version: comp.PkgVersion,
		Links:   links,
	}
}

// PythonPaths are the import roots of comp for API reference generators.
func PythonPaths(comp *component.Loaded) []string {
	dir := comp.ComponentDir()

	return []string{dir, filepath.Join(dir, "src")}
}
