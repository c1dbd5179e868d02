// Package collect walks the documentation root of a loaded component, maps every file to its
// site path, adds generated pages, and feeds the navigable ones to a nav.ComponentNav.
package collect

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/internal/nav"
	"github.com/mrdocs/mrdocs/internal/openapi"
	"github.com/mrdocs/mrdocs/pkg/log"
)

const (
	DocsDir       = "docs"
	LegacyDocsDir = "staging_docs"
	ChangesFile   = "CHANGES.md"

	restAPIFile   = "restapi.md"
	apiJSONFile   = "api.json"
	changesURI    = "changes.md"
	gitignoreFile = ".gitignore"
)

// Collector collects the files of one component at a time.
type Collector struct {
	openAPI  openapi.Source
	navFile  string
	excludes []glob.Glob
}

// New returns a Collector. exclude are glob patterns matched against site paths.
// openAPI may be nil, in which case no api.json is generated.
func New(navFile string, exclude []string, openAPI openapi.Source) (*Collector, error) {
	collector := &Collector{navFile: navFile, openAPI: openAPI}

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		collector.excludes = append(collector.excludes, g)
	}

	return collector, nil
}

// Result is the outcome of collecting one component.
type Result struct {
	Component *component.Loaded
	Nav       *nav.ComponentNav
	// DocsDir is empty when the component has no documentation root.
	DocsDir string
	Files   Files
}

// DocsRoot returns the documentation root of the component directory: the deprecated
// staging_docs when present, docs otherwise. It returns false when neither exists.
func DocsRoot(l log.Logger, componentDir string) (string, bool) {
	legacy := filepath.Join(componentDir, LegacyDocsDir)
	if isDir(legacy) {
		l.Warnf("Found deprecated '%s' directory in %s", LegacyDocsDir, componentDir)
		return legacy, true
	}

	docs := filepath.Join(componentDir, DocsDir)
	if isDir(docs) {
		return docs, true
	}

	return docs, false
}

// Collect walks the component in lexicographic order and returns its manifest and navigation.
func (c *Collector) Collect(ctx context.Context, l log.Logger, comp *component.Loaded) (*Result, error) {
	l = l.WithField(log.FieldKeyComponent, comp.Spec.Label())

	var (
		slug         = comp.Slug()
		componentDir = comp.ComponentDir()
		contentRoot  = filepath.Dir(componentDir)
		result       = &Result{Component: comp, Nav: nav.NewComponentNav(c.navFile, slug)}
	)

	l.Infof("Fetching docs from '%s'", comp.Spec.Title)

	if docsDir, ok := DocsRoot(l, componentDir); ok {
		result.DocsDir = docsDir

		ignores := loadIgnores(comp.RepositoryDir, componentDir)

		paths, err := walk(docsDir)
		if err != nil {
			return nil, err
		}

		for _, absPath := range paths {
			file, err := c.mapFile(comp, contentRoot, docsDir, absPath)
			if err != nil {
				return nil, err
			}

			if ignores.matches(absPath) {
				l.Debugf("Skipping ignored file %s", absPath)
				continue
			}

			if c.excluded(file.URI) {
				l.Debugf("Skipping excluded file %s", file.URI)
				continue
			}

			l.Debugf("Adding %s as %s", absPath, file.URI)

			result.Files = append(result.Files, file)
			result.Nav.Add(l, file.URI)
		}
	} else {
		l.Warnf("No documentation directory found in %s", componentDir)
	}

	for _, uri := range result.Nav.MissingIndices() {
		l.Debugf("Generating missing index %s", uri)

		result.Files = append(result.Files, &File{
			URI:       uri,
			Component: comp.Spec.Label(),
			Content:   MissingIndexPage(comp.Spec.Title),
			Generated: true,
			Index:     true,
		})
	}

	if comp.Spec.RestAPI != "" {
		c.addRestAPI(ctx, l, comp, result)
	}

	if changes := filepath.Join(componentDir, ChangesFile); isFile(changes) {
		uri := path.Join(slug, changesURI)

		result.Files = append(result.Files, &File{URI: uri, SourcePath: changes, Component: comp.Spec.Label()})
		result.Nav.Add(l, uri)
	}

	return result, nil
}

func (c *Collector) addRestAPI(ctx context.Context, l log.Logger, comp *component.Loaded, result *Result) {
	slug := comp.Slug()
	uri := path.Join(slug, restAPIFile)

	result.Files = append(result.Files, &File{
		URI:       uri,
		Component: comp.Spec.Label(),
		Content:   RestAPIPage(comp.Spec.Title),
		Generated: true,
	})
	result.Nav.Add(l, uri)

	if c.openAPI == nil {
		return
	}

	content, err := c.openAPI.Fetch(ctx, l, comp.Spec.RestAPI)
	if err != nil {
		l.Warnf("Could not get the OpenAPI document %s: %v", openapi.DocumentPath(comp.Spec.RestAPI), err)
		return
	}

	result.Files = append(result.Files, &File{
		URI:       path.Join(slug, apiJSONFile),
		Component: comp.Spec.Label(),
		Content:   content,
		Generated: true,
	})
}

func (c *Collector) mapFile(comp *component.Loaded, contentRoot, docsDir, absPath string) (*File, error) {
	file := &File{SourcePath: absPath, Component: comp.Spec.Label()}

	switch absPath {
	case filepath.Join(docsDir, "index.md"):
		file.URI = nav.IndexURI(comp.Slug())
		file.Index = true
	case filepath.Join(docsDir, string(nav.PersonaDev), "index.md"):
		file.URI = nav.DevIndexURI(comp.Slug())
		file.Index = true
	default:
		rel, err := filepath.Rel(contentRoot, absPath)
		if err != nil {
			return nil, errors.New(err)
		}

		file.URI = filepath.ToSlash(rel)
	}

	if comp.Spec.GitURL != "" && comp.GitBranch != "" {
		rel, err := comp.RelToRepository(absPath)
		if err != nil {
			return nil, errors.New(err)
		}

		file.EditURL = EditURL(comp.Spec.GitURL, comp.GitBranch, rel)
	}

	return file, nil
}

func (c *Collector) excluded(uri string) bool {
	for _, g := range c.excludes {
		if g.Match(uri) {
			return true
		}
	}

	return false
}

// EditURL is the URL of the source editor for relPath on branch.
func EditURL(gitURL, branch, relPath string) string {
	return gitURL + "/edit/" + branch + "/" + relPath
}

type gitignore struct {
	matcher *ignore.GitIgnore
	baseDir string
}

type ignoreList []gitignore

func loadIgnores(dirs ...string) ignoreList {
	var list ignoreList

	seen := make(map[string]struct{}, len(dirs))

	for _, dir := range dirs {
		if _, ok := seen[dir]; ok {
			continue
		}

		seen[dir] = struct{}{}

		matcher, err := ignore.CompileIgnoreFile(filepath.Join(dir, gitignoreFile))
		if err != nil {
			continue
		}

		list = append(list, gitignore{matcher: matcher, baseDir: dir})
	}

	return list
}

func (list ignoreList) matches(absPath string) bool {
	for _, gi := range list {
		rel, err := filepath.Rel(gi.baseDir, absPath)
		if err != nil {
			continue
		}

		if gi.matcher.MatchesPath(filepath.ToSlash(rel)) {
			return true
		}
	}

	return false
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
