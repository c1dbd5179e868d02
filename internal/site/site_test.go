package site_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mrdocs/mrdocs/internal/errors/catalog"
	"github.com/mrdocs/mrdocs/internal/site"
	"github.com/mrdocs/mrdocs/options"
	"github.com/mrdocs/mrdocs/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteConfig = `site_name: Test Site
nav:
  - Home: index.md
components:
  - title: Pulp Core
    path: pulpcore
    kind: core
    rest_api: core
  - title: RPM
    path: pulp_rpm
    kind: plugin
`

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func newWorkspace(t *testing.T, withRPM bool) *options.DocsOptions {
	t.Helper()

	work := t.TempDir()

	files := map[string]string{
		"site/mrdocs.yml":                           siteConfig,
		"pulpcore/pyproject.toml":                   "[project]\nversion = \"3.50.0\"\n",
		"pulpcore/CHANGES.md":                       "# Changelog\n",
		"pulpcore/template_config.yml":              "github_org: pulp\n",
		"pulpcore/docs/index.md":                    "# Core\n",
		"pulpcore/docs/user/guides/upload.md":       "# Upload\n",
		"pulpcore/docs/admin/reference/settings.md": "# Settings\n",
		"pulpcore/docs/dev/learn/architecture.md":   "# Architecture\n",
		"pulpcore/docs/assets/logo.svg":             "<svg/>",
	}

	if withRPM {
		files["pulp_rpm/docs/user/tutorials/start.md"] = "# Start\n"
		files["pulp_rpm/template_config.yml"] = "github_org: pulp-rpm-org\n"
	}

	writeFiles(t, work, files)

	opts := options.NewDocsOptionsWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	opts.Logger = log.New(log.WithOutput(io.Discard))
	opts.WorkingDir = filepath.Join(work, "site")
	opts.LookupPaths = []string{work}
	opts.OutputDir = filepath.Join(work, "out")
	opts.NoColor = true

	require.NoError(t, opts.Normalize())

	return opts
}

func TestBuildWritesNavAndManifest(t *testing.T) {
	t.Parallel()

	opts := newWorkspace(t, true)
	opts.StageDir = filepath.Join(filepath.Dir(opts.WorkingDir), "stage")

	res, err := site.Build(t.Context(), opts.Logger, opts)
	require.NoError(t, err)
	require.True(t, res.Written)
	require.Len(t, res.Collected, 2)

	navData, err := os.ReadFile(filepath.Join(opts.OutputDir, site.NavFileName))
	require.NoError(t, err)

	var doc struct {
		SiteName string           `yaml:"site_name"`
		Nav      []map[string]any `yaml:"nav"`
	}
	require.NoError(t, yaml.Unmarshal(navData, &doc))

	assert.Equal(t, "Test Site", doc.SiteName)
	require.Len(t, doc.Nav, 3)
	assert.Equal(t, "index.md", doc.Nav[0]["Home"])
	assert.Contains(t, doc.Nav[1], "User Manual")
	assert.Contains(t, doc.Nav[2], "Developer Manual")

	manifestData, err := os.ReadFile(filepath.Join(opts.OutputDir, site.ManifestFileName))
	require.NoError(t, err)

	var manifest site.Manifest
	require.NoError(t, json.Unmarshal(manifestData, &manifest))

	assert.Equal(t, res.BuildID, manifest.BuildID)
	assert.Empty(t, manifest.Missing)
	assert.Equal(t, res.WatchDirs(), manifest.Watch)
	assert.Len(t, manifest.PythonPaths, 4)

	uris := manifest.Files.URIs()
	assert.Contains(t, uris, "pulpcore/index.md")
	assert.Contains(t, uris, "pulpcore/docs/user/guides/upload.md")
	assert.Contains(t, uris, "pulpcore/docs/assets/logo.svg")
	assert.Contains(t, uris, "pulpcore/restapi.md")
	assert.Contains(t, uris, "pulpcore/changes.md")
	assert.Contains(t, uris, "pulp_rpm/index.md")
	assert.NotContains(t, uris, "pulpcore/api.json")

	require.Len(t, manifest.Components, 2)
	assert.Equal(t, site.ComponentData{
		Title:   "[Pulp Core](site:pulpcore/)",
		Kind:    "core",
		Version: "3.50.0",
		Links: []string{
			"[REST API](site:pulpcore/restapi/)",
			"[Repository](https://github.com/pulp/pulpcore)",
			"[Changelog](site:pulpcore/changes/)",
		},
	}, manifest.Components[0])
	assert.Equal(t, []string{"[Repository](https://github.com/pulp-rpm-org/pulp_rpm)"}, manifest.Components[1].Links)

	assert.FileExists(t, filepath.Join(opts.StageDir, "pulpcore", "restapi.md"))
	assert.FileExists(t, filepath.Join(opts.StageDir, "pulp_rpm", "index.md"))
	assert.FileExists(t, filepath.Join(opts.StageDir, "pulpcore", "docs", "admin", "reference", "settings.md"))
}

func TestBuildMissingComponentAborts(t *testing.T) {
	t.Parallel()

	opts := newWorkspace(t, false)

	_, err := site.Build(t.Context(), opts.Logger, opts)
	require.Error(t, err)

	var missing catalog.ComponentsMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"pulp_rpm"}, missing.Names)

	assert.NoFileExists(t, filepath.Join(opts.OutputDir, site.NavFileName))
	assert.NoFileExists(t, filepath.Join(opts.OutputDir, site.ManifestFileName))
}

func TestBuildDraftToleratesMissing(t *testing.T) {
	t.Parallel()

	opts := newWorkspace(t, false)
	opts.Draft = true

	res, err := site.Build(t.Context(), opts.Logger, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"pulp_rpm"}, res.Manifest.Missing)
	assert.FileExists(t, filepath.Join(opts.OutputDir, site.NavFileName))
}

func TestBuildDryRunStopsAfterLoad(t *testing.T) {
	t.Parallel()

	opts := newWorkspace(t, true)
	opts.DryRun = true

	res, err := site.Build(t.Context(), opts.Logger, opts)
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Empty(t, res.Collected)
	assert.Len(t, res.Result.Loaded, 2)
	assert.Contains(t, opts.ErrWriter.(*bytes.Buffer).String(), "Build Summary")
	assert.NoDirExists(t, opts.OutputDir)
}

func TestLoadDoesNotEnforceDraftPolicy(t *testing.T) {
	t.Parallel()

	opts := newWorkspace(t, false)

	loaded, err := site.Load(t.Context(), opts.Logger, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"pulp_rpm"}, loaded.Result.MissingNames())
	assert.Equal(t, 1, loaded.Report.Loaded())
}
