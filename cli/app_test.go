package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrdocs/mrdocs/cli"
	"github.com/mrdocs/mrdocs/internal/errors/catalog"
	"github.com/mrdocs/mrdocs/internal/site"
	"github.com/mrdocs/mrdocs/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteConfig = `components:
  - title: Pulp Core
    path: pulpcore
    kind: core
  - title: Glue
    path: pulp-glue/pulp_glue
    kind: extra
  - title: Missing
    path: pulp_missing
    kind: plugin
`

type workspace struct {
	root   string
	config string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	opts   *options.DocsOptions
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()

	root := t.TempDir()

	for name, content := range map[string]string{
		"site/mrdocs.yml":                             siteConfig,
		"repos/pulpcore/docs/user/guides/upload.md":   "# Upload\n",
		"repos/pulp-glue/pulp_glue/docs/index.md":     "# Glue\n",
		"repos/pulp-glue/pulp_glue/docs/dev/index.md": "# Glue dev\n",
	} {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	ws := &workspace{
		root:   root,
		config: filepath.Join(root, "site", "mrdocs.yml"),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	ws.opts = options.NewDocsOptionsWithWriters(ws.stdout, ws.stderr)
	ws.opts.WorkingDir = filepath.Join(root, "site")

	return ws
}

func (ws *workspace) run(t *testing.T, args ...string) error {
	t.Helper()

	app := cli.NewApp(ws.opts)

	return app.RunContext(t.Context(), append([]string{cli.AppName}, args...))
}

func TestStatusJSON(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)

	err := ws.run(t, "--config", ws.config, "--path", filepath.Join(ws.root, "repos"), "status", "--format", "json")
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(ws.stdout.Bytes(), &out))

	assert.Equal(t, ws.config, out["config"])
	assert.Equal(t, []any{"pulp_missing"}, out["missing"])
	assert.Len(t, out["loaded_components"], 2)
}

func TestStatusRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)

	err := ws.run(t, "--config", ws.config, "status", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestBuildFailsOnMissingComponents(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)

	err := ws.run(t, "--config", ws.config, "--path", filepath.Join(ws.root, "repos"), "build", "--output", "out")
	require.Error(t, err)

	var missing catalog.ComponentsMissingError
	require.ErrorAs(t, err, &missing)
	assert.NoFileExists(t, filepath.Join(ws.root, "site", "out", site.NavFileName))
}

func TestBuildDraft(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)

	err := ws.run(t,
		"--config", ws.config,
		"--path", filepath.Join(ws.root, "repos"),
		"--draft",
		"--log-level", "debug",
		"build", "--output", "out", "--exclude", "**/guides/**",
	)
	require.NoError(t, err)

	manifestData, err := os.ReadFile(filepath.Join(ws.root, "site", "out", site.ManifestFileName))
	require.NoError(t, err)

	var manifest site.Manifest
	require.NoError(t, json.Unmarshal(manifestData, &manifest))

	uris := manifest.Files.URIs()
	assert.Contains(t, uris, "pulp_glue/index.md")
	assert.Contains(t, uris, "pulp_glue/docs/dev/index.md")
	assert.NotContains(t, uris, "pulpcore/docs/user/guides/upload.md")
	assert.Equal(t, []string{"pulp_missing"}, manifest.Missing)
	assert.Contains(t, ws.stderr.String(), "Build Summary")
}

func TestInvalidLogLevel(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)

	err := ws.run(t, "--log-level", "loud", "status")
	require.Error(t, err)
}

func TestTelemetryConsoleExporter(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)

	err := ws.run(t,
		"--config", ws.config,
		"--path", filepath.Join(ws.root, "repos"),
		"--telemetry-exporter", "console",
		"status",
	)
	require.NoError(t, err)
	assert.Contains(t, ws.stdout.String(), "site_load")
}
