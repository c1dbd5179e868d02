package openapi_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrdocs/mrdocs/internal/git"
	"github.com/mrdocs/mrdocs/internal/openapi"
	"github.com/mrdocs/mrdocs/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiJSON = `{"info":{"x-logo":{"url":"/pulp-docs/docs/assets/pulp_logo_icon.svg"}}}`

func run(t *testing.T, runner *git.Runner, args ...string) {
	t.Helper()

	_, err := runner.Run(t.Context(), args[0], args[1:]...)
	require.NoError(t, err)
}

// docsRepo creates a repository with main and a docs-data branch carrying the core document.
func docsRepo(t *testing.T, dir string) *git.Runner {
	t.Helper()

	runner, err := git.NewRunner()
	if err != nil {
		t.Skip("git binary not available")
	}

	require.NoError(t, os.MkdirAll(dir, 0o755))

	r := runner.WithWorkDir(dir)
	run(t, r, "init", "--initial-branch=main")
	run(t, r, "config", "user.email", "docs@example.com")
	run(t, r, "config", "user.name", "Docs")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs\n"), 0o644))
	run(t, r, "add", "-A")
	run(t, r, "commit", "-m", "main")

	run(t, r, "checkout", "-b", openapi.DataBranch)
	docPath := filepath.Join(dir, filepath.FromSlash(openapi.DocumentPath("core")))
	require.NoError(t, os.MkdirAll(filepath.Dir(docPath), 0o755))
	require.NoError(t, os.WriteFile(docPath, []byte(apiJSON), 0o644))
	run(t, r, "add", "-A")
	run(t, r, "commit", "-m", "data")
	run(t, r, "checkout", "main")

	return runner
}

func TestGitSourceLocalBranch(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "pulp-docs")
	docsRepo(t, dir)

	src, err := openapi.NewGitSource(dir, "")
	require.NoError(t, err)

	l := log.New(log.WithOutput(io.Discard))

	content, err := src.Fetch(t.Context(), l, "core")
	require.NoError(t, err)
	assert.JSONEq(t, `{"info":{"x-logo":{"url":"/assets/pulp_logo_icon.svg"}}}`, string(content))

	_, err = src.Fetch(t.Context(), l, "rpm")
	require.ErrorIs(t, err, git.ErrReadFile)
}

func TestGitSourceFetchesFromURL(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	upstream := filepath.Join(tmp, "upstream")
	runner := docsRepo(t, upstream)

	clone := filepath.Join(tmp, "pulp-docs")
	require.NoError(t, runner.WithWorkDir(clone).Clone(t.Context(), "file://"+upstream, 1, "main"))

	l := log.New(log.WithOutput(io.Discard))

	offline, err := openapi.NewGitSource(clone, "")
	require.NoError(t, err)

	_, err = offline.Fetch(t.Context(), l, "core")
	require.Error(t, err)

	src, err := openapi.NewGitSource(clone, "file://"+upstream)
	require.NoError(t, err)

	content, err := src.Fetch(t.Context(), l, "core")
	require.NoError(t, err)
	assert.Contains(t, string(content), `"/assets/pulp_logo_icon.svg"`)
}

func TestFixLogoURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"url":"/assets/pulp_logo_icon.svg"}`, string(openapi.FixLogoURL([]byte(`{"url":"/pulp-docs/docs/assets/pulp_logo_icon.svg"}`))))
	assert.Equal(t, "data/openapi_json/rpm-api.json", openapi.DocumentPath("rpm"))
}
