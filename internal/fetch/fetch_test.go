package fetch_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gofrs/flock"
	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/mrdocs/mrdocs/internal/errors/catalog"
	"github.com/mrdocs/mrdocs/internal/fetch"
	"github.com/mrdocs/mrdocs/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloner struct {
	fail map[string]error
	urls []string
	mu   sync.Mutex
}

func (c *fakeCloner) Clone(_ context.Context, url, dir string) error {
	c.mu.Lock()
	c.urls = append(c.urls, url)
	c.mu.Unlock()

	if err := c.fail[url]; err != nil {
		return err
	}

	return os.MkdirAll(dir, 0o755)
}

func testLogger() log.Logger {
	return log.New(log.WithOutput(io.Discard))
}

func TestFetchClonesOncePerRepository(t *testing.T) {
	t.Parallel()

	dest := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dest, "pulpcore"), 0o755))

	specs := component.Specs{
		{Title: "Glue", Path: "pulp-glue/pulp_glue", Kind: component.KindExtra},
		{Title: "CLI", Path: "pulp-cli", Kind: component.KindExtra, GitURL: "https://example.com/pulp-cli"},
		{Title: "Glue Core", Path: "pulp-glue/pulp_glue_core", Kind: component.KindExtra, GitURL: "https://example.com/pulp-glue"},
		{Title: "Core", Path: "pulpcore", Kind: component.KindCore, GitURL: "https://example.com/pulpcore"},
		{Title: "X", Path: "plugin-x", Kind: component.KindPlugin},
	}

	cloner := &fakeCloner{}

	f, err := fetch.New(dest, fetch.WithCloner(cloner), fetch.WithConcurrency(2))
	require.NoError(t, err)

	result, err := f.Fetch(t.Context(), testLogger(), specs)
	require.NoError(t, err)

	assert.Equal(t, []string{"pulp-cli", "pulp-glue"}, result.Cloned)
	assert.Equal(t, []string{"pulpcore"}, result.Present)
	assert.Equal(t, []string{"plugin-x"}, result.Skipped)
	assert.Empty(t, result.Failed)
	assert.ElementsMatch(t, []string{"https://example.com/pulp-cli", "https://example.com/pulp-glue"}, cloner.urls)
	assert.DirExists(t, filepath.Join(dest, "pulp-glue"))
}

func TestFetchCollectsFailures(t *testing.T) {
	t.Parallel()

	cause := assert.AnError
	cloner := &fakeCloner{fail: map[string]error{"https://example.com/broken": cause}}

	f, err := fetch.New(t.TempDir(), fetch.WithCloner(cloner))
	require.NoError(t, err)

	result, err := f.Fetch(t.Context(), testLogger(), component.Specs{
		{Title: "Broken", Path: "broken", Kind: component.KindPlugin, GitURL: "https://example.com/broken"},
		{Title: "Fine", Path: "fine", Kind: component.KindPlugin, GitURL: "https://example.com/fine"},
	})
	require.Error(t, err)

	var cloneErr catalog.ErrCloneFailure
	require.ErrorAs(t, err, &cloneErr)
	assert.Equal(t, "https://example.com/broken", cloneErr.RepoURL)
	require.ErrorIs(t, err, cause)

	assert.Equal(t, []string{"broken"}, result.Failed)
	assert.Equal(t, []string{"fine"}, result.Cloned)
}

func TestFetchRefusesLockedDestination(t *testing.T) {
	t.Parallel()

	dest := t.TempDir()

	lock := flock.New(filepath.Join(dest, fetch.LockFile))
	locked, err := lock.TryLock()
	require.NoError(t, err)
	require.True(t, locked)

	t.Cleanup(func() { _ = lock.Unlock() })

	f, err := fetch.New(dest, fetch.WithCloner(&fakeCloner{}))
	require.NoError(t, err)

	_, err = f.Fetch(t.Context(), testLogger(), component.Specs{
		{Title: "Core", Path: "pulpcore", Kind: component.KindCore, GitURL: "https://example.com/pulpcore"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}

func TestNewRequiresDestination(t *testing.T) {
	t.Parallel()

	_, err := fetch.New("", fetch.WithCloner(&fakeCloner{}))
	require.Error(t, err)
}
