// Package openapi provides the OpenAPI documents of components, stored on a data branch of the docs repository.
package openapi

import (
	"bytes"
	"context"
	"path"

	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/internal/git"
	"github.com/mrdocs/mrdocs/pkg/log"
)

const (
	// DataBranch holds generated documentation data.
	DataBranch = "docs-data"
	// DataDir is the directory of the OpenAPI documents on DataBranch.
	DataDir = "data/openapi_json"

	fetchHead = "FETCH_HEAD"
)

var (
	logoURL      = []byte("/pulp-docs/docs/assets/pulp_logo_icon.svg")
	fixedLogoURL = []byte("/assets/pulp_logo_icon.svg")
)

// Source produces the OpenAPI document of a REST API label.
type Source interface {
	Fetch(ctx context.Context, l log.Logger, label string) ([]byte, error)
}

// DocumentPath is the path of the document of label on DataBranch.
func DocumentPath(label string) string {
	return path.Join(DataDir, label+"-api.json")
}

// GitSource reads documents from a local checkout of the docs repository.
type GitSource struct {
	runner  *git.Runner
	repoDir string
	url     string
}

// NewGitSource returns a source backed by the checkout at repoDir.
// url is fetched from when DataBranch is not available locally; it may be empty.
func NewGitSource(repoDir, url string) (*GitSource, error) {
	runner, err := git.NewRunner()
	if err != nil {
		return nil, err
	}

	return &GitSource{runner: runner.WithWorkDir(repoDir), repoDir: repoDir, url: url}, nil
}

// Fetch implements Source. The local data branch is tried first, then the one of each remote,
// then DataBranch is fetched from the source url.
func (src *GitSource) Fetch(ctx context.Context, l log.Logger, label string) ([]byte, error) {
	docPath := DocumentPath(label)

	content, err := src.readLocal(l, docPath)
	if err == nil {
		return FixLogoURL(content), nil
	}

	if src.url == "" {
		return nil, err
	}

	l.Debugf("Fetching %s from %s", DataBranch, src.url)

	if err := src.runner.Fetch(ctx, src.url, DataBranch); err != nil {
		return nil, err
	}

	content, err = src.runner.Show(ctx, fetchHead, docPath)
	if err != nil {
		return nil, err
	}

	return FixLogoURL(content), nil
}

func (src *GitSource) readLocal(l log.Logger, docPath string) ([]byte, error) {
	repo, err := git.Open(src.repoDir)
	if err != nil {
		return nil, err
	}

	defer repo.Close()

	revisions := []string{DataBranch}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, err
	}

	for _, remote := range remotes {
		revisions = append(revisions, remote+"/"+DataBranch)
	}

	var lastErr error

	for _, rev := range revisions {
		content, err := repo.ReadFile(rev, docPath)
		if err == nil {
			return content, nil
		}

		l.Tracef("%s not found at %s: %v", docPath, rev, err)

		lastErr = err
	}

	return nil, errors.New(lastErr)
}

// FixLogoURL points the logo of the rendered API page at the site assets.
func FixLogoURL(content []byte) []byte {
	return bytes.ReplaceAll(content, logoURL, fixedLogoURL)
}
