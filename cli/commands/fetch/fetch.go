package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrdocs/mrdocs/internal/fetch"
	"github.com/mrdocs/mrdocs/internal/site"
	"github.com/mrdocs/mrdocs/pkg/log"
)

// Run clones every missing repository that declares a git URL.
func Run(ctx context.Context, l log.Logger, opts *Options, fetchOpts ...fetch.Option) error {
	loaded, err := site.Load(ctx, l, opts.DocsOptions)
	if err != nil {
		return err
	}

	if len(loaded.Result.Missing) == 0 {
		l.Infof("All %d components are present, nothing to fetch", len(loaded.Result.All))
		return nil
	}

	fetcher, err := fetch.New(opts.Destination(), append([]fetch.Option{fetch.WithConcurrency(opts.Concurrency)}, fetchOpts...)...)
	if err != nil {
		return err
	}

	result, fetchErr := fetcher.Fetch(ctx, l, loaded.Result.Missing)
	if result != nil {
		if err := writeResult(opts, result); err != nil {
			return err
		}
	}

	return fetchErr
}

func writeResult(opts *Options, result *fetch.Result) error {
	for _, line := range []struct {
		label string
		names []string
	}{
		{"Cloned", result.Cloned},
		{"Already present", result.Present},
		{"Skipped (no git_url)", result.Skipped},
		{"Failed", result.Failed},
	} {
		if len(line.names) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(opts.Writer, "%s: %s\n", line.label, strings.Join(line.names, ", ")); err != nil {
			return err
		}
	}

	return nil
}
