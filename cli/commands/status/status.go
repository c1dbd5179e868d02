package status

import (
	"context"

	"github.com/mrdocs/mrdocs/internal/site"
	"github.com/mrdocs/mrdocs/pkg/log"
)

// Run loads the components and prints the summary. Missing components are reported, not fatal.
func Run(ctx context.Context, l log.Logger, opts *Options) error {
	loaded, err := site.Load(ctx, l, opts.DocsOptions)
	if err != nil {
		return err
	}

	if opts.Format == FormatJSON {
		return loaded.Report.WriteJSON(opts.Writer)
	}

	return loaded.Report.WriteSummary(opts.Writer, !opts.NoColor)
}
