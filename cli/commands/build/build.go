package build

import (
	"context"

	"github.com/mrdocs/mrdocs/internal/site"
	"github.com/mrdocs/mrdocs/pkg/log"
)

// Run runs one build pass.
func Run(ctx context.Context, l log.Logger, opts *Options) error {
	_, err := site.Build(ctx, l, opts.DocsOptions)

	return err
}
