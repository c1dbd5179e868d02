package watch

import (
	"time"

	"github.com/mrdocs/mrdocs/cli/commands/build"
	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/internal/watch"
	"github.com/mrdocs/mrdocs/options"
)

type Options struct {
	*build.Options

	// Debounce is the quiet period after the last change before rebuilding.
	Debounce time.Duration
}

func NewOptions(opts *options.DocsOptions) *Options {
	return &Options{
		Options:  build.NewOptions(opts),
		Debounce: watch.DefaultDebounce,
	}
}

func (o *Options) Validate() error {
	if o.Debounce <= 0 {
		return errors.Errorf("debounce must be positive, got %s", o.Debounce)
	}

	if o.DryRun {
		return errors.Errorf("--%s cannot be used with %s", build.DryRunFlagName, CommandName)
	}

	return o.Options.Validate()
}
