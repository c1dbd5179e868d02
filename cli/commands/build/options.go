package build

import (
	"github.com/gobwas/glob"

	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/options"
)

type Options struct {
	*options.DocsOptions
}

func NewOptions(opts *options.DocsOptions) *Options {
	return &Options{DocsOptions: opts}
}

// Validate checks the output directory and the exclude patterns.
func (o *Options) Validate() error {
	errs := []error{}

	if o.OutputDir == "" {
		errs = append(errs, errors.Errorf("the output directory must not be empty"))
	}

	for _, pattern := range o.Exclude {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, errors.Errorf("invalid exclude pattern %q: %w", pattern, err))
		}
	}

	if len(errs) > 0 {
		return errors.New(errors.Join(errs...))
	}

	return nil
}
