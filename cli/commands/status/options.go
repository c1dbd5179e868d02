package status

import (
	"slices"

	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/options"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Options struct {
	*options.DocsOptions

	// Format is the output format: text or json.
	Format string
}

func NewOptions(opts *options.DocsOptions) *Options {
	return &Options{
		DocsOptions: opts,
		Format:      FormatText,
	}
}

func (o *Options) Validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON}, o.Format) {
		return errors.Errorf("invalid format: %s, valid formats: %s, %s", o.Format, FormatText, FormatJSON)
	}

	return nil
}
