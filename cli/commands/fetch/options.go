package fetch

import (
	"path/filepath"
	"strings"

	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/options"
)

type Options struct {
	*options.DocsOptions

	// Concurrency is the number of clones running at once.
	Concurrency int
}

func NewOptions(opts *options.DocsOptions) *Options {
	return &Options{DocsOptions: opts}
}

// Destination returns FetchDest, or the directory of the first lookup path.
func (o *Options) Destination() string {
	if o.FetchDest != "" {
		return o.FetchDest
	}

	if len(o.LookupPaths) == 0 {
		return ""
	}

	dir := o.LookupPaths[0]
	if idx := strings.LastIndex(dir, "@"); idx >= 0 {
		dir = dir[idx+1:]
	}

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(o.WorkingDir, dir)
	}

	return dir
}

func (o *Options) Validate() error {
	if o.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", o.Concurrency)
	}

	if o.Destination() == "" {
		return errors.Errorf("no destination: set --dest or a lookup path")
	}

	return nil
}
