package watch

import (
	"context"

	"github.com/mrdocs/mrdocs/config"
	"github.com/mrdocs/mrdocs/internal/site"
	"github.com/mrdocs/mrdocs/internal/watch"
	"github.com/mrdocs/mrdocs/pkg/log"
)

// Run builds once, then rebuilds from scratch after every batch of changes until ctx is cancelled.
// Documentation roots that appear in a later build are watched from then on.
func Run(ctx context.Context, l log.Logger, opts *Options) error {
	res, err := site.Build(ctx, l, opts.DocsOptions)
	if err != nil {
		return err
	}

	var watcher *watch.Watcher

	roots := append([]string{config.ResolvePath(opts.ConfigPath, opts.WorkingDir)}, res.WatchDirs()...)

	watcher, err = watch.New(l, watch.Config{
		Roots:    roots,
		Debounce: opts.Debounce,
		OnChange: func(ctx context.Context, changed []string) error {
			l.Infof("%d files changed, rebuilding", len(changed))

			res, err := site.Build(ctx, l, opts.DocsOptions)
			if err != nil {
				return err
			}

			for _, dir := range res.WatchDirs() {
				if err := watcher.Add(dir); err != nil {
					l.Warnf("Failed to watch %s: %v", dir, err)
				}
			}

			return nil
		},
	})
	if err != nil {
		return err
	}

	l.Infof("Watching %d paths, press Ctrl+C to stop", len(watcher.Watched()))

	return watcher.Run(ctx)
}
