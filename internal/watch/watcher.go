// Package watch re-runs a callback after files under a set of roots change.
// Events within the debounce window are coalesced, and callbacks never overlap.
package watch

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/pkg/log"
)

// DefaultDebounce is the quiet period after the last event before the callback fires.
const DefaultDebounce = 500 * time.Millisecond

// defaultIgnores are matched against the slash-separated absolute path of every event.
var defaultIgnores = []string{
	"**/.git/**",
	"**/__pycache__/**",
	"**/*.swp",
	"**/*.swo",
	"**/*~",
	"**/.DS_Store",
}

// Config holds the parameters for a Watcher.
type Config struct {
	// OnChange receives the sorted absolute paths that changed since the previous call.
	OnChange func(ctx context.Context, changed []string) error
	// Roots are directories watched recursively, or single files.
	Roots []string
	// Ignore are extra glob patterns, merged with the built-in ones.
	Ignore   []string
	Debounce time.Duration
}

// Watcher monitors the roots and fires the debounced callback.
type Watcher struct {
	logger   log.Logger
	fsw      *fsnotify.Watcher
	onChange func(ctx context.Context, changed []string) error
	watched  map[string]struct{}
	ignores  []glob.Glob
	debounce time.Duration
	mu       sync.Mutex
	started  atomic.Bool
}

// New creates a Watcher and registers every non-ignored directory under the roots.
func New(l log.Logger, cfg Config) (*Watcher, error) {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		logger:   l,
		onChange: cfg.OnChange,
		watched:  map[string]struct{}{},
		debounce: debounce,
	}

	for _, pattern := range append(slices.Clone(defaultIgnores), cfg.Ignore...) {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}

		w.ignores = append(w.ignores, g)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.New(err)
	}

	w.fsw = fsw

	for _, root := range cfg.Roots {
		if err := w.Add(root); err != nil {
			if closeErr := fsw.Close(); closeErr != nil {
				l.Warnf("Failed to close watcher: %v", closeErr)
			}

			return nil, err
		}
	}

	return w, nil
}

// Add watches root, recursively when it is a directory. Roots already watched are skipped.
func (w *Watcher) Add(root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return errors.New(err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return errors.New(err)
	}

	if !info.IsDir() {
		return w.addPath(absRoot)
	}

	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			w.logger.Warnf("Skipping inaccessible path %s: %v", path, walkErr)
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if w.isIgnored(path) || w.isIgnored(path+"/") {
			return filepath.SkipDir
		}

		return w.addPath(path)
	})
	if err != nil {
		return errors.New(err)
	}

	return nil
}

func (w *Watcher) addPath(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watched[path]; ok {
		return nil
	}

	if err := w.fsw.Add(path); err != nil {
		return errors.Errorf("watch %s: %w", path, err)
	}

	w.watched[path] = struct{}{}

	return nil
}

// Watched returns the watched paths, sorted.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Sorted(maps.Keys(w.watched))
}

// Run blocks until ctx is cancelled. It must be called once.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.Errorf("watcher is already running")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	fire := func() {
		if ctx.Err() != nil {
			return
		}

		if !running.CompareAndSwap(false, true) {
			w.logger.Debugf("Previous run still in progress, postponing")

			mu.Lock()
			timer.Reset(w.debounce)
			mu.Unlock()

			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}

		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if w.onChange == nil {
			return
		}

		if err := w.onChange(ctx, changed); err != nil {
			w.logger.Errorf("Rebuild failed: %v", err)
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()

		if err := w.fsw.Close(); err != nil {
			w.logger.Warnf("Failed to close watcher: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.Errorf("watcher event channel closed")
			}

			if w.isIgnored(evt.Name) {
				continue
			}

			if evt.Has(fsnotify.Create) {
				if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
					if err := w.Add(evt.Name); err != nil {
						w.logger.Warnf("Failed to watch new directory %s: %v", evt.Name, err)
					}
				}
			}

			w.logger.Tracef("Event %s", evt)

			mu.Lock()
			pending[evt.Name] = struct{}{}

			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.Errorf("watcher error channel closed")
			}

			if isFatalFsnotifyError(err) {
				return errors.Errorf("fatal watcher error: %w", err)
			}

			w.logger.Warnf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) isIgnored(path string) bool {
	normalized := filepath.ToSlash(path)

	for _, g := range w.ignores {
		if g.Match(normalized) {
			return true
		}
	}

	return false
}
