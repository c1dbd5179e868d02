// Package options provides the set of options that configure the behavior of the mrdocs program.
package options

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/internal/telemetry"
	"github.com/mrdocs/mrdocs/pkg/log"
)

const (
	// LookupPathSeparator splits the --path value and MRDOCS_PATH.
	LookupPathSeparator = ":"

	DefaultOutputDir = "site-data"

	defaultLogLevel = log.InfoLevel
)

// DocsOptions represents options that configure the behavior of the mrdocs program
type DocsOptions struct {
	// Writer is where command output is written.
	Writer io.Writer
	// ErrWriter is where logs are written.
	ErrWriter io.Writer
	Logger    log.Logger

	// WorkingDir is the directory relative paths are resolved against.
	WorkingDir string
	// ConfigPath is the site config file. Empty means mrdocs.yml in WorkingDir.
	ConfigPath string
	// LookupPaths are `[repo_name@]directory` specs, in priority order.
	LookupPaths []string
	// OutputDir receives nav.yml and manifest.json.
	OutputDir string
	// StageDir, when set, receives a copy of every collected and generated file.
	StageDir string
	// FetchDest is where `fetch` clones missing repositories. Empty means the first lookup directory.
	FetchDest string
	// Exclude are glob patterns of site paths that are not collected.
	Exclude []string

	// Telemetry selects the trace and metric exporters.
	Telemetry *telemetry.Options
	LogLevel  log.Level

	// Draft tolerates missing components.
	Draft bool
	// DryRun stops after components are loaded.
	DryRun  bool
	NoColor bool
}

// NewDocsOptions returns options with the defaults, writing to stdout and stderr.
func NewDocsOptions() *DocsOptions {
	return NewDocsOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewDocsOptionsWithWriters returns options with the defaults and the given writers.
func NewDocsOptionsWithWriters(stdout, stderr io.Writer) *DocsOptions {
	logger := log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel))

	// An empty WorkingDir makes Normalize retry and return the error.
	workingDir, err := os.Getwd()
	if err != nil {
		logger.Warnf("Failed to get the working directory: %v", err)
	}

	return &DocsOptions{
		Writer:     stdout,
		ErrWriter:  stderr,
		Logger:     logger,
		WorkingDir: workingDir,
		OutputDir:  DefaultOutputDir,
		LogLevel:   defaultLogLevel,
		Exclude:    []string{},
		Telemetry:  &telemetry.Options{},
	}
}

// Clone returns a copy of the options. Slices are copied so the clone can be modified freely.
func (opts *DocsOptions) Clone() *DocsOptions {
	newOpts := *opts
	newOpts.LookupPaths = append([]string(nil), opts.LookupPaths...)
	newOpts.Exclude = append([]string(nil), opts.Exclude...)

	if opts.Telemetry != nil {
		telemetryOpts := *opts.Telemetry
		newOpts.Telemetry = &telemetryOpts
	}

	return &newOpts
}

// Normalize resolves relative directories against WorkingDir and fills the default lookup path.
func (opts *DocsOptions) Normalize() error {
	if opts.WorkingDir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return errors.New(err)
		}

		opts.WorkingDir = workingDir
	}

	if len(opts.LookupPaths) == 0 {
		opts.LookupPaths = DefaultLookupPaths(opts.WorkingDir)
	}

	for _, dir := range []*string{&opts.ConfigPath, &opts.OutputDir, &opts.StageDir, &opts.FetchDest} {
		if *dir != "" && !filepath.IsAbs(*dir) {
			*dir = filepath.Join(opts.WorkingDir, *dir)
		}
	}

	return nil
}

// ParseLookupPaths splits a colon separated list, dropping empty entries.
func ParseLookupPaths(value string) []string {
	var paths []string

	for _, path := range strings.Split(value, LookupPathSeparator) {
		if path = strings.TrimSpace(path); path != "" {
			paths = append(paths, path)
		}
	}

	return paths
}

// DefaultLookupPaths is the parent of the working directory, where sibling checkouts usually live.
func DefaultLookupPaths(workingDir string) []string {
	return []string{filepath.Dir(workingDir)}
}
