// Package site runs a build pass: it loads the declared components, collects their
// documentation, aggregates the navigation, and writes the outputs for the renderer.
package site

import (
	"context"

	"github.com/google/uuid"

	"github.com/mrdocs/mrdocs/config"
	"github.com/mrdocs/mrdocs/internal/aggregator"
	"github.com/mrdocs/mrdocs/internal/collect"
	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/internal/loader"
	"github.com/mrdocs/mrdocs/internal/openapi"
	"github.com/mrdocs/mrdocs/internal/report"
	"github.com/mrdocs/mrdocs/internal/telemetry"
	"github.com/mrdocs/mrdocs/options"
	"github.com/mrdocs/mrdocs/pkg/log"
)

// Loaded is the outcome of loading the site config and resolving its components.
type Loaded struct {
	Config *config.SiteConfig
	Result *loader.LoadResult
	Report *report.Report
}

// Result is the outcome of a build pass.
type Result struct {
	*Loaded

	BuildID   string
	Nav       []any
	Collected []*collect.Result
	Manifest  *Manifest
	// Written is false for dry runs.
	Written bool
}

// WatchDirs returns the documentation roots of the collected components.
func (res *Result) WatchDirs() []string {
	dirs := make([]string, 0, len(res.Collected))

	for _, c := range res.Collected {
		if c.DocsDir != "" {
			dirs = append(dirs, c.DocsDir)
		}
	}

	return dirs
}

// Load reads the site config and resolves every declared component through the lookup paths.
// It does not enforce the draft policy.
func Load(ctx context.Context, l log.Logger, opts *options.DocsOptions) (*Loaded, error) {
	var loaded *Loaded

	err := telemetry.TelemeterFromContext(ctx).Collect(ctx, "site_load", map[string]any{
		"lookup_paths": opts.LookupPaths,
	}, func(_ context.Context) error {
		configPath := config.ResolvePath(opts.ConfigPath, opts.WorkingDir)

		cfg, err := config.LoadSiteConfig(configPath)
		if err != nil {
			return err
		}

		ld, err := loader.New(opts.LookupPaths, cfg.Components)
		if err != nil {
			return err
		}

		result := ld.LoadAll(l)

		loaded = &Loaded{
			Config: cfg,
			Result: result,
			Report: report.New(result, configPath, opts.LookupPaths, opts.OutputDir),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// Build runs one build pass with fresh state. Missing components abort the build before
// anything is written unless opts.Draft is set. With opts.DryRun the pass stops after loading.
func Build(ctx context.Context, l log.Logger, opts *options.DocsOptions) (*Result, error) {
	loaded, err := Load(ctx, l, opts)
	if err != nil {
		return nil, err
	}

	if err := loaded.Result.Check(l, opts.Draft); err != nil {
		return nil, errors.New(err)
	}

	res := &Result{Loaded: loaded, BuildID: uuid.NewString()}
	loaded.Report.BuildID = res.BuildID

	if err := loaded.Report.WriteSummary(opts.ErrWriter, !opts.NoColor); err != nil {
		return nil, errors.New(err)
	}

	if opts.DryRun {
		l.Infof("Stopping: dry-run is enabled")
		return res, nil
	}

	collector, err := collect.New(loaded.Config.NavFile, opts.Exclude, openAPISource(l, loaded))
	if err != nil {
		return nil, err
	}

	agg := aggregator.New()

	for _, comp := range loaded.Result.Loaded {
		err := telemetry.TelemeterFromContext(ctx).Collect(ctx, "collect_component", map[string]any{
			"component": comp.Spec.Label(),
			"build_id":  res.BuildID,
		}, func(ctx context.Context) error {
			collected, err := collector.Collect(ctx, l, comp)
			if err != nil {
				return err
			}

			res.Collected = append(res.Collected, collected)
			agg.Add(l, comp.Spec, collected.Nav)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	res.Nav = append(append([]any{}, loaded.Config.Nav...), manualsAsAny(agg)...)
	res.Manifest = res.newManifest(l)

	err = telemetry.TelemeterFromContext(ctx).Collect(ctx, "site_write", map[string]any{
		"build_id":   res.BuildID,
		"output_dir": opts.OutputDir,
		"stage_dir":  opts.StageDir,
	}, func(_ context.Context) error {
		if err := writeOutputs(opts.OutputDir, &NavDocument{SiteName: loaded.Config.SiteName, Nav: res.Nav}, res.Manifest); err != nil {
			return err
		}

		if opts.StageDir == "" {
			return nil
		}

		for _, file := range res.Manifest.Files {
			if err := file.Stage(opts.StageDir); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Written = true

	l.Infof("Wrote %d files to the manifest in %s", len(res.Manifest.Files), opts.OutputDir)

	return res, nil
}

func manualsAsAny(agg *aggregator.Aggregator) []any {
	manuals := agg.Manuals()
	items := make([]any, 0, len(manuals))

	for _, item := range manuals {
		items = append(items, item)
	}

	return items
}

func (res *Result) newManifest(l log.Logger) *Manifest {
	manifest := &Manifest{
		BuildID:     res.BuildID,
		SiteName:    res.Config.SiteName,
		Config:      res.Config.Path,
		Files:       collect.Files{},
		Watch:       res.WatchDirs(),
		PythonPaths: []string{},
		Components:  []ComponentData{},
		Missing:     res.Result.MissingNames(),
	}

	if manifest.Missing == nil {
		manifest.Missing = []string{}
	}

	for _, c := range res.Collected {
		manifest.Files = append(manifest.Files, c.Files...)
	}

	for _, comp := range res.Result.Loaded {
		manifest.Components = append(manifest.Components, NewComponentData(l, comp))
		manifest.PythonPaths = append(manifest.PythonPaths, PythonPaths(comp)...)
	}

	return manifest
}

// openAPISource returns a git source over the docs repository, or nil when it is not loaded.
func openAPISource(l log.Logger, loaded *Loaded) openapi.Source {
	docsRepo := docsRepository(loaded)
	if docsRepo == nil {
		l.Warnf("Docs repository %s is not loaded, can't get api.json", loaded.Config.DocsRepository)
		return nil
	}

	src, err := openapi.NewGitSource(docsRepo.RepositoryDir, docsRepo.Spec.GitURL)
	if err != nil {
		l.Warnf("Can't get api.json: %v", err)
		return nil
	}

	return src
}

func docsRepository(loaded *Loaded) *component.Loaded {
	for _, comp := range loaded.Result.Loaded {
		if comp.Spec.Path == loaded.Config.DocsRepository {
			return comp
		}
	}

	return nil
}
