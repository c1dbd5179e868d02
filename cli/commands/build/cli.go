// Package build provides the `mrdocs build` command, which aggregates the documentation
// of every component into a navigation tree and a file manifest.
package build

import (
	"github.com/urfave/cli/v2"

	"github.com/mrdocs/mrdocs/cli/flags"
	"github.com/mrdocs/mrdocs/options"
)

const (
	CommandName = "build"

	DryRunFlagName  = "dry-run"
	OutputFlagName  = "output"
	StageFlagName   = "stage"
	ExcludeFlagName = "exclude"
)

// NewFlags returns the flags shared by the commands that run a build.
func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	mrPrefix := prefix.Prepend(flags.MrdocsPrefix)

	return []cli.Flag{
		&cli.BoolFlag{
			Name:        DryRunFlagName,
			EnvVars:     mrPrefix.EnvVars(DryRunFlagName),
			Destination: &opts.DryRun,
			Usage:       "Stop after the components are loaded.",
		},
		&cli.StringFlag{
			Name:        OutputFlagName,
			Aliases:     []string{"o"},
			EnvVars:     mrPrefix.EnvVars(OutputFlagName),
			Destination: &opts.OutputDir,
			Value:       opts.OutputDir,
			Usage:       "Directory receiving nav.yml and manifest.json.",
		},
		&cli.StringFlag{
			Name:        StageFlagName,
			EnvVars:     mrPrefix.EnvVars(StageFlagName),
			Destination: &opts.StageDir,
			Usage:       "Copy every collected and generated file into this directory.",
		},
		&cli.StringSliceFlag{
			Name:    ExcludeFlagName,
			EnvVars: mrPrefix.EnvVars(ExcludeFlagName),
			Usage:   "Glob of site paths that are not collected, e.g. `**/drafts/**`. May be repeated.",
		},
	}
}

// Setup reads the flags that have no destination and validates the options.
func Setup(ctx *cli.Context, opts *Options) error {
	if ctx.IsSet(ExcludeFlagName) {
		opts.Exclude = ctx.StringSlice(ExcludeFlagName)
	}

	if err := opts.Normalize(); err != nil {
		return err
	}

	return opts.Validate()
}

func NewCommand(opts *options.DocsOptions) *cli.Command {
	cmdOpts := NewOptions(opts)

	return &cli.Command{
		Name:  CommandName,
		Usage: "Collect the documentation of every component and write the site navigation.",
		Flags: NewFlags(cmdOpts, nil),
		Before: func(ctx *cli.Context) error {
			return Setup(ctx, cmdOpts)
		},
		Action: func(ctx *cli.Context) error {
			return Run(ctx.Context, opts.Logger, cmdOpts)
		},
	}
}
