// Package watch provides the `mrdocs watch` command, which rebuilds the site
// whenever a component's documentation changes.
package watch

import (
	"github.com/urfave/cli/v2"

	"github.com/mrdocs/mrdocs/cli/commands/build"
	"github.com/mrdocs/mrdocs/cli/flags"
	"github.com/mrdocs/mrdocs/options"
)

const (
	CommandName = "watch"

	DebounceFlagName = "debounce"
)

func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	mrPrefix := prefix.Prepend(flags.MrdocsPrefix)

	return append(build.NewFlags(opts.Options, nil),
		&cli.DurationFlag{
			Name:        DebounceFlagName,
			EnvVars:     mrPrefix.EnvVars(DebounceFlagName),
			Destination: &opts.Debounce,
			Value:       opts.Debounce,
			Usage:       "Quiet period after the last change before rebuilding.",
		},
	)
}

func NewCommand(opts *options.DocsOptions) *cli.Command {
	cmdOpts := NewOptions(opts)

	return &cli.Command{
		Name:  CommandName,
		Usage: "Build, then rebuild whenever a documentation directory or the site config changes.",
		Flags: NewFlags(cmdOpts, flags.Prefix{CommandName}),
		Before: func(ctx *cli.Context) error {
			if err := build.Setup(ctx, cmdOpts.Options); err != nil {
				return err
			}

			return cmdOpts.Validate()
		},
		Action: func(ctx *cli.Context) error {
			return Run(ctx.Context, opts.Logger, cmdOpts)
		},
	}
}
