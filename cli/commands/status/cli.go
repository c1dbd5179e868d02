// Package status provides the `mrdocs status` command, which reports where every
// declared component was found without building anything.
package status

import (
	"github.com/urfave/cli/v2"

	"github.com/mrdocs/mrdocs/cli/flags"
	"github.com/mrdocs/mrdocs/options"
)

const (
	CommandName = "status"

	FormatFlagName = "format"
)

func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	mrPrefix := prefix.Prepend(flags.MrdocsPrefix)

	return []cli.Flag{
		&cli.StringFlag{
			Name:        FormatFlagName,
			EnvVars:     mrPrefix.EnvVars(FormatFlagName),
			Destination: &opts.Format,
			Value:       opts.Format,
			Usage:       "Output format. Valid values: text, json.",
		},
	}
}

func NewCommand(opts *options.DocsOptions) *cli.Command {
	cmdOpts := NewOptions(opts)

	return &cli.Command{
		Name:  CommandName,
		Usage: "Show which components were found, where, and at which revision.",
		Flags: NewFlags(cmdOpts, flags.Prefix{CommandName}),
		Before: func(ctx *cli.Context) error {
			if err := cmdOpts.Normalize(); err != nil {
				return err
			}

			return cmdOpts.Validate()
		},
		Action: func(ctx *cli.Context) error {
			return Run(ctx.Context, opts.Logger, cmdOpts)
		},
	}
}
