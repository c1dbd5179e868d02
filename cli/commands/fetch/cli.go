// Package fetch provides the `mrdocs fetch` command, which clones the repositories
// of the components missing from every lookup path.
package fetch

import (
	"github.com/urfave/cli/v2"

	"github.com/mrdocs/mrdocs/cli/flags"
	"github.com/mrdocs/mrdocs/internal/fetch"
	"github.com/mrdocs/mrdocs/options"
)

const (
	CommandName = "fetch"

	DestFlagName        = "dest"
	ConcurrencyFlagName = "concurrency"
)

func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	mrPrefix := prefix.Prepend(flags.MrdocsPrefix)

	return []cli.Flag{
		&cli.StringFlag{
			Name:        DestFlagName,
			Aliases:     []string{"d"},
			EnvVars:     mrPrefix.EnvVars(DestFlagName),
			Destination: &opts.FetchDest,
			Usage:       "Directory to clone into. Defaults to the directory of the first lookup path.",
		},
		&cli.IntFlag{
			Name:        ConcurrencyFlagName,
			EnvVars:     mrPrefix.EnvVars(ConcurrencyFlagName),
			Destination: &opts.Concurrency,
			Value:       fetch.DefaultConcurrency,
			Usage:       "Number of repositories cloned at once.",
		},
	}
}

func NewCommand(opts *options.DocsOptions) *cli.Command {
	cmdOpts := NewOptions(opts)

	return &cli.Command{
		Name:  CommandName,
		Usage: "Clone the repositories of missing components.",
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
