// Package commands lists the subcommands of the mrdocs CLI.
package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/mrdocs/mrdocs/cli/commands/build"
	"github.com/mrdocs/mrdocs/cli/commands/fetch"
	"github.com/mrdocs/mrdocs/cli/commands/status"
	"github.com/mrdocs/mrdocs/cli/commands/watch"
	"github.com/mrdocs/mrdocs/options"
)

// NewCommands returns the commands of the app, in help order.
func NewCommands(opts *options.DocsOptions) []*cli.Command {
	return []*cli.Command{
		build.NewCommand(opts),
		status.NewCommand(opts),
		fetch.NewCommand(opts),
		watch.NewCommand(opts),
	}
}
