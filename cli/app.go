// Package cli configures the mrdocs CLI app and its global setup.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/mrdocs/mrdocs/cli/commands"
	"github.com/mrdocs/mrdocs/cli/flags/global"
	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/internal/telemetry"
	"github.com/mrdocs/mrdocs/options"
	"github.com/mrdocs/mrdocs/pkg/log"
)

const AppName = "mrdocs"

// Version is set at build time with `-ldflags "-X github.com/mrdocs/mrdocs/cli.Version=..."`.
var Version = "dev"

// NewApp creates the mrdocs CLI App.
func NewApp(opts *options.DocsOptions) *cli.App {
	var tlm *telemetry.Telemeter

	return &cli.App{
		Name:      AppName,
		Usage:     "Aggregates the documentation of many repositories into one site tree.",
		UsageText: "mrdocs [global options] <command> [command options]",
		Version:   Version,
		Writer:    opts.Writer,
		ErrWriter: opts.ErrWriter,
		Flags:     global.NewFlags(opts),
		Commands:  commands.NewCommands(opts),
		Before: func(ctx *cli.Context) error {
			if err := initialSetup(ctx, opts); err != nil {
				return err
			}

			var err error

			tlm, err = telemetry.NewTelemeter(ctx.Context, AppName, Version, opts.Writer, opts.Telemetry)
			if err != nil {
				return err
			}

			ctx.Context = telemetry.ContextWithTelemeter(ctx.Context, tlm)
			ctx.Context = log.ContextWithLogger(ctx.Context, opts.Logger)

			return nil
		},
		After: func(ctx *cli.Context) error {
			if tlm == nil {
				return nil
			}

			return tlm.Shutdown(ctx.Context)
		},
		// Errors are reported by the caller, which also picks the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func initialSetup(ctx *cli.Context, opts *options.DocsOptions) error {
	level, err := log.ParseLevel(ctx.String(global.LogLevelFlagName))
	if err != nil {
		return errors.New(err)
	}

	opts.LogLevel = level

	if !isTerminal(opts.ErrWriter) {
		opts.NoColor = true
	}

	opts.Logger.SetOptions(
		log.WithOutput(opts.ErrWriter),
		log.WithLevel(opts.LogLevel),
		log.WithColors(!opts.NoColor),
	)

	if ctx.IsSet(global.PathFlagName) {
		opts.LookupPaths = options.ParseLookupPaths(ctx.String(global.PathFlagName))
	}

	if exporter := ctx.String(global.TelemetryExporterFlagName); exporter != "" {
		if opts.Telemetry.TraceExporter == "" {
			opts.Telemetry.TraceExporter = exporter
		}

		if opts.Telemetry.MetricExporter == "" {
			opts.Telemetry.MetricExporter = exporter
		}
	}

	if err := opts.Normalize(); err != nil {
		return err
	}

	opts.Logger.Debugf("mrdocs version %s, lookup paths %v", Version, opts.LookupPaths)

	return nil
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
