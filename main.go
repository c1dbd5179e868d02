package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mrdocs/mrdocs/cli"
	"github.com/mrdocs/mrdocs/internal/errors"
	"github.com/mrdocs/mrdocs/options"
	"github.com/mrdocs/mrdocs/pkg/log"
)

// The main entrypoint for mrdocs
func main() {
	opts := options.NewDocsOptions()

	// A .env file in the working directory may carry the MRDOCS_* settings.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		opts.Logger.Warnf("Failed to read .env: %v", err)
	}

	defer errors.Recover(checkForErrorsAndExit(opts))

	app := cli.NewApp(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.RunContext(log.ContextWithLogger(ctx, opts.Logger), os.Args)

	stop()
	checkForErrorsAndExit(opts)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(opts *options.DocsOptions) func(error) {
	return func(err error) {
		if err == nil || errors.IsContextCanceled(err) {
			os.Exit(0)
		}

		opts.Logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			opts.Logger.Trace(errStack)
		}

		os.Exit(errors.ExitCode(err))
	}
}
