// Package global provides CLI global flags.
package global

import (
	"github.com/urfave/cli/v2"

	"github.com/mrdocs/mrdocs/cli/flags"
	"github.com/mrdocs/mrdocs/options"
)

const (
	ConfigFlagName   = "config"
	PathFlagName     = "path"
	DraftFlagName    = "draft"
	LogLevelFlagName = "log-level"
	NoColorFlagName  = "no-color"

	// Telemetry flags.

	TelemetryExporterFlagName                       = "telemetry-exporter"
	TelemetryTraceExporterFlagName                  = "telemetry-trace-exporter"
	TelemetryTraceExporterInsecureEndpointFlagName  = "telemetry-trace-exporter-insecure-endpoint"
	TelemetryTraceExporterHTTPEndpointFlagName      = "telemetry-trace-exporter-http-endpoint"
	TraceparentFlagName                             = "traceparent"
	TelemetryMetricExporterFlagName                 = "telemetry-metric-exporter"
	TelemetryMetricExporterInsecureEndpointFlagName = "telemetry-metric-exporter-insecure-endpoint"
)

// NewFlags creates and returns global flags.
func NewFlags(opts *options.DocsOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        ConfigFlagName,
			Aliases:     []string{"c"},
			EnvVars:     flags.EnvVarsFor(ConfigFlagName),
			Destination: &opts.ConfigPath,
			Usage:       "Site configuration file. Defaults to mrdocs.yml in the working directory.",
		},
		&cli.StringFlag{
			Name:    PathFlagName,
			Aliases: []string{"p"},
			EnvVars: flags.EnvVarsFor(PathFlagName),
			Usage:   "Colon separated lookup paths, each `[repo@]dir`. Earlier entries take priority. Defaults to the parent of the working directory.",
		},
		&cli.BoolFlag{
			Name:        DraftFlagName,
			EnvVars:     flags.EnvVarsFor(DraftFlagName),
			Destination: &opts.Draft,
			Usage:       "Build even when some components are missing.",
		},
		&cli.StringFlag{
			Name:    LogLevelFlagName,
			EnvVars: flags.EnvVarsFor(LogLevelFlagName),
			Value:   opts.LogLevel.String(),
			Usage:   "Sets the logging level. Valid values: error, warn, info, debug, trace.",
		},
		&cli.BoolFlag{
			Name:        NoColorFlagName,
			EnvVars:     flags.EnvVarsFor(NoColorFlagName),
			Destination: &opts.NoColor,
			Usage:       "Disables color output.",
		},
		&cli.StringFlag{
			Name:    TelemetryExporterFlagName,
			EnvVars: flags.EnvVarsFor(TelemetryExporterFlagName),
			Usage:   "Shorthand setting both the trace and the metric exporter, e.g. console.",
		},
		&cli.StringFlag{
			Name:        TelemetryTraceExporterFlagName,
			EnvVars:     flags.EnvVarsFor(TelemetryTraceExporterFlagName),
			Destination: &opts.Telemetry.TraceExporter,
			Usage:       "Enables telemetry trace exporter. Valid values: none, console, otlpHttp, otlpGrpc, http.",
		},
		&cli.StringFlag{
			Name:        TelemetryTraceExporterHTTPEndpointFlagName,
			EnvVars:     flags.EnvVarsFor(TelemetryTraceExporterHTTPEndpointFlagName),
			Destination: &opts.Telemetry.TraceExporterHTTPEndpoint,
			Usage:       "Endpoint of the http trace exporter.",
		},
		&cli.BoolFlag{
			Name:        TelemetryTraceExporterInsecureEndpointFlagName,
			EnvVars:     flags.EnvVarsFor(TelemetryTraceExporterInsecureEndpointFlagName),
			Destination: &opts.Telemetry.TraceExporterInsecureEndpoint,
			Usage:       "Use an insecure connection for the trace exporter.",
		},
		&cli.StringFlag{
			Name:        TraceparentFlagName,
			EnvVars:     []string{"TRACEPARENT"},
			Destination: &opts.Telemetry.TraceParent,
			Usage:       "Parent trace, in W3C traceparent format.",
		},
		&cli.StringFlag{
			Name:        TelemetryMetricExporterFlagName,
			EnvVars:     flags.EnvVarsFor(TelemetryMetricExporterFlagName),
			Destination: &opts.Telemetry.MetricExporter,
			Usage:       "Enables telemetry metric exporter. Valid values: none, console, otlpHttp, grpcHttp.",
		},
		&cli.BoolFlag{
			Name:        TelemetryMetricExporterInsecureEndpointFlagName,
			EnvVars:     flags.EnvVarsFor(TelemetryMetricExporterInsecureEndpointFlagName),
			Destination: &opts.Telemetry.MetricExporterInsecureEndpoint,
			Usage:       "Use an insecure connection for the metric exporter.",
		},
	}
}
