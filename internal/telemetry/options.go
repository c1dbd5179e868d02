package telemetry

// Options selects the exporters used for traces and metrics.
type Options struct {
	// TraceExporter is one of `none`, `console`, `otlpHttp`, `otlpGrpc` or `http`.
	TraceExporter string
	// TraceExporterHTTPEndpoint is required by the `http` trace exporter.
	TraceExporterHTTPEndpoint string
	// TraceParent continues a trace started by a calling process, in W3C traceparent format.
	TraceParent string
	// MetricExporter is one of `none`, `console`, `otlpHttp` or `grpcHttp`.
	MetricExporter string

	TraceExporterInsecureEndpoint  bool
	MetricExporterInsecureEndpoint bool
}

// Enabled reports whether any exporter is configured.
func (opts *Options) Enabled() bool {
	if opts == nil {
		return false
	}

	return (opts.TraceExporter != "" && opts.TraceExporter != string(noneTraceExporterType)) ||
		(opts.MetricExporter != "" && opts.MetricExporter != string(noneMetricExporterType))
}
