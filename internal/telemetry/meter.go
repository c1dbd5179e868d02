package telemetry

import (
	"context"
	"io"
	"time"

	"github.com/mrdocs/mrdocs/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	noneMetricExporterType     metricExporterType = "none"
	consoleMetricExporterType  metricExporterType = "console"
	otlpHTTPMetricExporterType metricExporterType = "otlpHttp"
	otlpGRPCMetricExporterType metricExporterType = "otlpGrpc"
	// grpcHttp is the older name of otlpGrpc.
	grpcHTTPMetricExporterType metricExporterType = "grpcHttp"

	readerInterval = time.Second

	durationSuffix = "_duration"
	errorsSuffix   = "_errors"
)

type metricExporterType string

// Meter wraps an OpenTelemetry meter together with the provider that owns it.
type Meter struct {
	metric.Meter
	provider *sdkmetric.MeterProvider
}

// NewMeter creates and configures the metrics collection. It returns nil when metrics are disabled.
func NewMeter(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Meter, error) {
	exporter, err := NewMetricsExporter(ctx, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	if exporter == nil {
		return nil, nil
	}

	r, err := newResource(appName, appVersion)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(r),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(readerInterval))),
	)

	otel.SetMeterProvider(provider)

	return &Meter{
		Meter:    provider.Meter(appName),
		provider: provider,
	}, nil
}

// NewMetricsExporter creates a new exporter based on the telemetry options.
func NewMetricsExporter(ctx context.Context, writer io.Writer, opts *Options) (sdkmetric.Exporter, error) {
	if opts == nil {
		return nil, nil
	}

	switch metricExporterType(opts.MetricExporter) {
	case otlpHTTPMetricExporterType:
		var config []otlpmetrichttp.Option
		if opts.MetricExporterInsecureEndpoint {
			config = append(config, otlpmetrichttp.WithInsecure())
		}

		return otlpmetrichttp.New(ctx, config...)
	case otlpGRPCMetricExporterType, grpcHTTPMetricExporterType:
		var config []otlpmetricgrpc.Option
		if opts.MetricExporterInsecureEndpoint {
			config = append(config, otlpmetricgrpc.WithInsecure())
		}

		return otlpmetricgrpc.New(ctx, config...)
	case consoleMetricExporterType:
		return stdoutmetric.New(stdoutmetric.WithWriter(writer))
	case noneMetricExporterType, "":
		return nil, nil
	default:
		return nil, errors.Errorf("unsupported metric exporter %q", opts.MetricExporter)
	}
}

// Time records the duration of fn in milliseconds, and counts its failures.
func (meter *Meter) Time(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if meter == nil || meter.provider == nil {
		return fn(ctx)
	}

	metricName := CleanMetricName(name)
	options := metric.WithAttributes(mapToAttributes(attrs)...)
	start := time.Now()

	err := fn(ctx)

	if histogram, histErr := meter.Int64Histogram(metricName+durationSuffix, metric.WithUnit("ms")); histErr == nil {
		histogram.Record(ctx, time.Since(start).Milliseconds(), options)
	}

	if err != nil {
		if counter, counterErr := meter.Int64Counter(metricName + errorsSuffix); counterErr == nil {
			counter.Add(ctx, 1, options)
		}
	}

	return err
}

// Count adds value to the counter name.
func (meter *Meter) Count(ctx context.Context, name string, value int64, attrs map[string]any) {
	if meter == nil || meter.provider == nil {
		return
	}

	counter, err := meter.Int64Counter(CleanMetricName(name))
	if err != nil {
		return
	}

	counter.Add(ctx, value, metric.WithAttributes(mapToAttributes(attrs)...))
}
