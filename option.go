package termsh

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/viant/termsh/service/monitor"
	"github.com/viant/termsh/tracing"
)

// Option customizes the Service façade.
type Option func(s *Service)

// WithConfig supplies a configuration; nil entries fall back to defaults.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithCollector overrides the metrics collector; pass nil to disable
// metric commands (they degrade to a fixed message).
func WithCollector(collector monitor.Collector) Option {
	return func(s *Service) {
		s.collector = collector
		s.collectorSet = true
	}
}

// WithTracing configures OpenTelemetry tracing. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied
// file path. Safe to call multiple times; the first successful
// initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing with a custom
// SpanExporter (OTLP, Jaeger, Zipkin, ...).
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
