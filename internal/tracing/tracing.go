// Package tracing hands out otel tracers. Spans are dropped unless Setup finds
// a jaeger agent address in $JAEGER_TRACE.
package tracing

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/maxmcd/calc/internal/logger"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "calc"
	// EnvVar is the jaeger agent to export to, eg: "localhost:6831"
	EnvVar = "JAEGER_TRACE"
)

var provider = tracesdk.NewTracerProvider(tracesdk.WithSampler(tracesdk.NeverSample()))

func jaegerProvider(agent string) (*tracesdk.TracerProvider, error) {
	host, port, err := net.SplitHostPort(agent)
	if err != nil {
		return nil, errors.Wrapf(err, "%s=%q should be host:port", EnvVar, agent)
	}
	exporter, err := jaeger.New(jaeger.WithAgentEndpoint(
		jaeger.WithAgentHost(host),
		jaeger.WithAgentPort(port),
	))
	if err != nil {
		return nil, errors.Wrap(err, "creating jaeger exporter")
	}
	return tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	), nil
}

// Setup switches to exporting spans when $JAEGER_TRACE is set. Tracers handed
// out before Setup keep the provider they were created with.
func Setup() error {
	agent, found := os.LookupEnv(EnvVar)
	if !found {
		return nil
	}
	tp, err := jaegerProvider(agent)
	if err != nil {
		return err
	}
	provider = tp
	otel.SetTracerProvider(tp)
	logger.Debugw("exporting traces", "agent", agent)
	return nil
}

// Tracer returns a tracer that follows the provider installed by Setup.
func Tracer(name string) trace.Tracer {
	return lazyTracer{name: name}
}

type lazyTracer struct {
	name string
}

func (lt lazyTracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return provider.Tracer(lt.name).Start(ctx, spanName, opts...)
}

// Stop flushes any buffered spans.
func Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := provider.Shutdown(ctx); err != nil {
		logger.Print(err)
	}
}
