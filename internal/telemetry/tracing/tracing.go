package tracing

import (
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("liftlog-backend")

// EndSpanWithErrCheck sets the span status from err and ends it.
// Meant to be used with a deferred call and a named error return.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// HoneycombSetup configures the OpenTelemetry SDK via the Honeycomb
// distro and instruments the given redis client. The returned shutdown
// function must be called on service teardown.
func HoneycombSetup(tracingEnabled bool, serviceName string, rdb *redis.Client) (func(), error) {
	if !tracingEnabled {
		log.Debugln("honeycomb tracing disabled, skipping otel setup")
		return func() {}, nil
	}

	bsp := honeycomb.NewBaggageSpanProcessor()
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(bsp),
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, err
	}

	rdb.AddHook(redisotel.NewTracingHook())

	log.Debugln("honeycomb tracing set up")
	return otelShutdown, nil
}
