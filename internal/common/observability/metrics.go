package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability owns the otel meter used for assessment-level instruments.
// Instruments are exported through the default prometheus registry, so they
// appear on /metrics next to the promauto counters.
type Observability struct {
	meterProvider  *metric.MeterProvider
	meter          otelmetric.Meter
	assessments    otelmetric.Int64Counter
	webhookLatency otelmetric.Float64Histogram
}

func New(serviceName string) (*Observability, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return &Observability{}, err
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	o := &Observability{
		meterProvider: provider,
		meter:         provider.Meter(serviceName),
	}

	o.assessments, err = o.meter.Int64Counter(
		"assessments.completed",
		otelmetric.WithDescription("Number of brand assessments completed"),
	)
	if err != nil {
		return o, err
	}

	o.webhookLatency, err = o.meter.Float64Histogram(
		"webhook.latency",
		otelmetric.WithDescription("Scoring webhook latency"),
		otelmetric.WithUnit("ms"),
	)
	return o, err
}

// Noop returns an Observability whose recorders do nothing.
func Noop() *Observability {
	return &Observability{}
}

func (o *Observability) RecordAssessment(ctx context.Context, source string) {
	if o == nil || o.assessments == nil {
		return
	}
	o.assessments.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("source", source),
	))
}

func (o *Observability) RecordWebhookLatency(ctx context.Context, duration time.Duration, outcome string) {
	if o == nil || o.webhookLatency == nil {
		return
	}
	o.webhookLatency.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (o *Observability) Shutdown() {
	if o == nil || o.meterProvider == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = o.meterProvider.Shutdown(ctx)
}
