package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/go-draft-service/internal/platform/telemetry"
)

// Init tests are NOT parallel because InitTracer and InitMeter set globals.

func TestInitTracer(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unsupported exporter", exporter: "jaeger", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := telemetry.InitTracer(ctx, "test-service", tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitTracer() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitTracer() error = %v", err)
			}
			// No collector runs in unit tests, so an OTLP flush may fail.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			if len(otel.GetTextMapPropagator().Fields()) < 2 {
				t.Error("global propagator missing TraceContext or Baggage fields")
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unsupported exporter", exporter: "prometheus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp, err := telemetry.InitMeter(ctx, "test-service", tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitMeter() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitMeter() error = %v", err)
			}
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })
		})
	}
}

func TestNewMetrics_RecordsDraftInstruments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	todoKind := metric.WithAttributes(telemetry.AttrDraftKind.String("todo"))
	metrics.DraftsOpened.Add(ctx, 1, todoKind)
	metrics.DraftsActive.Add(ctx, 1)
	metrics.DraftsActive.Add(ctx, 1)
	metrics.DraftsActive.Add(ctx, -1)
	metrics.DraftCommits.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrDraftKind.String("todo"),
		telemetry.AttrResult.String("rejected"),
	))
	metrics.DraftValidationErrors.Record(ctx, 3, todoKind)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	seen := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			seen[m.Name] = m.Data
		}
	}

	for _, name := range []string{"drafts.opened", "drafts.active", "drafts.commits", "drafts.validation_errors"} {
		if _, ok := seen[name]; !ok {
			t.Errorf("metric %q not collected", name)
		}
	}

	active, ok := seen["drafts.active"].(metricdata.Sum[int64])
	if !ok || len(active.DataPoints) != 1 || active.DataPoints[0].Value != 1 {
		t.Errorf("drafts.active = %+v, want a single point of 1", seen["drafts.active"])
	}
	if !ok || active.IsMonotonic {
		t.Error("drafts.active is monotonic, want an up-down counter")
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "test-service")
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}

	// Recording on noop instruments must not panic.
	ctx := context.Background()
	metrics.ServerRequestTotal.Add(ctx, 1)
	metrics.DraftsOpened.Add(ctx, 1, metric.WithAttributes(telemetry.AttrDraftKind.String("todo")))
	metrics.DraftsActive.Add(ctx, -1)
	metrics.DraftValidationErrors.Record(ctx, 3)
}
