// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-draft-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-draft-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-draft-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/go-draft-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-draft-service/internal/app/drafts"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/config"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/health"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-draft-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel, err := initTelemetry(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(injector, cfg, logger)

	// Resolving the server wires the whole graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	draftStore := do.MustInvoke[*drafts.Service](injector)

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))
	registry.Register(draftStore)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Drafts close first so their event streams end before the HTTP drain
	// waits on them.
	shutdown(logger, []shutdownStep{
		{name: "drafts", timeout: serverShutdownTimeout, fn: func(context.Context) error { return draftStore.Shutdown() }},
		{name: "http server", timeout: serverShutdownTimeout, fn: server.Shutdown},
		{name: "telemetry", timeout: otelShutdownTimeout, fn: otel.Shutdown},
	})
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

// shutdownStep stops one component within its own deadline.
type shutdownStep struct {
	name    string
	timeout time.Duration
	fn      func(context.Context) error
}

// shutdown runs steps in order. A failing step is logged and the rest still
// run.
func shutdown(logger *slog.Logger, steps []shutdownStep) {
	for _, step := range steps {
		ctx, cancel := context.WithTimeout(context.Background(), step.timeout)
		err := step.fn(ctx)
		cancel()
		if err != nil {
			logger.Error("shutdown step failed",
				slog.String("step", step.name),
				slog.Any("error", err),
			)
		}
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "todo-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoStore, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTodoStore(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*drafts.Service, error) {
		store := do.MustInvoke[ports.TodoStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return drafts.New(store, cfg.Drafts, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DraftService, error) {
		return do.MustInvoke[*drafts.Service](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DraftHandler, error) {
		svc := do.MustInvoke[ports.DraftService](i)
		return handlers.NewDraftHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		draftStore := do.MustInvoke[*drafts.Service](i)
		client := do.MustInvoke[*httpclient.Client](i)
		return handlers.NewHealthHandler(registry,
			handlers.WithOpenDrafts(draftStore),
			handlers.WithCircuitBreaker(client),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		draftH := do.MustInvoke[*handlers.DraftHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(draftH, healthH, cfg.Server.WriteTimeout,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
