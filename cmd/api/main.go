package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	hhttp "magazine-catalog/internal/handler/http"
	hartcl "magazine-catalog/internal/handler/http/article"
	hauthor "magazine-catalog/internal/handler/http/author"
	hmag "magazine-catalog/internal/handler/http/magazine"
	"magazine-catalog/internal/handler/http/requestid"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/infra/seed"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/usecase/catalog"
)

const serviceName = "magazine-catalog"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := initTracing(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	svc := newService(logger)
	if err := loadSeed(ctx, cfg, svc, logger); err != nil {
		return err
	}

	return serve(ctx, cfg, logger, newHandler(cfg, svc, logger))
}

// initTracing installs the stdout span exporter when tracing is enabled.
// Otherwise spans go to the no-op global provider.
func initTracing(ctx context.Context, cfg *config.Config, logger *slog.Logger) (func(context.Context) error, error) {
	if !cfg.TracingEnabled {
		return func(context.Context) error { return nil }, nil
	}
	shutdown, err := tracing.InitProvider(ctx, serviceName, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	logger.Info("tracing enabled", slog.String("exporter", "stdout"))
	return shutdown, nil
}

// newService builds the catalog over a fresh registry and in-memory indexes.
func newService(logger *slog.Logger) *catalog.Service {
	reg := entity.NewRegistry()
	return catalog.NewService(reg,
		memory.NewAuthorRepo(),
		memory.NewMagazineRepo(),
		memory.NewArticleRepo(reg),
		logger)
}

func loadSeed(ctx context.Context, cfg *config.Config, svc *catalog.Service, logger *slog.Logger) error {
	if cfg.SeedFile == "" {
		return nil
	}
	doc, err := seed.LoadFile(cfg.SeedFile)
	if err != nil {
		return err
	}
	res, err := seed.Apply(ctx, svc, doc, logger)
	if err != nil {
		return fmt.Errorf("apply seed %s: %w", cfg.SeedFile, err)
	}
	logger.Info("seed loaded",
		slog.String("file", cfg.SeedFile),
		slog.Int("authors", res.Authors),
		slog.Int("magazines", res.Magazines),
		slog.Int("articles", res.Articles))
	_, err = svc.Stats(ctx)
	return err
}

// newHandler registers every catalog route and wraps the mux with the
// middleware chain. Order, outermost first: request ID, tracing, recovery,
// logging, body limit, metrics.
func newHandler(cfg *config.Config, svc *catalog.Service, logger *slog.Logger) http.Handler {
	limiter := hhttp.NewWriteLimiter(cfg.WriteRateRPS, cfg.WriteRateBurst)

	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{Svc: svc, Version: cfg.Version})
	hauthor.Register(mux, svc, limiter.Limit)
	hmag.Register(mux, svc, limiter.Limit)
	hartcl.Register(mux, svc, limiter.Limit)

	return hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(cfg.MaxBodyBytes),
		hhttp.MetricsMiddleware,
	)
}

// serve runs the API server and, when configured, the metrics server until
// ctx is cancelled or either server fails.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, handler http.Handler) error {
	servers := []*http.Server{{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}}
	if cfg.MetricsAddr != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("GET /metrics", hhttp.MetricsHandler())
		servers = append(servers, &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsMux,
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			logger.Info("server starting",
				slog.String("addr", srv.Addr),
				slog.String("version", cfg.Version))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(sctx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("servers stopped")
	return nil
}
