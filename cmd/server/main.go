package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/skolyn/backend/internal/config"
	"github.com/skolyn/backend/internal/handler"
	"github.com/skolyn/backend/internal/logging"
	"github.com/skolyn/backend/internal/notify"
	"github.com/skolyn/backend/internal/repository"
	"github.com/skolyn/backend/internal/service"
	"golang.org/x/sync/errgroup"
)

const shutdownGrace = 5 * time.Second

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if err := run(cfg); err != nil {
		logging.Fatal("server error", "error", err)
	}
}

// run serves until SIGINT/SIGTERM. Deferred cleanup (limiter, Redis, store)
// runs only after the listener has drained.
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := repository.Open(connectCtx, cfg.MongoURL, cfg.DBName)
	cancel()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			slog.Error("close store failed", "error", err)
		}
	}()
	slog.Info("store connected", "backend", store.Backend())

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	contactService := service.NewContactService(store.Contacts)
	blogService := service.NewBlogService(store.Blog)
	notifier, closeNotifier := newNotifier(ctx, cfg)
	defer closeNotifier()
	demoService := service.NewDemoService(notifier)

	// ブログが空のときだけサンプル記事を投入する（一覧の空判定と同じ処理）
	if _, err := blogService.SeedIfEmpty(ctx); err != nil {
		slog.Error("seed blog posts failed", "error", err)
	}

	limiter := handler.NewRateLimiter(cfg.RateLimitPerMinute).WithTrustedProxies(cfg.TrustedProxyCount)
	defer limiter.Stop()

	router := handler.NewRouter(handler.RouterConfig{
		Base:           handler.New(store, cfg.FrontendURL),
		Contact:        handler.NewContactHandler(contactService),
		Blog:           handler.NewBlogHandler(blogService),
		Demo:           handler.NewDemoHandler(demoService),
		Limiter:        limiter,
		AdminAPIKeys:   cfg.AdminAPIKeys,
		RequestTimeout: cfg.RequestTimeout,
	})
	if len(cfg.AdminAPIKeys) == 0 {
		slog.Warn("ADMIN_API_KEYS not set: contact listing and blog creation are unauthenticated")
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newNotifier publishes demo requests to Redis when REDIS_URL is set and
// falls back to logging them otherwise. The returned func releases the Redis
// client and must run after the server has drained.
func newNotifier(ctx context.Context, cfg *config.Config) (notify.Notifier, func()) {
	noop := func() {}
	if cfg.RedisURL == "" {
		return notify.NewLogNotifier(), noop
	}
	client, err := notify.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("redis unavailable, demo requests will only be logged", "error", err)
		return notify.NewLogNotifier(), noop
	}
	return notify.NewRedisNotifier(client, cfg.DemoChannel), func() {
		if err := client.Close(); err != nil {
			slog.Error("close redis failed", "error", err)
		}
	}
}
