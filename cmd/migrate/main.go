package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/skolyn/backend/internal/config"
	"github.com/skolyn/backend/internal/logging"
	"github.com/skolyn/backend/internal/repository"
	"github.com/skolyn/backend/internal/service"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:   "migrate",
		Short: "Prepare the Skolyn store",
		Long: `migrate prepares the store named by MONGO_URL.

A mongodb:// URL gets its indexes created; a postgres:// URL gets its tables
created. Both commands are idempotent.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(config.Load().LogLevel)
		},
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline for the command")

	root.AddCommand(
		&cobra.Command{
			Use:   "schema",
			Short: "Create indexes (MongoDB) or tables (PostgreSQL)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd.Context(), timeout, func(ctx context.Context, store *repository.Store) error {
					if err := store.EnsureSchema(ctx); err != nil {
						return fmt.Errorf("ensure schema: %w", err)
					}
					slog.Info("schema ready", "backend", store.Backend())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the sample blog posts into an empty blog",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd.Context(), timeout, func(ctx context.Context, store *repository.Store) error {
					if err := store.EnsureSchema(ctx); err != nil {
						return fmt.Errorf("ensure schema: %w", err)
					}
					n, err := service.NewBlogService(store.Blog).SeedIfEmpty(ctx)
					if err != nil {
						return fmt.Errorf("seed blog posts: %w", err)
					}
					slog.Info("seed completed", "backend", store.Backend(), "inserted", n)
					return nil
				})
			},
		},
	)
	return root
}

// withStore opens the configured store, runs fn and closes the store.
func withStore(parent context.Context, timeout time.Duration, fn func(context.Context, *repository.Store) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	cfg := config.Load()
	store, err := repository.Open(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			slog.Error("close store failed", "error", err)
		}
	}()

	if err := fn(ctx, store); err != nil {
		slog.Error("migrate failed", "error", err)
		return err
	}
	return nil
}
