package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rogerio-castellano/inventory-service/internal/config"
	"github.com/rogerio-castellano/inventory-service/internal/http/ban"
	"github.com/rogerio-castellano/inventory-service/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-service/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-service/internal/http/router"
	"github.com/rogerio-castellano/inventory-service/internal/logging"
	"github.com/rogerio-castellano/inventory-service/internal/redissvc"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	addr       string
)

var rootCmd = &cobra.Command{
	Use:          "inventory",
	Short:        "In-memory inventory REST service",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

// @title Inventory Service API
// @version 1.0
// @description REST API over an in-memory inventory: create, read, upsert, delete, search and sort items.
// @host localhost:8080
// @BasePath /
func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (yaml, json or toml)")
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides config")
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = addr
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []repo.Option
	if cfg.Seed {
		opts = append(opts, repo.WithItems(repo.SeedItems()...))
	}
	itemRepo := repo.NewInMemoryItemRepository(opts...)
	handlers.SetItemRepo(itemRepo)
	handlers.SetMetricsRepo(repo.NewInMemoryMetricsRepository(itemRepo))

	var routerOpts router.Options
	if cfg.RateLimit.Enabled {
		limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.VisitorTTL)
		go limiter.StartCleanupLoop(ctx, cfg.RateLimit.CleanupInterval)
		routerOpts.Limiter = limiter
	}

	if cfg.BanEnabled() {
		redisService, err := redissvc.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer redisService.Close()

		banService := ban.NewService(redisService, ban.Options{
			MaxStrikes:   cfg.Ban.MaxStrikes,
			StrikeWindow: cfg.Ban.StrikeWindow,
			Duration:     cfg.Ban.Duration,
		})
		go banService.StartSummaryLoop(ctx, cfg.Ban.SummaryInterval)
		routerOpts.Banner = banService
		logger.Info("ban service enabled", zap.String("redis", cfg.Redis.Addr))
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router.NewRouter(routerOpts),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr), zap.String("service", config.ServiceName))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
