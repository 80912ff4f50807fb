package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pedigraph/pedigraph/internal/api"
	"github.com/pedigraph/pedigraph/internal/config"
	"github.com/pedigraph/pedigraph/pkg/cache"
	"github.com/pedigraph/pedigraph/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configFile string
		addr       string
		redisAddr  string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the pedigraph HTTP API server",
		Long: `Run the pedigraph HTTP API server.

The server accepts GEDCOM uploads on POST /api/parse and serves the
resulting graphs and layouts as JSON. Settings come from an optional
TOML config file, environment variables, and flags, in that order.

With --redis the shared Redis cache backend is used instead of the
local file cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configFile, addr, redisAddr, noCache)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address, e.g. localhost:6379")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, configFile, addr, redisAddr string, noCache bool) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if redisAddr != "" {
		cfg.Cache.RedisAddr = redisAddr
	}

	cacheBackend, err := c.newServerCache(ctx, cfg, noCache)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(cacheBackend, nil, c.Logger)
	defer runner.Close()

	defaults := pipeline.Options{
		HSpacing: cfg.Layout.HSpacing,
		VSpacing: cfg.Layout.VSpacing,
	}
	srv := api.NewServer(runner, api.NewGraphStore(), c.Logger, defaults)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("starting server", "addr", cfg.Server.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// newServerCache selects the cache backend from config: Redis when an
// address is configured, the local file cache otherwise.
func (c *CLI) newServerCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache", "addr", cfg.Cache.RedisAddr)
		return rc, nil
	}
	return cache.NewFileCache(cfg.Cache.Dir)
}
