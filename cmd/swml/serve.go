package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/swml/internal/presentation/tui"
	httpAdapter "github.com/aretw0/swml/pkg/adapters/http"
	"github.com/aretw0/swml/pkg/adapters/redis"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve documents over HTTP",
	Long: `Starts an HTTP server exposing the built-in templates under /swml/{name},
stored documents under /documents/{name}, POST /validate and /convert, and
Prometheus metrics on /metrics.

Documents are read from --dir, or from Redis when --redis-url is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []httpAdapter.Option{
			httpAdapter.WithDir(cfg.Serve.Dir),
			httpAdapter.WithStrict(cfg.Strict),
			httpAdapter.WithLogger(logger),
		}
		if cfg.Serve.RedisURL != "" {
			store, err := redis.New(cfg.Serve.RedisURL)
			if err != nil {
				return err
			}
			defer store.Close()

			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = store.Ping(pingCtx)
			cancel()
			if err != nil {
				return fmt.Errorf("connect to redis: %w", err)
			}
			opts = append(opts, httpAdapter.WithStore(store))
		}
		handler := httpAdapter.NewHandler(newRegistry(), opts...)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Serve.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", srv.Addr, "dir", cfg.Serve.Dir, "redis", cfg.Serve.RedisURL != "", "strict", cfg.Strict)
			serverErrors <- srv.ListenAndServe()
		}()

		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(os.Stdout)
		}

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("dir", "", "Directory of .json/.yaml documents served under /documents")
	serveCmd.Flags().String("redis-url", "", "Redis URL of the document store (instead of --dir)")
}
