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

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	shutdownTimeout    = 10 * time.Second
	tokenPurgeInterval = time.Hour
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	gin.SetMode(a.cfg.GinMode)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.cfg.Port),
		Handler:           withCORS(newRouter(a), a.cfg.CORS.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeTokens(ctx, a)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting brewlog server",
			zap.String("addr", srv.Addr),
			zap.String("env", a.cfg.Env),
			zap.Bool("test_mode", a.cfg.TestMode))
		if a.cfg.TestMode {
			logger.Warn("test mode enabled, authentication is bypassed")
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// purgeTokens removes expired API tokens until ctx is cancelled.
func purgeTokens(ctx context.Context, a *app) {
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()
	for {
		purged, err := a.tokens.PurgeExpired()
		if err != nil {
			logger.Error("failed to purge expired tokens", zap.Error(err))
		} else if purged > 0 {
			logger.Info("purged expired tokens", zap.Int64("count", purged))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
