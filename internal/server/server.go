// Package server owns the listen/serve/shutdown lifecycle of the HTTP and
// gRPC servers.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/shashiranjanraj/foodcourt/config"
	fcgrpc "github.com/shashiranjanraj/foodcourt/pkg/grpc"
	"github.com/shashiranjanraj/foodcourt/pkg/logger"
)

const defaultShutdownTimeout = 10 * time.Second

type Options struct {
	HTTPPort        string
	GRPCPort        string
	ShutdownTimeout time.Duration
}

// Run serves handler over HTTP and the health service over gRPC until ctx
// is cancelled or the HTTP listener fails. On shutdown the gRPC health
// status flips to NOT_SERVING before HTTP drains.
//
// Request contexts derive from ctx, so long-lived streams end with it.
func Run(ctx context.Context, handler http.Handler, opts Options) error {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}

	if uri := config.LogMongoURI(); uri != "" {
		closeSink, err := logger.EnableMongo(uri, config.LogMongoDatabase(), config.LogMongoCollection())
		if err != nil {
			logger.Warn("server: mongo log sink disabled", "error", err)
		}
		defer closeSink()
	}

	grpcSrv := fcgrpc.New()
	if err := grpcSrv.Start(opts.GRPCPort); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + opts.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			grpcSrv.Stop()
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	grpcSrv.SetServing(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	grpcSrv.Stop()
	if err != nil {
		return err
	}
	logger.Info("server: stopped")
	return nil
}
