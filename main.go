package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	restapi "github.com/hedisam/ringqueue/api/rest"
	"github.com/hedisam/ringqueue/internal/config"
	"github.com/hedisam/ringqueue/internal/custompromauto"
	"github.com/hedisam/ringqueue/internal/store/memdb"
)

func main() {
	logger := logrus.New()

	opts, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.WithError(err).Error("Invalid options")
		os.Exit(1)
	}

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	queueStore := memdb.NewQueueStore(memdb.WithCapacity(opts.Capacity))

	restServer := restapi.NewServer(logger, queueStore)
	mux := http.NewServeMux()
	restServer.Register(mux)

	// use a custom prom registry to avoid recording the default http handler metrics
	mux.Handle("/metrics", promhttp.HandlerFor(custompromauto.Registry(), promhttp.HandlerOpts{}))

	logger.WithField("capacity", opts.Capacity).Info("Queue ready")
	mustListenAndServe(ctx, logger, opts.ServerAddr, opts.ShutdownTimeout, mux)
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, shutdownTimeout time.Duration, handler http.Handler) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving server...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server...")
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}
