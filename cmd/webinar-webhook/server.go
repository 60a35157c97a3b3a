// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/handlers"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/middleware"
)

const gracefulShutdownSeconds = 25

// newRouter mounts the webhook and health endpoints behind the middleware chain.
func newRouter(webhookHandler *handlers.WebinarWebhookHandler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(handlers.WebhookPath, webhookHandler)
	mux.HandleFunc("GET /livez", handlers.Livez)
	mux.HandleFunc("GET /readyz", handlers.Readyz(webhookHandler))

	var handler http.Handler = mux

	// Note: Order matters - RequestIDMiddleware should come first in the chain,
	// so it should be the last middleware added to the handler since it is executed in reverse order.
	handler = middleware.RequestLoggerMiddleware()(handler)
	handler = middleware.RequestIDMiddleware()(handler)
	handler = otelhttp.NewHandler(handler, "webinar-webhook")

	return handler
}

// setupHTTPServer configures and starts the HTTP server
func setupHTTPServer(bind, port string, webhookHandler *handlers.WebinarWebhookHandler, gracefulCloseWG *sync.WaitGroup) *http.Server {
	var addr string
	if bind == "*" {
		addr = ":" + port
	} else {
		addr = bind + ":" + port
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           newRouter(webhookHandler),
		ReadHeaderTimeout: 3 * time.Second,
	}
	gracefulCloseWG.Add(1)
	go func() {
		slog.With("addr", addr).Debug("starting http server, listening on port " + port)
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			slog.With(logging.ErrKey, err).Error("http listener error")
			os.Exit(1)
		}
		// Because ErrServerClosed is *immediately* returned when Shutdown is
		// called, not when when Shutdown completes, this must not yet decrement
		// the wait group.
	}()

	return httpServer
}

// setupNATS connects to NATS. An unexpected close of the connection stops the
// service through done.
func setupNATS(ctx context.Context, natsURL string, gracefulCloseWG *sync.WaitGroup, done chan os.Signal) (*nats.Conn, error) {
	natsConn, err := nats.Connect(
		natsURL,
		nats.Name("lfx-v2-webinar-webhook"),
		nats.DrainTimeout(gracefulShutdownSeconds*time.Second),
		nats.MaxReconnects(-1),
		nats.ConnectHandler(func(_ *nats.Conn) {
			slog.With("nats_url", natsURL).Info("NATS connection established")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			slog.With(logging.ErrKey, err).Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			slog.Info("NATS reconnected")
		}),
		nats.ErrorHandler(func(_ *nats.Conn, s *nats.Subscription, err error) {
			if s != nil {
				slog.With(logging.ErrKey, err, "subject", s.Subject).Error("async NATS error")
			} else {
				slog.With(logging.ErrKey, err).Error("async NATS error outside subscription")
			}
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			if ctx.Err() != nil {
				// Expected shutdown.
				return
			}
			slog.Error("NATS connection closed unexpectedly")
			done <- os.Interrupt
		}),
	)
	if err != nil {
		return nil, err
	}
	gracefulCloseWG.Add(1)
	return natsConn, nil
}

// gracefulShutdown stops the HTTP server, then drains NATS.
func gracefulShutdown(httpServer *http.Server, natsConn *nats.Conn, gracefulCloseWG *sync.WaitGroup, cancel context.CancelFunc) {
	slog.Info("shutting down")
	cancel()

	go func() {
		ctx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownSeconds*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			slog.With(logging.ErrKey, err).Error("http shutdown error")
		}
		gracefulCloseWG.Done()
	}()

	go func() {
		if !natsConn.IsClosed() && !natsConn.IsDraining() {
			slog.Info("draining NATS connection")
			if err := natsConn.Drain(); err != nil {
				slog.With(logging.ErrKey, err).Error("error draining NATS connection")
			}
		}
		gracefulCloseWG.Done()
	}()

	gracefulCloseWG.Wait()
	slog.Info("graceful shutdown complete")
}
