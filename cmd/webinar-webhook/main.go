// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package main is the webhook receiver: it accepts webinar platform
// notifications over HTTP and republishes them on NATS.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/config"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/handlers"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/messaging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

// flags are the command line flags for the webhook receiver.
type flags struct {
	Debug      bool
	Port       string
	Bind       string
	ConfigPath string
}

func parseFlags() flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", "", "listen port (default from PORT or 8080)")
	var bind = flag.String("bind", "*", "interface to bind on")
	var configPath = flag.String("config", "", "path to a TOML config file")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructureLogConfig]
	if *debug {
		if err := os.Setenv("LOG_LEVEL", "debug"); err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug:      *debug,
		Port:       *port,
		Bind:       *bind,
		ConfigPath: *configPath,
	}
}

func main() {
	flags := parseFlags()

	logging.InitStructureLogConfig()

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error loading configuration")
		os.Exit(1)
	}
	if flags.Port != "" {
		cfg.Port = flags.Port
	}

	encoding, err := messaging.ParseEncoding(cfg.MessageEncoding)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("invalid message encoding")
		os.Exit(1)
	}

	// The API client is only used to look up session names.
	var client webinar.ClientAPI
	if cfg.Token != "" {
		client = webinar.NewClient(cfg.ClientConfig())
	} else {
		slog.Warn("no API token configured, session names will not be looked up")
	}

	names, err := handlers.NewSessionNameCache(cfg.SessionCacheSize)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error creating session name cache")
		os.Exit(1)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	natsConn, err := setupNATS(ctx, cfg.NatsURL, &gracefulCloseWG, done)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up NATS")
		return
	}

	publisher := messaging.NewPublisher(natsConn, encoding)
	webhookHandler := handlers.NewWebinarWebhookHandler(client, publisher, names, cfg.SummaryLang)

	httpServer := setupHTTPServer(flags.Bind, cfg.Port, webhookHandler, &gracefulCloseWG)

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	gracefulShutdown(httpServer, natsConn, &gracefulCloseWG, cancel)
}
