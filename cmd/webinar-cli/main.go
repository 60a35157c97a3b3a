// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package main is a command line client for the webinar platform API. It
// prints JSON records to stdout, optionally filtered with a jq expression.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/config"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/query"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

// globalFlags are accepted before the subcommand name.
type globalFlags struct {
	Debug      bool
	ConfigPath string
	JQ         string
	Token      string
	BaseURL    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("webinar-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var g globalFlags
	fs.BoolVar(&g.Debug, "d", false, "enable debug logging")
	fs.StringVar(&g.ConfigPath, "config", "", "path to a TOML config file")
	fs.StringVar(&g.JQ, "jq", "", "jq expression applied to the output")
	fs.StringVar(&g.Token, "token", "", "API token (overrides "+config.EnvToken+")")
	fs.StringVar(&g.BaseURL, "base-url", "", "API base URL")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		usage(fs)
		return 2
	}

	initLogging(stderr, g.Debug)

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n", name)
		usage(fs)
		return 2
	}

	var filter *query.Filter
	if g.JQ != "" {
		var err error
		if filter, err = query.Compile(g.JQ); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if g.Token != "" {
		cfg.Token = g.Token
	}
	if g.BaseURL != "" {
		cfg.BaseURL = g.BaseURL
	}
	if err := cfg.RequireToken(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	env := &environment{
		client: webinar.NewClient(cfg.ClientConfig()),
		cfg:    cfg,
		stdout: stdout,
		stderr: stderr,
	}

	result, err := cmd.run(ctx, env, fs.Args()[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 2
		}
		slog.ErrorContext(ctx, "command failed", "command", name, logging.ErrKey, err)
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if result == nil {
		return 0
	}

	if err := writeOutput(stdout, result, filter); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// initLogging sends logs to stderr so that stdout only carries results.
// LOG_FILE still redirects them to a rotated file.
func initLogging(stderr io.Writer, debug bool) {
	if debug {
		_ = os.Setenv("LOG_LEVEL", "debug")
	}
	if os.Getenv("LOG_FILE") != "" {
		logging.InitStructureLogConfig()
		return
	}
	level := logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	if !debug && os.Getenv("LOG_LEVEL") == "" {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(logging.NewHandler(stderr, &slog.HandlerOptions{Level: level})))
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	_, _ = fmt.Fprintln(out, "usage: webinar-cli [flags] <command> [command flags] [args]")
	_, _ = fmt.Fprintln(out, "\nflags:")
	fs.PrintDefaults()
	_, _ = fmt.Fprintln(out, "\ncommands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(out, "  %-16s %s\n", name, commands[name].summary)
	}
}
