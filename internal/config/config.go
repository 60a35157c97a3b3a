// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package config loads settings for the binaries from a .env file, an
// optional TOML file and the environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

// Environment variables.
const (
	EnvConfigFile         = "WEBINAR_CONFIG"
	EnvToken              = "WEBINAR_TOKEN"
	EnvBaseURL            = "WEBINAR_BASE_URL"
	EnvTimeout            = "WEBINAR_TIMEOUT"
	EnvInsecureSkipVerify = "WEBINAR_INSECURE_SKIP_VERIFY"
	EnvUserID             = "WEBINAR_USER_ID"
	EnvWorkers            = "WEBINAR_WORKERS"
	EnvPort               = "PORT"
	EnvNatsURL            = "NATS_URL"
	EnvMessageEncoding    = "WEBHOOK_MESSAGE_ENCODING"
	EnvSummaryLang        = "WEBHOOK_SUMMARY_LANG"
	EnvSessionCacheSize   = "WEBHOOK_SESSION_CACHE_SIZE"
)

const (
	defaultPort             = "8080"
	defaultNatsURL          = "nats://localhost:4222"
	defaultWorkers          = 4
	defaultSessionCacheSize = 1024
)

// Config holds every setting used by webinar-cli and webinar-webhook.
type Config struct {
	Token              string
	BaseURL            string
	Timeout            time.Duration
	InsecureSkipVerify bool
	// UserID scopes event listings to one organizer when set.
	UserID  int64
	Workers int

	Port             string
	NatsURL          string
	MessageEncoding  string
	SummaryLang      string
	SessionCacheSize int
}

// fileConfig mirrors the TOML file layout.
type fileConfig struct {
	Token              string `toml:"token"`
	BaseURL            string `toml:"base_url"`
	Timeout            string `toml:"timeout"`
	InsecureSkipVerify bool   `toml:"insecure_skip_verify"`
	UserID             int64  `toml:"user_id"`
	Workers            int    `toml:"workers"`

	Webhook struct {
		Port             string `toml:"port"`
		NatsURL          string `toml:"nats_url"`
		MessageEncoding  string `toml:"message_encoding"`
		SummaryLang      string `toml:"summary_lang"`
		SessionCacheSize int    `toml:"session_cache_size"`
	} `toml:"webhook"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		BaseURL:          webinar.BaseURL,
		Timeout:          webinar.DefaultClientTimeout,
		Workers:          defaultWorkers,
		Port:             defaultPort,
		NatsURL:          defaultNatsURL,
		SessionCacheSize: defaultSessionCacheSize,
	}
}

// Load reads .env (if present), then the TOML file at path, then the
// environment. An empty path falls back to $WEBINAR_CONFIG; a missing file is
// only an error when the path was given explicitly.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", logging.ErrKey, err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.loadFile(path, explicit); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	setString(&c.Token, raw.Token)
	setString(&c.BaseURL, raw.BaseURL)
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("config: invalid timeout %q: %w", raw.Timeout, err)
		}
		c.Timeout = d
	}
	c.InsecureSkipVerify = c.InsecureSkipVerify || raw.InsecureSkipVerify
	if raw.UserID != 0 {
		c.UserID = raw.UserID
	}
	if raw.Workers != 0 {
		c.Workers = raw.Workers
	}

	setString(&c.Port, raw.Webhook.Port)
	setString(&c.NatsURL, raw.Webhook.NatsURL)
	setString(&c.MessageEncoding, raw.Webhook.MessageEncoding)
	setString(&c.SummaryLang, raw.Webhook.SummaryLang)
	if raw.Webhook.SessionCacheSize != 0 {
		c.SessionCacheSize = raw.Webhook.SessionCacheSize
	}
	return nil
}

func (c *Config) loadEnv() error {
	setString(&c.Token, os.Getenv(EnvToken))
	setString(&c.BaseURL, os.Getenv(EnvBaseURL))
	setString(&c.Port, os.Getenv(EnvPort))
	setString(&c.NatsURL, os.Getenv(EnvNatsURL))
	setString(&c.MessageEncoding, os.Getenv(EnvMessageEncoding))
	setString(&c.SummaryLang, os.Getenv(EnvSummaryLang))

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvTimeout, v, err)
		}
		c.Timeout = d
	}
	if v := os.Getenv(EnvInsecureSkipVerify); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvInsecureSkipVerify, v, err)
		}
		c.InsecureSkipVerify = b
	}
	if v := os.Getenv(EnvUserID); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvUserID, v, err)
		}
		c.UserID = id
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvSessionCacheSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvSessionCacheSize, v, err)
		}
		c.SessionCacheSize = n
	}
	return nil
}

func (c *Config) validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid base URL %q: %w", c.BaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid base URL %q: missing scheme or host", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	return nil
}

// RequireToken fails when no API token is configured.
func (c *Config) RequireToken() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: %s is required", EnvToken)
	}
	return nil
}

// ClientConfig converts the settings into a webinar client configuration.
func (c *Config) ClientConfig() webinar.Config {
	return webinar.Config{
		Token:              c.Token,
		BaseURL:            c.BaseURL,
		Timeout:            c.Timeout,
		InsecureSkipVerify: c.InsecureSkipVerify,
	}
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
