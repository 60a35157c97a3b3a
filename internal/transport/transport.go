// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package transport performs single HTTP calls against the webinar platform.
//
// Every call is one attempt: there is no retry and no backoff. Failures are
// logged once at warn level and returned as categorized domain errors so the
// caller can tell "unreachable" from "not found" from "unauthorized".
package transport

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
)

const (
	// AuthTokenHeader carries the platform API token.
	AuthTokenHeader = "x-auth-token"
	// RequestIDHeader correlates a call with its log lines.
	RequestIDHeader = "X-Request-ID"
	// FormContentType is sent with every request that carries a body.
	FormContentType = "application/x-www-form-urlencoded"
	// DefaultTimeout bounds a single call when the caller sets none.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the client to the platform.
	DefaultUserAgent = "lfx-v2-webinar-client"
)

// Config holds the settings of a Transport. It is copied at construction.
type Config struct {
	BaseURL string
	// TokenSource supplies the value of the x-auth-token header. Use
	// oauth2.StaticTokenSource for a fixed token.
	TokenSource oauth2.TokenSource
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
	// InsecureSkipVerify disables certificate validation. Off by default.
	InsecureSkipVerify bool
	UserAgent          string
	// Optional: replaces the instrumented HTTP client, mostly for tests.
	HTTPClient *http.Client
}

// Request describes one call. Query and Form are sent as given; a non-nil
// Form becomes a form-urlencoded body.
type Request struct {
	Method string
	Route  string
	Query  url.Values
	Form   url.Values
	// Header overrides the fixed header set for this call only.
	Header http.Header
}

// Response is a successful (2xx) reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsNull reports whether the body is empty or the JSON literal null.
func (r *Response) IsNull() bool {
	trimmed := strings.TrimSpace(string(r.Body))
	return trimmed == "" || trimmed == "null"
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return domain.NewDecodeError("failed to decode webinar API response", err).WithStatus(r.StatusCode)
	}
	return nil
}

// Transport issues requests to a fixed base URL with a fixed header set.
// It holds no mutable state and is safe for concurrent use.
type Transport struct {
	httpClient *http.Client
	baseURL    string
	headers    http.Header
	tokens     oauth2.TokenSource
}

// New creates a Transport from cfg, filling defaults.
func New(cfg Config) *Transport {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(cfg)
	}

	headers := http.Header{}
	headers.Set("Accept", "*/*")
	headers.Set("User-Agent", cfg.UserAgent)

	return &Transport{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		headers:    headers,
		tokens:     cfg.TokenSource,
	}
}

func newHTTPClient(cfg Config) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
		// #nosec G402 -- only when the caller opts out explicitly
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}
	if cfg.InsecureSkipVerify {
		slog.Warn("TLS certificate validation is disabled for the webinar API", "base_url", cfg.BaseURL)
	}

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(base),
	}
}

// Get issues a GET with query parameters.
func (t *Transport) Get(ctx context.Context, route string, query url.Values) (*Response, error) {
	return t.Do(ctx, Request{Method: http.MethodGet, Route: route, Query: query})
}

// Post issues a POST with a form body.
func (t *Transport) Post(ctx context.Context, route string, form url.Values) (*Response, error) {
	return t.Do(ctx, Request{Method: http.MethodPost, Route: route, Form: nonNil(form)})
}

// Put issues a PUT with a form body.
func (t *Transport) Put(ctx context.Context, route string, form url.Values) (*Response, error) {
	return t.Do(ctx, Request{Method: http.MethodPut, Route: route, Form: nonNil(form)})
}

// Delete issues a DELETE; form, when not empty, is sent as the body.
func (t *Transport) Delete(ctx context.Context, route string, form url.Values) (*Response, error) {
	req := Request{Method: http.MethodDelete, Route: route}
	if len(form) > 0 {
		req.Form = form
	}
	return t.Do(ctx, req)
}

// Do performs one attempt of req.
func (t *Transport) Do(ctx context.Context, req Request) (*Response, error) {
	requestID := uuid.NewString()
	ctx = logging.AppendCtx(ctx, slog.String("request_id", requestID))

	httpReq, err := t.newRequest(ctx, req, requestID)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "making webinar API request",
		"method", req.Method,
		"route", req.Route,
		"query", req.Query.Encode(),
	)

	start := time.Now()
	resp, err := t.httpClient.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		slog.WarnContext(ctx, "webinar API is unreachable",
			"method", req.Method,
			"route", req.Route,
			"duration", duration.String(),
			logging.ErrKey, err,
		)
		return nil, domain.NewUnavailableError(fmt.Sprintf("webinar API is unreachable: %s %s", req.Method, req.Route), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.WarnContext(ctx, "failed to read webinar API response",
			"method", req.Method,
			"route", req.Route,
			"status", resp.StatusCode,
			logging.ErrKey, err,
		)
		return nil, domain.NewUnavailableError("failed to read webinar API response", err).WithStatus(resp.StatusCode)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := mapHTTPError(resp.StatusCode, body)
		slog.WarnContext(ctx, "webinar API returned error status",
			"method", req.Method,
			"route", req.Route,
			"status", resp.StatusCode,
			"duration", duration.String(),
			"body", string(body),
			logging.ErrKey, apiErr,
		)
		return nil, apiErr
	}

	slog.InfoContext(ctx, "webinar API request completed",
		"method", req.Method,
		"route", req.Route,
		"status", resp.StatusCode,
		"duration", duration.String(),
	)

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// newRequest builds the HTTP request on a clone of the fixed header set.
func (t *Transport) newRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	u, err := url.Parse(t.baseURL + "/" + strings.TrimLeft(req.Route, "/"))
	if err != nil {
		return nil, domain.NewValidationError("invalid webinar API route", err)
	}
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Form != nil {
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, domain.NewInternalError("failed to create request", err)
	}

	httpReq.Header = t.headers.Clone()
	if req.Form != nil {
		httpReq.Header.Set("Content-Type", FormContentType)
	}
	for k, values := range req.Header {
		httpReq.Header.Del(k)
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set(RequestIDHeader, requestID)

	if t.tokens != nil {
		token, err := t.tokens.Token()
		if err != nil {
			return nil, domain.NewUnauthorizedError("failed to obtain webinar API token", err)
		}
		httpReq.Header.Set(AuthTokenHeader, token.AccessToken)
	}

	return httpReq, nil
}

// errorResponse covers the error bodies the platform is known to return.
type errorResponse struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

// parseErrorMessage extracts a human-readable message from an error body.
func parseErrorMessage(statusCode int, body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		if resp.Message != "" {
			return resp.Message
		}
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(resp.Error, &nested) == nil && nested.Message != "" {
			return nested.Message
		}
		var plain string
		if json.Unmarshal(resp.Error, &plain) == nil && plain != "" {
			return plain
		}
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" && len(trimmed) <= 512 {
		return trimmed
	}
	return fmt.Sprintf("HTTP %d error", statusCode)
}

// mapHTTPError maps HTTP status codes to domain errors
func mapHTTPError(statusCode int, body []byte) error {
	message := parseErrorMessage(statusCode, body)

	var err *domain.DomainError
	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		err = domain.NewValidationError(message)
	case http.StatusUnauthorized:
		err = domain.NewUnauthorizedError(message)
	case http.StatusForbidden:
		err = domain.NewForbiddenError(message)
	case http.StatusNotFound:
		err = domain.NewNotFoundError(message)
	case http.StatusConflict:
		err = domain.NewConflictError(message)
	case http.StatusTooManyRequests:
		err = domain.NewRateLimitedError(message)
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		err = domain.NewUnavailableError(message)
	default:
		err = domain.NewInternalError(message)
	}
	return err.WithStatus(statusCode)
}

func nonNil(v url.Values) url.Values {
	if v == nil {
		return url.Values{}
	}
	return v
}
