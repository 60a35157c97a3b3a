// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package webinar is a typed client for the webinar.ru v3 REST API.
//
// Each method issues exactly one request (CreateWebinar issues two) and
// returns either a decoded result or an *Error describing why there is none.
// GetErrorType tells "not found" from "unauthorized" from "unreachable".
package webinar

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/transport"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/formenc"
)

// ClientAPI defines the interface for webinar platform operations
// This allows for easy mocking and testing of the webinar client
type ClientAPI interface {
	GetMembers(ctx context.Context, opts *MemberListOptions) ([]Member, error)
	GetEventsForUser(ctx context.Context, userID int64, opts *EventListOptions) ([]Event, error)
	GetEvents(ctx context.Context, opts *EventListOptions) ([]Event, error)
	GetEvent(ctx context.Context, eventID int64) (*Event, error)
	GetEventParticipations(ctx context.Context, eventID int64, opts *PageOptions) ([]EventParticipant, error)
	GetEventSessionParticipations(ctx context.Context, eventSessionID int64, opts *PageOptions) ([]EventSessionParticipant, error)
	GetEventSession(ctx context.Context, eventSessionID int64) (*EventSession, error)
	StopEventSession(ctx context.Context, eventSessionID int64) (bool, error)
	GetTimezones(ctx context.Context) ([]Timezone, error)
	DeleteEvent(ctx context.Context, eventID int64) (bool, error)
	DeleteEventSession(ctx context.Context, eventSessionID int64, sendEmail *bool) (bool, error)
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*CreatedEvent, error)
	EditEvent(ctx context.Context, eventID int64, req *EditEventRequest) (bool, error)
	CreateEventSession(ctx context.Context, eventID int64, req *CreateEventSessionRequest) (*CreatedEventSession, error)
	EditEventSession(ctx context.Context, eventSessionID int64, req *EditEventSessionRequest) (bool, error)
	CreateWebinar(ctx context.Context, req *CreateWebinarRequest) (*CreatedWebinar, error)
	GetChatMessages(ctx context.Context, eventSessionID int64, opts *ChatOptions) ([]ChatMessage, error)
	GetFiles(ctx context.Context, opts *FileListOptions) ([]File, error)
	GetFile(ctx context.Context, fileID int64, name *string) (*File, error)
	DownloadFile(ctx context.Context, fileID int64) ([]byte, error)
	GetEventFiles(ctx context.Context, eventID int64, fileID *int64) ([]File, error)
	GetEventSessionFiles(ctx context.Context, eventSessionID int64, fileID *int64) ([]File, error)
	GetRecords(ctx context.Context, opts *RecordListOptions) ([]File, error)
	GetUsersStats(ctx context.Context, opts *UserStatsOptions) ([]UserStats, error)
	GetEventSessionsStats(ctx context.Context, opts *SessionStatsOptions) ([]SessionStats, error)
	RegisterParticipant(ctx context.Context, eventSessionID int64, req *RegisterRequest) (*Registration, error)
	InviteParticipants(ctx context.Context, eventSessionID int64, req *InviteRequest) (bool, error)
}

const (
	// BaseURL is the base URL for the webinar platform API
	BaseURL = "https://userapi.webinar.ru/v3"
	// DefaultClientTimeout is the default HTTP client timeout for API requests
	DefaultClientTimeout = transport.DefaultTimeout
)

// Config holds the configuration for the webinar client
type Config struct {
	// Token is the static API token. Ignored when TokenSource is set.
	Token string
	// Optional: supplies tokens dynamically
	TokenSource oauth2.TokenSource
	// Optional: override base URL for testing
	BaseURL string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
	// Optional: disable TLS certificate validation
	InsecureSkipVerify bool
	// Optional: override the User-Agent header
	UserAgent string
	// Optional: use a preconfigured HTTP client
	HTTPClient *http.Client
}

// Client represents a webinar platform API client
type Client struct {
	transport *transport.Transport
	config    Config
}

// Ensure that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient creates a new webinar platform API client
func NewClient(config Config) *Client {
	// Set defaults if not provided
	if config.BaseURL == "" {
		config.BaseURL = BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}
	if config.TokenSource == nil && config.Token != "" {
		config.TokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token})
	}

	return &Client{
		transport: transport.New(transport.Config{
			BaseURL:            config.BaseURL,
			TokenSource:        config.TokenSource,
			Timeout:            config.Timeout,
			InsecureSkipVerify: config.InsecureSkipVerify,
			UserAgent:          config.UserAgent,
			HTTPClient:         config.HTTPClient,
		}),
		config: config,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// get issues a GET with p as the query string.
func (c *Client) get(ctx context.Context, route string, p formenc.Params) (*transport.Response, error) {
	return c.transport.Get(ctx, route, p.Values())
}

// noContent reports whether the platform acknowledged a command with 204.
func noContent(resp *transport.Response) bool {
	return resp.StatusCode == http.StatusNoContent
}
