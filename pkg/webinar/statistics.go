// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"context"
	"log/slog"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/formenc"
)

// UserStatsOptions filters per-participant attendance. Without From the
// platform starts the period now, which returns nothing useful.
type UserStatsOptions struct {
	From *time.Time
	// To defaults to From plus one year on the platform side.
	To      *time.Time
	EventID *int64
}

func (o *UserStatsOptions) params() formenc.Params {
	p := formenc.New()
	if o == nil {
		return p
	}
	return p.SetTimeString("from", o.From).
		SetTimeString("to", o.To).
		SetInt64("eventId", o.EventID)
}

// SessionStatsOptions filters per-session attendance.
type SessionStatsOptions struct {
	From   *time.Time
	To     *time.Time
	UserID *int64
}

func (o *SessionStatsOptions) params() formenc.Params {
	p := formenc.New()
	if o == nil {
		return p
	}
	return p.SetTimeString("from", o.From).
		SetTimeString("to", o.To).
		SetInt64("userId", o.UserID)
}

// GetUsersStats retrieves attendance per participant
func (c *Client) GetUsersStats(ctx context.Context, opts *UserStatsOptions) ([]UserStats, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_users_stats"))

	if opts == nil || opts.From == nil {
		slog.DebugContext(ctx, "users stats requested without a start date")
	}

	resp, err := c.get(ctx, "/stats/users", opts.params())
	if err != nil {
		return nil, err
	}

	stats, err := decodeList[UserStats](resp)
	if err != nil {
		logDecodeError(ctx, "users stats", err)
		return nil, err
	}

	slog.DebugContext(ctx, "successfully retrieved users stats", "user_count", len(stats))
	return stats, nil
}

// GetEventSessionsStats retrieves attendance per session
func (c *Client) GetEventSessionsStats(ctx context.Context, opts *SessionStatsOptions) ([]SessionStats, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_event_sessions_stats"))

	resp, err := c.get(ctx, "/stats/events", opts.params())
	if err != nil {
		return nil, err
	}

	stats, err := decodeList[SessionStats](resp)
	if err != nil {
		logDecodeError(ctx, "event sessions stats", err)
		return nil, err
	}

	slog.DebugContext(ctx, "successfully retrieved event sessions stats", "session_count", len(stats))
	return stats, nil
}

// GetTimezones retrieves the platform timezone catalogue
func (c *Client) GetTimezones(ctx context.Context) ([]Timezone, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_timezones"))

	resp, err := c.get(ctx, "/timezones", nil)
	if err != nil {
		return nil, err
	}

	timezones, err := decodeList[Timezone](resp)
	if err != nil {
		logDecodeError(ctx, "timezones", err)
		return nil, err
	}
	return timezones, nil
}
