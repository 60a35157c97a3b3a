// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/formenc"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/utils"
)

// UpdateContextSeries limits a session edit notification to one date of a
// series.
const UpdateContextSeries = "series"

// CreateEventSessionRequest describes a new session of an existing event.
type CreateEventSessionRequest struct {
	Name           *string
	AccessSettings *AccessSettings
	Access         *Access
	StartType      *StartType
	Description    *string
	Lang           *Lang
	StartsAt       *time.Time
	Timezone       *int
	Image          *int64
}

func (r *CreateEventSessionRequest) params() formenc.Params {
	p := formenc.New()
	if r == nil {
		return p
	}
	p.SetString("name", r.Name).
		SetObject(accessSettingsLabelLower, r.AccessSettings).
		SetString("description", r.Description).
		SetDateTime("startsAt", r.StartsAt).
		SetInt("timezone", r.Timezone).
		SetInt64("image", r.Image)
	formenc.SetOptional(p, "access", r.Access)
	formenc.SetOptional(p, "startType", r.StartType)
	formenc.SetOptional(p, "lang", r.Lang)
	return p
}

// EditEventSessionRequest lists the session fields to change. Only
// sessions in the ACTIVE or START status can be edited.
type EditEventSessionRequest struct {
	Name           *string
	AccessSettings *AccessSettings
	Access         *Access
	StartType      *StartType
	Description    *string
	Lang           *Lang
	StartsAt       *time.Time
	Timezone       *int
	Image          *int64
	Duration       *string
	// SendEmail controls the "webinar rescheduled" notification.
	SendEmail *bool
	// UpdateContext is UpdateContextSeries or nil.
	UpdateContext *string
}

func (r *EditEventSessionRequest) params() formenc.Params {
	p := formenc.New()
	if r == nil {
		return p
	}
	p.SetString("name", r.Name).
		SetObject(accessSettingsLabel, r.AccessSettings).
		SetString("description", r.Description).
		SetDateTime("startsAt", r.StartsAt).
		SetInt("timezone", r.Timezone).
		SetInt64("image", r.Image).
		SetString("duration", r.Duration).
		SetBool("sendEmail", r.SendEmail).
		SetString("updateContext", r.UpdateContext)
	formenc.SetOptional(p, "access", r.Access)
	formenc.SetOptional(p, "startType", r.StartType)
	formenc.SetOptional(p, "lang", r.Lang)
	return p
}

// CreateWebinarRequest creates an event and its first session in one go.
type CreateWebinarRequest struct {
	CreateEventRequest
	// StartType applies to the session.
	StartType *StartType
}

// GetEventSession retrieves a single session
func (c *Client) GetEventSession(ctx context.Context, eventSessionID int64) (*EventSession, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_event_session"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_session_id", eventSessionID))

	resp, err := c.get(ctx, fmt.Sprintf("/eventsessions/%d", eventSessionID), nil)
	if err != nil {
		return nil, err
	}

	session, err := decodeOne[EventSession](resp, "event session")
	if err != nil {
		logDecodeError(ctx, "event session", err)
		return nil, err
	}
	return session, nil
}

// StopEventSession ends a running session. It reports true only when the
// platform answers 204; any other 2xx reports false.
func (c *Client) StopEventSession(ctx context.Context, eventSessionID int64) (bool, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "stop_event_session"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_session_id", eventSessionID))

	resp, err := c.transport.Put(ctx, fmt.Sprintf("/eventsessions/%d/stop", eventSessionID), nil)
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "event session stop requested", "status", resp.StatusCode)
	return noContent(resp), nil
}

// DeleteEventSession removes a session with its statistics and chat. The
// removal cannot be undone. sendEmail controls the cancellation notice.
func (c *Client) DeleteEventSession(ctx context.Context, eventSessionID int64, sendEmail *bool) (bool, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "delete_event_session"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_session_id", eventSessionID))

	form := formenc.New().SetBool("sendEmail", sendEmail)
	resp, err := c.transport.Delete(ctx, fmt.Sprintf("/eventsessions/%d", eventSessionID), form.Values())
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "event session deleted", "status", resp.StatusCode)
	return noContent(resp), nil
}

// CreateEventSession adds a session to an event
func (c *Client) CreateEventSession(ctx context.Context, eventID int64, req *CreateEventSessionRequest) (*CreatedEventSession, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "create_event_session"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_id", eventID))

	resp, err := c.transport.Post(ctx, fmt.Sprintf("/events/%d/sessions", eventID), req.params().Values())
	if err != nil {
		return nil, err
	}

	created, err := decodeCreated[CreatedEventSession](resp, "created event session")
	if err != nil {
		logDecodeError(ctx, "created event session", err)
		return nil, err
	}

	slog.InfoContext(ctx, "event session created", "event_session_id", utils.Value(created.EventSessionID))
	return created, nil
}

// EditEventSession updates a session. It reports true only when the
// platform answers 204.
func (c *Client) EditEventSession(ctx context.Context, eventSessionID int64, req *EditEventSessionRequest) (bool, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "edit_event_session"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_session_id", eventSessionID))

	resp, err := c.transport.Put(ctx, fmt.Sprintf("/eventsessions/%d", eventSessionID), req.params().Values())
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "event session updated", "status", resp.StatusCode)
	return noContent(resp), nil
}

// CreateWebinar creates an event and then one session of it. When the
// session cannot be created the created event is still returned alongside
// the error, so the caller can clean it up or retry the session alone.
func (c *Client) CreateWebinar(ctx context.Context, req *CreateWebinarRequest) (*CreatedWebinar, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "create_webinar"))

	if req == nil {
		return nil, domain.NewValidationError("create webinar request is required")
	}

	event, err := c.CreateEvent(ctx, &req.CreateEventRequest)
	if err != nil {
		return nil, err
	}
	if event.EventID == nil {
		return nil, domain.NewDecodeError("created event has no id")
	}

	session, err := c.CreateEventSession(ctx, *event.EventID, &CreateEventSessionRequest{StartType: req.StartType})
	if err != nil {
		return &CreatedWebinar{Event: event}, fmt.Errorf("event %d created but its session was not: %w", *event.EventID, err)
	}

	return &CreatedWebinar{Event: event, Session: session}, nil
}
