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

// EventListOptions filters event schedules.
type EventListOptions struct {
	From           *time.Time
	To             *time.Time
	Name           *string
	Status         []EventStatus
	AccessSettings *AccessSettings
	Access         *Access
	Page           *int
	// PerPage is one of 10, 50, 100 or 250.
	PerPage *int
}

func (o *EventListOptions) params() formenc.Params {
	p := formenc.New()
	if o == nil {
		return p
	}
	p.SetTimeString("from", o.From).
		SetString("name", o.Name).
		SetTimeString("to", o.To).
		SetObject(accessSettingsLabelLower, o.AccessSettings).
		SetInt("page", o.Page).
		SetInt("perPage", o.PerPage)
	formenc.SetList(p, "status", o.Status)
	formenc.SetOptional(p, "access", o.Access)
	return p
}

// CreateEventRequest describes a new event template. Name, AccessSettings
// and Access are required.
type CreateEventRequest struct {
	Name           string
	AccessSettings AccessSettings
	Access         Access
	Password       *string
	Description    *string
	// Rule is an RFC 5545 RRULE; required for a series.
	Rule *string
	// IsEventRegAllowed enables registration on the whole series.
	IsEventRegAllowed *bool
	StartsAt          *time.Time
	EndsAt            *time.Time
	Timezone          *int
	Image             *int64
	Type              *EventType
	Lang              *Lang
	URLAlias          *string
	LectorIDs         []int64
	Tags              []string
	Duration          *string
	OwnerID           *int64
	// DefaultRemindersEnabled toggles the platform's standard reminders.
	DefaultRemindersEnabled *bool
	BrandingID              *int64
}

func (r *CreateEventRequest) params() formenc.Params {
	p := formenc.New().
		Set("name", r.Name).
		SetObject(accessSettingsLabel, &r.AccessSettings).
		Set("access", r.Access).
		SetString("password", r.Password).
		SetString("description", r.Description).
		SetString("rule", r.Rule).
		SetBool("isEventRegAllowed", r.IsEventRegAllowed).
		SetDateTime("startsAt", r.StartsAt).
		SetDateTime("endsAt", r.EndsAt).
		SetInt("timezone", r.Timezone).
		SetInt64("image", r.Image).
		SetString("urlAlias", r.URLAlias).
		SetString("duration", r.Duration).
		SetInt64("ownerId", r.OwnerID).
		SetBool("defaultRemindersEnabled", r.DefaultRemindersEnabled).
		SetInt64("brandingId", r.BrandingID)
	formenc.SetOptional(p, "type", r.Type)
	formenc.SetOptional(p, "lang", r.Lang)
	formenc.SetList(p, "lectorIds", r.LectorIDs)
	formenc.SetList(p, "tags", r.Tags)
	return p
}

func (r *CreateEventRequest) validate() error {
	if r == nil {
		return domain.NewValidationError("create event request is required")
	}
	if r.Name == "" {
		return domain.NewValidationError("event name is required")
	}
	if r.Rule != nil {
		if err := ValidateRule(*r.Rule); err != nil {
			return domain.NewValidationError("invalid event repetition rule", err)
		}
	}
	return nil
}

// EditEventRequest lists the event fields to change. Only events in the
// ACTIVE status can be edited.
type EditEventRequest struct {
	Name           *string
	AccessSettings *AccessSettings
	Access         *Access
	// Status STOP ends the event.
	Status      *EventStatus
	Password    *string
	Description *string
	Lang        *Lang
	URLAlias    *string
	StartsAt    *time.Time
	Timezone    *int
	Image       *int64
	Duration    *string
	OwnerID     *int64
	BrandingID  *int64
}

func (r *EditEventRequest) params() formenc.Params {
	p := formenc.New()
	if r == nil {
		return p
	}
	p.SetString("name", r.Name).
		SetObject(accessSettingsLabel, r.AccessSettings).
		SetString("password", r.Password).
		SetString("description", r.Description).
		SetString("urlAlias", r.URLAlias).
		SetDateTime("startsAt", r.StartsAt).
		SetInt("timezone", r.Timezone).
		SetInt64("image", r.Image).
		SetString("duration", r.Duration).
		SetInt64("ownerId", r.OwnerID).
		SetInt64("brandingId", r.BrandingID)
	formenc.SetOptional(p, "access", r.Access)
	formenc.SetOptional(p, "status", r.Status)
	formenc.SetOptional(p, "lang", r.Lang)
	return p
}

// GetEventsForUser retrieves the event schedule of one organization member
func (c *Client) GetEventsForUser(ctx context.Context, userID int64, opts *EventListOptions) ([]Event, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_events_for_user"))
	ctx = logging.AppendCtx(ctx, slog.Int64("user_id", userID))

	return c.listEvents(ctx, fmt.Sprintf("/users/%d/events/schedule", userID), opts)
}

// GetEvents retrieves the event schedule of the organization
func (c *Client) GetEvents(ctx context.Context, opts *EventListOptions) ([]Event, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_events"))

	return c.listEvents(ctx, "/organization/events/schedule", opts)
}

func (c *Client) listEvents(ctx context.Context, route string, opts *EventListOptions) ([]Event, error) {
	resp, err := c.get(ctx, route, opts.params())
	if err != nil {
		return nil, err
	}

	events, err := decodeList[Event](resp)
	if err != nil {
		logDecodeError(ctx, "events", err)
		return nil, err
	}

	slog.DebugContext(ctx, "successfully retrieved events", "event_count", len(events))
	return events, nil
}

// GetEvent retrieves a single event with its sessions
func (c *Client) GetEvent(ctx context.Context, eventID int64) (*Event, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_event"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_id", eventID))

	resp, err := c.get(ctx, fmt.Sprintf("/organization/events/%d", eventID), nil)
	if err != nil {
		return nil, err
	}

	event, err := decodeOne[Event](resp, "event")
	if err != nil {
		logDecodeError(ctx, "event", err)
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event with all of its sessions. It reports true
// only when the platform answers 204.
func (c *Client) DeleteEvent(ctx context.Context, eventID int64) (bool, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "delete_event"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_id", eventID))

	resp, err := c.transport.Delete(ctx, fmt.Sprintf("/organization/events/%d", eventID), nil)
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "event deleted", "status", resp.StatusCode)
	return noContent(resp), nil
}

// CreateEvent creates an event template
func (c *Client) CreateEvent(ctx context.Context, req *CreateEventRequest) (*CreatedEvent, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "create_event"))

	if err := req.validate(); err != nil {
		slog.WarnContext(ctx, "refusing to create event", logging.ErrKey, err)
		return nil, err
	}

	resp, err := c.transport.Post(ctx, "/events", req.params().Values())
	if err != nil {
		return nil, err
	}

	created, err := decodeCreated[CreatedEvent](resp, "created event")
	if err != nil {
		logDecodeError(ctx, "created event", err)
		return nil, err
	}

	slog.InfoContext(ctx, "event created", "event_id", utils.Value(created.EventID))
	return created, nil
}

// EditEvent updates an event. It reports true only when the platform
// answers 204.
func (c *Client) EditEvent(ctx context.Context, eventID int64, req *EditEventRequest) (bool, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "edit_event"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_id", eventID))

	resp, err := c.transport.Put(ctx, fmt.Sprintf("/events/%d", eventID), req.params().Values())
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "event updated", "status", resp.StatusCode)
	return noContent(resp), nil
}
