// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/formenc"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/utils"
)

// RegisterRequest registers one participant on a session.
type RegisterRequest struct {
	Email        string
	Name         *string
	SecondName   *string
	PatrName     *string
	Nickname     *string
	Phone        *string
	Organization *string
	Position     *string
	Role         *string
	// IsAutoEnter skips the registration landing for the generated link.
	IsAutoEnter *bool
	SendEmail   *bool
	// AdditionalFields answers custom registration fields by their key.
	AdditionalFields map[string]string
}

func (r *RegisterRequest) params() formenc.Params {
	p := formenc.New().
		Set("email", r.Email).
		SetString("name", r.Name).
		SetString("secondName", r.SecondName).
		SetString("patrName", r.PatrName).
		SetString("nickname", r.Nickname).
		SetString("phone", r.Phone).
		SetString("organization", r.Organization).
		SetString("position", r.Position).
		SetString("role", r.Role).
		SetBool("isAutoEnter", r.IsAutoEnter).
		SetBool("sendEmail", r.SendEmail)
	return formenc.SetMap(p, "additionalFields", r.AdditionalFields)
}

// Registration is the result of registering a participant.
type Registration struct {
	ParticipationID *int64  `json:"participationId,omitempty"`
	ContactID       *int64  `json:"contactId,omitempty"`
	Link            *string `json:"link,omitempty"`
}

// Invitee is one record of a bulk invitation. Email is required.
type Invitee struct {
	Email        string  `json:"email"`
	Name         *string `json:"name,omitempty"`
	SecondName   *string `json:"secondName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Role         *string `json:"role,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Position     *string `json:"position,omitempty"`
}

// EncodeForm renders the invitee under label, omitting absent fields.
func (i Invitee) EncodeForm(label string) formenc.Params {
	return formenc.New().
		Set(formenc.Key(label, "email"), i.Email).
		SetString(formenc.Key(label, "name"), i.Name).
		SetString(formenc.Key(label, "secondName"), i.SecondName).
		SetString(formenc.Key(label, "phone"), i.Phone).
		SetString(formenc.Key(label, "role"), i.Role).
		SetString(formenc.Key(label, "organization"), i.Organization).
		SetString(formenc.Key(label, "position"), i.Position)
}

// InviteRequest invites several people to a session at once.
type InviteRequest struct {
	Users       []Invitee
	SendEmail   *bool
	IsAutoEnter *bool
}

func (r *InviteRequest) params() formenc.Params {
	p := formenc.New().
		SetBool("sendEmail", r.SendEmail).
		SetBool("isAutoEnter", r.IsAutoEnter)
	return formenc.SetRecords(p, "users", r.Users)
}

func (r *InviteRequest) validate() error {
	if r == nil || len(r.Users) == 0 {
		return domain.NewValidationError("at least one invitee is required")
	}
	for i, u := range r.Users {
		if _, err := mail.ParseAddress(u.Email); err != nil {
			return domain.NewValidationError(fmt.Sprintf("invitee %d has an invalid email", i), err)
		}
	}
	return nil
}

// GetEventParticipations retrieves participants registered on the whole
// series of an event
func (c *Client) GetEventParticipations(ctx context.Context, eventID int64, opts *PageOptions) ([]EventParticipant, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_event_participations"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_id", eventID))

	resp, err := c.get(ctx, fmt.Sprintf("/events/%d/participations", eventID), opts.params())
	if err != nil {
		return nil, err
	}

	participants, err := decodeList[EventParticipant](resp)
	if err != nil {
		logDecodeError(ctx, "event participations", err)
		return nil, err
	}

	slog.DebugContext(ctx, "successfully retrieved event participations", "participant_count", len(participants))
	return participants, nil
}

// GetEventSessionParticipations retrieves participants registered on a
// session with their attendance
func (c *Client) GetEventSessionParticipations(ctx context.Context, eventSessionID int64, opts *PageOptions) ([]EventSessionParticipant, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_event_session_participations"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_session_id", eventSessionID))

	resp, err := c.get(ctx, fmt.Sprintf("/eventsessions/%d/participations", eventSessionID), opts.params())
	if err != nil {
		return nil, err
	}

	participants, err := decodeList[EventSessionParticipant](resp)
	if err != nil {
		logDecodeError(ctx, "event session participations", err)
		return nil, err
	}

	slog.DebugContext(ctx, "successfully retrieved event session participations", "participant_count", len(participants))
	return participants, nil
}

// RegisterParticipant registers one person on a session
func (c *Client) RegisterParticipant(ctx context.Context, eventSessionID int64, req *RegisterRequest) (*Registration, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "register_participant"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_session_id", eventSessionID))

	if req == nil || req.Email == "" {
		return nil, domain.NewValidationError("participant email is required")
	}

	resp, err := c.transport.Post(ctx, fmt.Sprintf("/eventsessions/%d/register", eventSessionID), req.params().Values())
	if err != nil {
		return nil, err
	}

	registration, err := decodeCreated[Registration](resp, "registration")
	if err != nil {
		logDecodeError(ctx, "registration", err)
		return nil, err
	}

	slog.InfoContext(ctx, "participant registered", "participation_id", utils.Value(registration.ParticipationID))
	return registration, nil
}

// InviteParticipants invites several people to a session. Any 2xx answer
// reports true.
func (c *Client) InviteParticipants(ctx context.Context, eventSessionID int64, req *InviteRequest) (bool, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "invite_participants"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_session_id", eventSessionID))

	if err := req.validate(); err != nil {
		slog.WarnContext(ctx, "refusing to send invitations", logging.ErrKey, err)
		return false, err
	}

	resp, err := c.transport.Post(ctx, fmt.Sprintf("/eventsessions/%d/invite", eventSessionID), req.params().Values())
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "participants invited", "invitee_count", len(req.Users), "status", resp.StatusCode)
	return true, nil
}
