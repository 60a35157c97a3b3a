// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// EventSession is a single occurrence (a webinar) of an event.
type EventSession struct {
	ID               *int64          `json:"id,omitempty"`
	Name             *string         `json:"name,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Status           *EventStatus    `json:"status,omitempty"`
	AccessSettings   *AccessSettings `json:"accessSettings,omitempty"`
	Access           *Access         `json:"access,omitempty"`
	AdditionalFields json.RawMessage `json:"additionalFields,omitempty"`
	Lang             *string         `json:"lang,omitempty"`
	StartsAt         *DateTime       `json:"startsAt,omitempty"`
	TimezoneID       *int            `json:"timezoneId,omitempty"`
	Timezone         json.RawMessage `json:"timezone,omitempty"`
	EndsAt           *DateTime       `json:"endsAt,omitempty"`
	OrganizationID   *int64          `json:"organizationId,omitempty"`
	Type             *string         `json:"type,omitempty"`
	CreateUser       *User           `json:"createUser,omitempty"`
	Image            json.RawMessage `json:"image,omitempty"`
	StartType        *StartType      `json:"startType,omitempty"`
	Lectors          []Member        `json:"lectors,omitempty"`
	Tags             json.RawMessage `json:"tags,omitempty"`
	AnnounceFiles    json.RawMessage `json:"announceFiles,omitempty"`
	Files            json.RawMessage `json:"files,omitempty"`
}

// Event is the template of one or more sessions: description, files,
// settings and the repetition rule.
type Event struct {
	ID               *int64          `json:"id,omitempty"`
	Name             *string         `json:"name,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Status           *EventStatus    `json:"status,omitempty"`
	AccessSettings   *AccessSettings `json:"accessSettings,omitempty"`
	Access           *Access         `json:"access,omitempty"`
	AdditionalFields json.RawMessage `json:"additionalFields,omitempty"`
	// Rule is an RFC 5545 RRULE; a one-off event has FREQ=DAILY;COUNT=1.
	Rule           *string         `json:"rule,omitempty"`
	Lang           *string         `json:"lang,omitempty"`
	StartsAt       *DateTime       `json:"startsAt,omitempty"`
	UTCStartsAt    json.RawMessage `json:"utcStartsAt,omitempty"`
	CreateUserID   *int64          `json:"createUserId,omitempty"`
	TimezoneID     *int            `json:"timezoneId,omitempty"`
	EndsAt         *DateTime       `json:"endsAt,omitempty"`
	OrganizationID *int64          `json:"organizationId,omitempty"`
	Type           *string         `json:"type,omitempty"`
	CreateUser     *User           `json:"createUser,omitempty"`
	Image          json.RawMessage `json:"image,omitempty"`
	Lectors        []Member        `json:"lectors,omitempty"`
	Tags           json.RawMessage `json:"tags,omitempty"`
	AnnounceFiles  json.RawMessage `json:"announceFiles,omitempty"`
	Files          json.RawMessage `json:"files,omitempty"`
	EventSessions  []EventSession  `json:"eventSessions,omitempty"`
}

// Recurrence parses Rule anchored at StartsAt.
func (e *Event) Recurrence() (*rrule.RRule, error) {
	if e.Rule == nil {
		return nil, fmt.Errorf("event has no repetition rule")
	}
	var start *time.Time
	if e.StartsAt != nil {
		start = e.StartsAt.TimePtr()
	}
	return parseRule(*e.Rule, start)
}

// Occurrences lists the dates the rule generates between after and before,
// inclusive.
func (e *Event) Occurrences(after, before time.Time) ([]time.Time, error) {
	r, err := e.Recurrence()
	if err != nil {
		return nil, err
	}
	return r.Between(after, before, true), nil
}

// ValidateRule reports whether rule is an RRULE the platform can store.
func ValidateRule(rule string) error {
	_, err := parseRule(rule, nil)
	return err
}

func parseRule(rule string, start *time.Time) (*rrule.RRule, error) {
	// The platform terminates rules with a semicolon.
	trimmed := strings.Trim(strings.TrimSpace(strings.TrimPrefix(rule, "RRULE:")), ";")
	if trimmed == "" {
		return nil, fmt.Errorf("empty repetition rule")
	}
	opt, err := rrule.StrToROption(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid repetition rule %q: %w", rule, err)
	}
	if start != nil {
		opt.Dtstart = *start
	}
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("invalid repetition rule %q: %w", rule, err)
	}
	return r, nil
}

// CreatedEvent is returned by event creation.
type CreatedEvent struct {
	EventID *int64  `json:"eventId,omitempty"`
	Link    *string `json:"link,omitempty"`
}

// CreatedEventSession is returned by session creation.
type CreatedEventSession struct {
	EventSessionID *int64  `json:"eventSessionId,omitempty"`
	Link           *string `json:"link,omitempty"`
}

// CreatedWebinar pairs the event and session created together.
type CreatedWebinar struct {
	Event   *CreatedEvent        `json:"event,omitempty"`
	Session *CreatedEventSession `json:"session,omitempty"`
}

// Timezone is an entry of the platform timezone catalogue.
type Timezone struct {
	ID          *int    `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	// Offset is in seconds.
	Offset *int `json:"offset,omitempty"`
}
