// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package webhook models the push notifications the webinar platform sends
// about sessions, recordings and conversions.
package webhook

import (
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

// Event is the tag of a notification. The set is closed.
type Event string

const (
	EventSessionCreated         Event = "eventSessionCreated"
	EventSessionScheduleChanged Event = "eventSessionScheduleChanged"
	EventSessionReminderSent    Event = "eventSessionReminderSent"
	EventSessionStarted         Event = "eventSessionStarted"
	EventSessionAllLeft         Event = "eventSessionAllLeft"
	EventSessionEnded           Event = "eventSessionEnded"
	EventRecordReady            Event = "recordReady"
	EventConversionReady        Event = "conversionReady"
)

// Events lists every known tag.
var Events = []Event{
	EventSessionCreated,
	EventSessionScheduleChanged,
	EventSessionReminderSent,
	EventSessionStarted,
	EventSessionAllLeft,
	EventSessionEnded,
	EventRecordReady,
	EventConversionReady,
}

// Valid reports whether e is one of the known tags.
func (e Event) Valid() bool {
	for _, known := range Events {
		if e == known {
			return true
		}
	}
	return false
}

// Data is the payload shared by every event; each event fills a subset.
//
//	session events       EventID, EventSessionID, Name, StartsAt, EndsAt
//	schedule change      + OldStartsAt
//	reminder sent        + ReminderType
//	record ready         RecordID, URL, Duration
//	conversion ready     ConversionID, RecordID, URL, Duration
type Data struct {
	EventID        *int64            `json:"eventId,omitempty" msgpack:"eventId,omitempty"`
	EventSessionID *int64            `json:"eventSessionId,omitempty" msgpack:"eventSessionId,omitempty"`
	Name           *string           `json:"name,omitempty" msgpack:"name,omitempty"`
	StartsAt       *webinar.DateTime `json:"startsAt,omitempty" msgpack:"startsAt,omitempty"`
	EndsAt         *webinar.DateTime `json:"endsAt,omitempty" msgpack:"endsAt,omitempty"`
	OldStartsAt    *webinar.DateTime `json:"oldStartsAt,omitempty" msgpack:"oldStartsAt,omitempty"`
	ReminderType   *string           `json:"reminderType,omitempty" msgpack:"reminderType,omitempty"`
	RecordID       *int64            `json:"recordId,omitempty" msgpack:"recordId,omitempty"`
	ConversionID   *int64            `json:"conversionId,omitempty" msgpack:"conversionId,omitempty"`
	URL            *string           `json:"url,omitempty" msgpack:"url,omitempty"`
	// Duration is in seconds.
	Duration *int64 `json:"duration,omitempty" msgpack:"duration,omitempty"`
}

// Payload is one notification.
type Payload struct {
	Event Event `json:"event" msgpack:"event"`
	Data  Data  `json:"data" msgpack:"data"`
}

// IsSessionEvent reports whether the event is about a session lifecycle.
func (p Payload) IsSessionEvent() bool {
	switch p.Event {
	case EventSessionCreated, EventSessionScheduleChanged, EventSessionReminderSent,
		EventSessionStarted, EventSessionAllLeft, EventSessionEnded:
		return true
	}
	return false
}
