// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webhook

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

func TestDecode_JSON(t *testing.T) {
	body := []byte(`{
		"event": "eventSessionScheduleChanged",
		"data": {
			"eventId": 10,
			"eventSessionId": "2001",
			"name": "Community call",
			"startsAt": "2024-05-20T12:00:00+0300",
			"oldStartsAt": "2024-05-19 12:00:00",
			"unexpected": "ignored"
		}
	}`)

	payload, err := Decode("application/json; charset=utf-8", body)
	require.NoError(t, err)

	assert.Equal(t, EventSessionScheduleChanged, payload.Event)
	assert.True(t, payload.IsSessionEvent())
	assert.Equal(t, int64(10), *payload.Data.EventID)
	assert.Equal(t, int64(2001), *payload.Data.EventSessionID)
	assert.Equal(t, "Community call", *payload.Data.Name)
	require.NotNil(t, payload.Data.StartsAt)
	assert.True(t, time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC).Equal(payload.Data.StartsAt.Time))
	require.NotNil(t, payload.Data.OldStartsAt)
	assert.Equal(t, 19, payload.Data.OldStartsAt.Day())
	assert.Nil(t, payload.Data.EndsAt)
	assert.Nil(t, payload.Data.RecordID)
}

func TestDecode_Form(t *testing.T) {
	body := []byte("event=recordReady&data%5BrecordId%5D=77&data%5Burl%5D=https%3A%2F%2Frecords.example%2F77&data%5Bduration%5D=3600")

	payload, err := Decode("application/x-www-form-urlencoded", body)
	require.NoError(t, err)

	assert.Equal(t, EventRecordReady, payload.Event)
	assert.False(t, payload.IsSessionEvent())
	assert.Equal(t, int64(77), *payload.Data.RecordID)
	assert.Equal(t, "https://records.example/77", *payload.Data.URL)
	assert.Equal(t, int64(3600), *payload.Data.Duration)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		unknown     bool
	}{
		{name: "unknown event", contentType: "application/json", body: `{"event": "somethingElse"}`, unknown: true},
		{name: "missing event", contentType: "application/json", body: `{"data": {}}`, unknown: true},
		{name: "malformed json", contentType: "application/json", body: `{`},
		{name: "bad date", contentType: "application/json", body: `{"event": "eventSessionStarted", "data": {"startsAt": "soon"}}`},
		{name: "bad number", contentType: "application/json", body: `{"event": "recordReady", "data": {"recordId": "seventy"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Decode(tt.contentType, []byte(tt.body))

			assert.Nil(t, payload)
			require.Error(t, err)
			assert.Equal(t, tt.unknown, errors.Is(err, ErrUnknownEvent))
		})
	}
}

func TestEvent_Valid(t *testing.T) {
	for _, e := range Events {
		assert.True(t, e.Valid(), e)
	}
	assert.Len(t, Events, 8)
	assert.False(t, Event("eventSessionPaused").Valid())
}

func TestPayload_Summary(t *testing.T) {
	id := int64(2001)
	name := "Community call"
	starts := &webinar.DateTime{Time: time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)}

	tests := []struct {
		name     string
		payload  Payload
		lang     string
		expected string
	}{
		{
			name:     "started in english",
			payload:  Payload{Event: EventSessionStarted, Data: Data{EventSessionID: &id, Name: &name}},
			lang:     LangEN,
			expected: `Webinar "Community call" has started`,
		},
		{
			name:     "started in russian",
			payload:  Payload{Event: EventSessionStarted, Data: Data{EventSessionID: &id, Name: &name}},
			lang:     LangRU,
			expected: "Вебинар «Community call» начался",
		},
		{
			name:     "name falls back to session id",
			payload:  Payload{Event: EventSessionEnded, Data: Data{EventSessionID: &id}},
			lang:     LangEN,
			expected: `Webinar "#2001" has ended`,
		},
		{
			name:     "unknown language falls back to english",
			payload:  Payload{Event: EventSessionAllLeft, Data: Data{Name: &name}},
			lang:     "de",
			expected: `All participants have left webinar "Community call"`,
		},
		{
			name:     "created with start time",
			payload:  Payload{Event: EventSessionCreated, Data: Data{Name: &name, StartsAt: starts}},
			lang:     LangEN,
			expected: `Webinar "Community call" was scheduled for 2024-05-20 12:00 UTC`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.payload.Summary(tt.lang))
		})
	}
}

func TestPayload_SummaryCoversEveryEvent(t *testing.T) {
	for _, e := range Events {
		summary := Payload{Event: e}.Summary(LangEN)
		assert.NotEqual(t, string(e), summary, "event %s has no message", e)
		assert.NotEmpty(t, Payload{Event: e}.Summary(LangRU))
	}
}
