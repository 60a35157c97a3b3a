// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/utils"
)

type recordingHandler struct {
	mu     sync.Mutex
	levels []slog.Level
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.levels = append(h.levels, r.Level)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) warnings() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, l := range h.levels {
		if l == slog.LevelWarn {
			n++
		}
	}
	return n
}

func recordLogs(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	prev := slog.Default()
	slog.SetDefault(slog.New(h))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return h
}

// capturedRequest is what the fake platform saw.
type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
	Token  string
}

// newTestClient starts a fake platform answering every request with status
// and body, and records the requests it received.
func newTestClient(t *testing.T, status int, body string) (*Client, *[]capturedRequest) {
	t.Helper()
	var mu sync.Mutex
	var requests []capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(raw))
		mu.Lock()
		requests = append(requests, capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Form:   form,
			Token:  r.Header.Get("x-auth-token"),
		})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != "" {
			_, _ = w.Write([]byte(body))
		}
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{Token: "test-token", BaseURL: server.URL})
	return client, &requests
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})

	assert.Equal(t, BaseURL, client.BaseURL())
	assert.Equal(t, DefaultClientTimeout, client.config.Timeout)
	assert.Nil(t, client.config.TokenSource)
}

func TestClient_GetEvent_DecodesSessionsInOrder(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, `{
		"id": 42,
		"name": "Quarterly review",
		"rule": "FREQ=WEEKLY;COUNT=2;",
		"startsAt": "2024-03-07T18:00:00+0300",
		"accessSettings": {"isPasswordRequired": false, "isRegistrationRequired": true, "isModerationRequired": false},
		"createUser": {"id": 7, "name": "Ada"},
		"unknownField": {"ignored": true},
		"eventSessions": [
			{"id": 1001, "name": "Part one", "status": "ACTIVE", "startsAt": "2024-03-07T18:00:00+0300"},
			{"id": 1002, "status": "STOP", "lectors": [{"id": 9, "email": "lector@example.com"}]}
		]
	}`)

	event, err := client.GetEvent(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, "/organization/events/42", (*requests)[0].Path)
	assert.Equal(t, "test-token", (*requests)[0].Token)
	assert.Equal(t, int64(42), *event.ID)
	assert.Equal(t, "Ada", *event.CreateUser.Name)
	assert.Nil(t, event.CreateUser.Email)
	require.NotNil(t, event.AccessSettings)
	assert.True(t, event.AccessSettings.IsRegistrationRequired)

	require.Len(t, event.EventSessions, 2)
	first, second := event.EventSessions[0], event.EventSessions[1]
	assert.Equal(t, int64(1001), *first.ID)
	assert.Equal(t, "Part one", *first.Name)
	assert.Equal(t, StatusActive, *first.Status)
	assert.Equal(t, 15, first.StartsAt.UTC().Hour())
	assert.Nil(t, first.Lectors)

	assert.Equal(t, int64(1002), *second.ID)
	assert.Nil(t, second.Name)
	assert.Nil(t, second.StartsAt)
	assert.Equal(t, StatusStop, *second.Status)
	require.Len(t, second.Lectors, 1)
	assert.Equal(t, "lector@example.com", *second.Lectors[0].Email)

	occurrences, err := event.Occurrences(event.StartsAt.Time, event.StartsAt.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Len(t, occurrences, 2)
}

func TestClient_GetEvent_NullIsNotFound(t *testing.T) {
	recordLogs(t)
	client, _ := newTestClient(t, http.StatusOK, `null`)

	event, err := client.GetEvent(context.Background(), 1)

	assert.Nil(t, event)
	assert.True(t, domain.IsType(err, domain.ErrorTypeNotFound))
}

func TestClient_StopEventSession(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		expected  bool
		expectErr domain.ErrorType
		wantErr   bool
	}{
		{name: "no content stops the session", status: http.StatusNoContent, expected: true},
		{name: "ok is not a confirmed stop", status: http.StatusOK, expected: false},
		{name: "not found", status: http.StatusNotFound, wantErr: true, expectErr: domain.ErrorTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recordLogs(t)
			client, requests := newTestClient(t, tt.status, "")

			stopped, err := client.StopEventSession(context.Background(), 555)

			require.Len(t, *requests, 1)
			assert.Equal(t, http.MethodPut, (*requests)[0].Method)
			assert.Equal(t, "/eventsessions/555/stop", (*requests)[0].Path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsType(err, tt.expectErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stopped)
		})
	}
}

func TestClient_GetEvents_UnreachableReturnsNilWithOneWarning(t *testing.T) {
	logs := recordLogs(t)
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + l.Addr().String()
	require.NoError(t, l.Close())

	client := NewClient(Config{Token: "t", BaseURL: base})

	var events []Event
	assert.NotPanics(t, func() {
		events, err = client.GetEvents(context.Background(), nil)
	})

	assert.Nil(t, events)
	assert.True(t, domain.IsType(err, domain.ErrorTypeUnavailable))
	assert.Equal(t, 1, logs.warnings())
}

func TestClient_GetEvents_QueryEncoding(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, `[]`)
	from := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	access := AccessRegistration

	events, err := client.GetEvents(context.Background(), &EventListOptions{
		From:           &from,
		Status:         []EventStatus{StatusActive, StatusStart},
		AccessSettings: &AccessSettings{IsPasswordRequired: true},
		Access:         &access,
		PerPage:        utils.IntPtr(50),
	})
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)

	q := (*requests)[0].Query
	assert.Equal(t, "2024-01-02 03:04:05", q.Get("from"))
	assert.Equal(t, "ACTIVE", q.Get("status[0]"))
	assert.Equal(t, "START", q.Get("status[1]"))
	assert.Equal(t, "1", q.Get("accessSettings[isPasswordRequired]"))
	assert.Equal(t, "0", q.Get("accessSettings[isRegistrationRequired]"))
	assert.Equal(t, "0", q.Get("accessSettings[isModerationRequired]"))
	assert.Equal(t, "4", q.Get("access"))
	assert.Equal(t, "50", q.Get("perPage"))
	assert.False(t, q.Has("to"))
	assert.False(t, q.Has("name"))
	assert.False(t, q.Has("page"))
}

func TestClient_GetEventsForUser_Route(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, `[{"id": 1}, {"id": 2}]`)

	events, err := client.GetEventsForUser(context.Background(), 77, nil)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "/users/77/events/schedule", (*requests)[0].Path)
	assert.Empty(t, (*requests)[0].Query)
}

func TestClient_CreateEvent_FormEncoding(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusCreated, `{"eventId": 321, "link": "https://events.webinar.ru/321"}`)
	startsAt := time.Date(2024, time.May, 20, 9, 30, 0, 0, time.UTC)
	lang := LangEN

	created, err := client.CreateEvent(context.Background(), &CreateEventRequest{
		Name:              "Community call",
		AccessSettings:    AccessSettings{IsRegistrationRequired: true, IsModerationRequired: true},
		Access:            AccessModeratedRegistration,
		IsEventRegAllowed: utils.BoolPtr(false),
		StartsAt:          &startsAt,
		Lang:              &lang,
		LectorIDs:         []int64{11, 12},
		Tags:              []string{"lfx"},
		Rule:              utils.StringPtr("FREQ=DAILY;COUNT=1;"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(321), *created.EventID)
	assert.Equal(t, "https://events.webinar.ru/321", *created.Link)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/events", req.Path)
	f := req.Form
	assert.Equal(t, "Community call", f.Get("name"))
	assert.Equal(t, "0", f.Get("AccessSettings[isPasswordRequired]"))
	assert.Equal(t, "1", f.Get("AccessSettings[isRegistrationRequired]"))
	assert.Equal(t, "1", f.Get("AccessSettings[isModerationRequired]"))
	assert.False(t, f.Has("accessSettings[isPasswordRequired]"))
	assert.Equal(t, "8", f.Get("access"))
	assert.Equal(t, "false", f.Get("isEventRegAllowed"))
	assert.Equal(t, "2024", f.Get("startsAt[date][year]"))
	assert.Equal(t, "5", f.Get("startsAt[date][month]"))
	assert.Equal(t, "20", f.Get("startsAt[date][day]"))
	assert.Equal(t, "9", f.Get("startsAt[time][hour]"))
	assert.Equal(t, "30", f.Get("startsAt[time][minute]"))
	assert.Equal(t, "EN", f.Get("lang"))
	assert.Equal(t, "11", f.Get("lectorIds[0]"))
	assert.Equal(t, "12", f.Get("lectorIds[1]"))
	assert.Equal(t, "lfx", f.Get("tags[0]"))
	assert.False(t, f.Has("endsAt[date][year]"))
	assert.False(t, f.Has("password"))
}

func TestClient_CreateEvent_InvalidRuleSendsNothing(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusCreated, `{}`)

	created, err := client.CreateEvent(context.Background(), &CreateEventRequest{
		Name: "Broken",
		Rule: utils.StringPtr("FREQ=SOMETIMES"),
	})

	assert.Nil(t, created)
	assert.True(t, domain.IsType(err, domain.ErrorTypeValidation))
	assert.Empty(t, *requests)
}

func TestClient_CreateEventSession_UsesLowerCaseAccessLabel(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusCreated, `{"eventSessionId": 900}`)
	start := StartAutostart

	created, err := client.CreateEventSession(context.Background(), 321, &CreateEventSessionRequest{
		AccessSettings: &AccessSettings{IsPasswordRequired: true},
		StartType:      &start,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(900), *created.EventSessionID)
	assert.Nil(t, created.Link)

	req := (*requests)[0]
	assert.Equal(t, "/events/321/sessions", req.Path)
	assert.Equal(t, "1", req.Form.Get("accessSettings[isPasswordRequired]"))
	assert.False(t, req.Form.Has("AccessSettings[isPasswordRequired]"))
	assert.Equal(t, "autostart", req.Form.Get("startType"))
}

func TestClient_EditEventSession(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusNoContent, "")

	ok, err := client.EditEventSession(context.Background(), 900, &EditEventSessionRequest{
		AccessSettings: &AccessSettings{},
		SendEmail:      utils.BoolPtr(true),
		UpdateContext:  utils.StringPtr(UpdateContextSeries),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	f := (*requests)[0].Form
	assert.Equal(t, "0", f.Get("AccessSettings[isModerationRequired]"))
	assert.Equal(t, "true", f.Get("sendEmail"))
	assert.Equal(t, "series", f.Get("updateContext"))
}

func TestClient_DeleteEventSession_SendEmailFlag(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusNoContent, "")

	ok, err := client.DeleteEventSession(context.Background(), 900, utils.BoolPtr(false))
	require.NoError(t, err)
	assert.True(t, ok)

	req := (*requests)[0]
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/eventsessions/900", req.Path)
	assert.Equal(t, "false", req.Form.Get("sendEmail"))
}

func TestClient_CreateWebinar(t *testing.T) {
	recordLogs(t)
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		if r.URL.Path == "/events" {
			_, _ = w.Write([]byte(`{"eventId": 5, "link": "l1"}`))
			return
		}
		_, _ = w.Write([]byte(`{"eventSessionId": 6, "link": "l2"}`))
	}))
	defer server.Close()
	client := NewClient(Config{Token: "t", BaseURL: server.URL})

	created, err := client.CreateWebinar(context.Background(), &CreateWebinarRequest{
		CreateEventRequest: CreateEventRequest{Name: "Launch", Access: AccessFree},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/events", "/events/5/sessions"}, paths)
	assert.Equal(t, int64(5), *created.Event.EventID)
	assert.Equal(t, int64(6), *created.Session.EventSessionID)
}

func TestClient_InviteParticipants(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusCreated, "")

	ok, err := client.InviteParticipants(context.Background(), 900, &InviteRequest{
		Users: []Invitee{
			{Email: "ada@example.com", Name: utils.StringPtr("Ada")},
			{Email: "bob@example.com", Role: utils.StringPtr(RoleGuest)},
		},
		SendEmail: utils.BoolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	f := (*requests)[0].Form
	assert.Equal(t, "ada@example.com", f.Get("users[0][email]"))
	assert.Equal(t, "Ada", f.Get("users[0][name]"))
	assert.False(t, f.Has("users[0][role]"))
	assert.Equal(t, "bob@example.com", f.Get("users[1][email]"))
	assert.Equal(t, "guest", f.Get("users[1][role]"))
	assert.False(t, f.Has("users[1][name]"))
	assert.Equal(t, "true", f.Get("sendEmail"))
}

func TestClient_InviteParticipants_Validation(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusCreated, "")

	ok, err := client.InviteParticipants(context.Background(), 900, &InviteRequest{
		Users: []Invitee{{Email: "not-an-email"}},
	})

	assert.False(t, ok)
	assert.True(t, domain.IsType(err, domain.ErrorTypeValidation))
	assert.Empty(t, *requests)
}

func TestClient_RegisterParticipant(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusCreated, `{"participationId": 31, "link": "https://events.webinar.ru/x"}`)

	reg, err := client.RegisterParticipant(context.Background(), 900, &RegisterRequest{
		Email:            "ada@example.com",
		IsAutoEnter:      utils.BoolPtr(true),
		AdditionalFields: map[string]string{"company": "LF"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), *reg.ParticipationID)

	f := (*requests)[0].Form
	assert.Equal(t, "/eventsessions/900/register", (*requests)[0].Path)
	assert.Equal(t, "ada@example.com", f.Get("email"))
	assert.Equal(t, "true", f.Get("isAutoEnter"))
	assert.Equal(t, "LF", f.Get("additionalFields[company]"))
}

func TestClient_GetEventFiles_UnwrapsEnvelopes(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, `[
		{"file": {"id": 1, "name": "slides.pdf", "type": "presentation", "slides": [{"id": 1}, {"id": 2}]}},
		{"file": {"id": 2, "name": "intro.mp4", "typeFile": "video", "duration": 120}},
		{"other": true}
	]`)

	files, err := client.GetEventFiles(context.Background(), 12, utils.Int64Ptr(1))
	require.NoError(t, err)

	assert.Equal(t, "1", (*requests)[0].Query.Get("fileId"))
	require.Len(t, files, 2)
	assert.True(t, files[0].IsPresentation())
	assert.Len(t, files[0].Slides, 2)
	assert.True(t, files[1].IsVideo())
	assert.Equal(t, int64(120), *files[1].Duration)
}

func TestClient_GetChatMessages(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, `[{"id": 1, "text": "hi", "authorId": 3, "createAt": "2024-03-07 18:01:02"}]`)

	messages, err := client.GetChatMessages(context.Background(), 900, &ChatOptions{
		IsModerated: utils.BoolPtr(true),
		AuthorID:    utils.Int64Ptr(3),
		PrivateChat: utils.BoolPtr(false),
	})
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, 18, messages[0].CreateAt.Hour())

	q := (*requests)[0].Query
	assert.Equal(t, "true", q.Get("isModerated"))
	assert.Equal(t, "3", q.Get("authorId"))
	assert.Equal(t, "false", q.Get("privateChat"))
}

func TestClient_GetChatMessages_PrivateRequiresAuthor(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.GetChatMessages(context.Background(), 900, &ChatOptions{PrivateChat: utils.BoolPtr(true)})

	assert.True(t, domain.IsType(err, domain.ErrorTypeValidation))
	assert.Empty(t, *requests)
}

func TestClient_DownloadFile(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, "raw-bytes")

	data, err := client.DownloadFile(context.Background(), 8)
	require.NoError(t, err)

	assert.Equal(t, []byte("raw-bytes"), data)
	assert.Equal(t, "/fileSystem/file/8/download", (*requests)[0].Path)
}

func TestClient_GetUsersStats(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, `[{
		"id": 1, "email": "ada@example.com",
		"eventSessions": [
			{"id": 10, "duration": 600, "connections": [{"ip": "10.0.0.1", "duration": 600}]},
			{"id": 11, "duration": 300, "utm": {"source": "newsletter"}}
		]
	}]`)
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	stats, err := client.GetUsersStats(context.Background(), &UserStatsOptions{From: &from, EventID: utils.Int64Ptr(5)})
	require.NoError(t, err)

	require.Len(t, stats, 1)
	assert.Equal(t, int64(900), stats[0].TotalDuration())
	assert.Equal(t, "newsletter", *stats[0].EventSessions[1].UTM.Source)
	assert.Equal(t, "2024-01-01 00:00:00", (*requests)[0].Query.Get("from"))
	assert.Equal(t, "5", (*requests)[0].Query.Get("eventId"))
}

func TestClient_ListDecodeFailure(t *testing.T) {
	logs := recordLogs(t)
	client, _ := newTestClient(t, http.StatusOK, `{"not": "a list"}`)

	zones, err := client.GetTimezones(context.Background())

	assert.Nil(t, zones)
	assert.True(t, domain.IsType(err, domain.ErrorTypeDecode))
	assert.Equal(t, 1, logs.warnings())
}

func TestClient_ListNullIsAbsent(t *testing.T) {
	recordLogs(t)
	client, _ := newTestClient(t, http.StatusOK, `null`)

	members, err := client.GetMembers(context.Background(), &MemberListOptions{Role: utils.StringPtr(RoleAdmin)})

	require.NoError(t, err)
	assert.Nil(t, members)
}

func TestClient_EditEvent_UsesCapitalizedAccessLabel(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusNoContent, "")
	status := StatusStop

	ok, err := client.EditEvent(context.Background(), 55, &EditEventRequest{
		Name:           utils.StringPtr("Renamed"),
		AccessSettings: &AccessSettings{IsRegistrationRequired: true},
		Status:         &status,
	})
	require.NoError(t, err)
	assert.True(t, ok)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/events/55", req.Path)
	assert.Equal(t, "Renamed", req.Form.Get("name"))
	assert.Equal(t, "STOP", req.Form.Get("status"))
	assert.Equal(t, "0", req.Form.Get("AccessSettings[isPasswordRequired]"))
	assert.Equal(t, "1", req.Form.Get("AccessSettings[isRegistrationRequired]"))
	assert.Equal(t, "0", req.Form.Get("AccessSettings[isModerationRequired]"))
	assert.False(t, req.Form.Has("accessSettings[isRegistrationRequired]"))
	assert.False(t, req.Form.Has("password"))
}

func TestClient_GetEventParticipations(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, `[
		{"id": 1, "eventId": 12, "email": "ada@example.com", "registerStatus": "registered"},
		{"id": 2, "eventId": 12, "email": "bob@example.com"}
	]`)

	participants, err := client.GetEventParticipations(context.Background(), 12, &PageOptions{
		PerPage: utils.IntPtr(50),
		Page:    utils.IntPtr(2),
	})
	require.NoError(t, err)

	require.Len(t, participants, 2)
	assert.Equal(t, "ada@example.com", *participants[0].Email)
	assert.Equal(t, "registered", *participants[0].RegisterStatus)
	assert.Nil(t, participants[1].RegisterStatus)
	assert.Nil(t, participants[0].EventSessionID)

	req := (*requests)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/events/12/participations", req.Path)
	assert.Equal(t, url.Values{"perPage": {"50"}, "page": {"2"}}, req.Query)
}

func TestClient_GetRecords_QueryEncoding(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, `[{"id": 70, "name": "Community call", "duration": 3600}]`)
	from := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)

	records, err := client.GetRecords(context.Background(), &RecordListOptions{
		From:   &from,
		To:     &to,
		Offset: utils.IntPtr(20),
	})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, int64(70), *records[0].ID)

	req := (*requests)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/records", req.Path)
	assert.Equal(t, url.Values{
		"from":   {"2024-03-01 08:00:00"},
		"to":     {"2024-03-31 23:59:59"},
		"offset": {"20"},
	}, req.Query)
}

func TestClient_GetEventSessionsStats(t *testing.T) {
	recordLogs(t)
	client, requests := newTestClient(t, http.StatusOK, `[
		{"id": 900, "name": "Community call", "eventId": 12, "participationsCount": 40, "visitorsCount": 31}
	]`)
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	stats, err := client.GetEventSessionsStats(context.Background(), &SessionStatsOptions{
		From:   &from,
		UserID: utils.Int64Ptr(77),
	})
	require.NoError(t, err)

	require.Len(t, stats, 1)
	assert.Equal(t, 31, *stats[0].VisitorsCount)
	assert.Nil(t, stats[0].EndsAt)

	req := (*requests)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/stats/events", req.Path)
	assert.Equal(t, url.Values{"from": {"2024-01-01 00:00:00"}, "userId": {"77"}}, req.Query)
}

func TestClient_MutationsWithEmptyBodyAreDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		call func(c *Client) (any, error)
	}{
		{
			name: "create event with empty body",
			body: "",
			call: func(c *Client) (any, error) {
				return c.CreateEvent(context.Background(), &CreateEventRequest{Name: "Launch", Access: AccessFree})
			},
		},
		{
			name: "create event session with null body",
			body: "null",
			call: func(c *Client) (any, error) {
				return c.CreateEventSession(context.Background(), 321, &CreateEventSessionRequest{})
			},
		},
		{
			name: "register participant with null body",
			body: "null",
			call: func(c *Client) (any, error) {
				return c.RegisterParticipant(context.Background(), 900, &RegisterRequest{Email: "ada@example.com"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := recordLogs(t)
			client, requests := newTestClient(t, http.StatusCreated, tt.body)

			result, err := tt.call(client)

			assert.Nil(t, result)
			assert.True(t, domain.IsType(err, domain.ErrorTypeDecode))
			assert.False(t, domain.IsType(err, domain.ErrorTypeNotFound))
			assert.Equal(t, http.StatusCreated, domain.StatusCode(err))
			assert.Len(t, *requests, 1)
			assert.Equal(t, 1, logs.warnings())
		})
	}
}
