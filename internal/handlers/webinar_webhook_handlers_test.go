// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/messaging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/utils"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webhook"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar/mocks"
)

type fakePublisher struct {
	mu       sync.Mutex
	ready    bool
	err      error
	messages []messaging.Message
}

func (p *fakePublisher) Ready() bool { return p.ready }

func (p *fakePublisher) Publish(_ context.Context, msg messaging.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, msg)
	return nil
}

func setupWebhookHandlerForTesting(t *testing.T) (*WebinarWebhookHandler, *mocks.MockClient, *fakePublisher, *SessionNameCache) {
	t.Helper()
	client := &mocks.MockClient{}
	publisher := &fakePublisher{ready: true}
	names, err := NewSessionNameCache(8)
	require.NoError(t, err)
	return NewWebinarWebhookHandler(client, publisher, names, webhook.LangEN), client, publisher, names
}

func postWebhook(h http.Handler, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, WebhookPath, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestWebinarWebhookHandler_PublishesAndCachesName(t *testing.T) {
	h, client, publisher, names := setupWebhookHandlerForTesting(t)
	client.GetEventSessionFunc = func(context.Context, int64) (*webinar.EventSession, error) {
		t.Fatal("name present in payload, no lookup expected")
		return nil, nil
	}

	w := postWebhook(h, "application/json",
		`{"event": "eventSessionStarted", "data": {"eventSessionId": 2001, "name": "Weekly sync"}}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, publisher.messages, 1)
	msg := publisher.messages[0]
	assert.Equal(t, webhook.EventSessionStarted, msg.Event)
	assert.Equal(t, `Webinar "Weekly sync" has started`, msg.Summary)

	name, ok := names.Get(2001)
	assert.True(t, ok)
	assert.Equal(t, "Weekly sync", name)
}

func TestWebinarWebhookHandler_LooksUpMissingName(t *testing.T) {
	h, client, publisher, names := setupWebhookHandlerForTesting(t)

	lookups := 0
	client.GetEventSessionFunc = func(_ context.Context, id int64) (*webinar.EventSession, error) {
		lookups++
		assert.Equal(t, int64(2001), id)
		return &webinar.EventSession{ID: utils.Ptr(id), Name: utils.Ptr("Weekly sync")}, nil
	}

	body := `{"event": "eventSessionEnded", "data": {"eventSessionId": "2001"}}`
	require.Equal(t, http.StatusNoContent, postWebhook(h, "application/json", body).Code)
	require.Equal(t, http.StatusNoContent, postWebhook(h, "application/json", body).Code)

	assert.Equal(t, 1, lookups, "second notification is served from the cache")
	assert.Equal(t, 1, names.Len())
	require.Len(t, publisher.messages, 2)
	for _, msg := range publisher.messages {
		assert.Equal(t, "Weekly sync", *msg.Data.Name)
		assert.Equal(t, `Webinar "Weekly sync" has ended`, msg.Summary)
	}
}

func TestWebinarWebhookHandler_LookupFailureStillPublishes(t *testing.T) {
	h, client, publisher, _ := setupWebhookHandlerForTesting(t)
	client.GetEventSessionFunc = func(context.Context, int64) (*webinar.EventSession, error) {
		return nil, domain.NewUnavailableError("webinar API is unreachable")
	}

	w := postWebhook(h, "application/x-www-form-urlencoded",
		"event=eventSessionAllLeft&data%5BeventSessionId%5D=7")

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, publisher.messages, 1)
	assert.Nil(t, publisher.messages[0].Data.Name)
	assert.Equal(t, `All participants have left webinar "#7"`, publisher.messages[0].Summary)
}

func TestWebinarWebhookHandler_RecordEventSkipsLookup(t *testing.T) {
	h, client, publisher, _ := setupWebhookHandlerForTesting(t)
	client.GetEventSessionFunc = func(context.Context, int64) (*webinar.EventSession, error) {
		t.Fatal("record events carry no session id")
		return nil, nil
	}

	w := postWebhook(h, "application/json",
		`{"event": "recordReady", "data": {"recordId": 77, "url": "https://records.example/77", "duration": 90}}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, publisher.messages, 1)
	assert.Equal(t, int64(77), *publisher.messages[0].Data.RecordID)
}

func TestWebinarWebhookHandler_Errors(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		contentType  string
		body         string
		publishErr   error
		expectedCode int
	}{
		{
			name:         "wrong method",
			method:       http.MethodGet,
			expectedCode: http.StatusMethodNotAllowed,
		},
		{
			name:         "malformed body",
			method:       http.MethodPost,
			contentType:  "application/json",
			body:         `{"event":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown event",
			method:       http.MethodPost,
			contentType:  "application/json",
			body:         `{"event": "eventSessionPaused"}`,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "publisher unavailable",
			method:       http.MethodPost,
			contentType:  "application/json",
			body:         `{"event": "conversionReady", "data": {"conversionId": 5}}`,
			publishErr:   domain.NewUnavailableError("NATS connection is not available"),
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, publisher, _ := setupWebhookHandlerForTesting(t)
			publisher.err = tt.publishErr

			req := httptest.NewRequest(tt.method, WebhookPath, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Empty(t, publisher.messages)
		})
	}
}

func TestWebinarWebhookHandler_NoClientNoCache(t *testing.T) {
	publisher := &fakePublisher{ready: true}
	h := NewWebinarWebhookHandler(nil, publisher, nil, "")

	err := h.HandlePayload(context.Background(), &webhook.Payload{
		Event: webhook.EventSessionStarted,
		Data:  webhook.Data{EventSessionID: utils.Ptr(int64(3))},
	})

	require.NoError(t, err)
	require.Len(t, publisher.messages, 1)
	assert.Equal(t, `Webinar "#3" has started`, publisher.messages[0].Summary)
}

func TestHealthHandlers(t *testing.T) {
	w := httptest.NewRecorder()
	Livez(w, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	publisher := &fakePublisher{ready: false}
	h := NewWebinarWebhookHandler(nil, publisher, nil, webhook.LangRU)

	w = httptest.NewRecorder()
	Readyz(h)(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	publisher.ready = true
	w = httptest.NewRecorder()
	Readyz(h)(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK\n", w.Body.String())
}

func TestSessionNameCache_Evicts(t *testing.T) {
	c, err := NewSessionNameCache(2)
	require.NoError(t, err)

	c.Put(1, "one")
	c.Put(2, "two")
	c.Put(3, "three")

	_, ok := c.Get(1)
	assert.False(t, ok)
	name, ok := c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, "three", name)
	assert.Equal(t, 2, c.Len())
}
