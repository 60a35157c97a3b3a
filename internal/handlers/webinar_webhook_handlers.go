// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package handlers contains the HTTP handlers of the webhook receiver.
package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/messaging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/utils"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webhook"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

// WebhookPath is where the platform posts notifications.
const WebhookPath = "/webhooks/webinar"

// MaxWebhookBodyBytes caps the size of an accepted notification.
const MaxWebhookBodyBytes = 1 << 20

// EventPublisher forwards notifications downstream.
type EventPublisher interface {
	Ready() bool
	Publish(ctx context.Context, msg messaging.Message) error
}

// WebinarWebhookHandler receives platform notifications, fills in the
// session name when the payload lacks it, and publishes them.
type WebinarWebhookHandler struct {
	client    webinar.ClientAPI
	publisher EventPublisher
	names     *SessionNameCache
	lang      string
}

// NewWebinarWebhookHandler creates the handler. client and names may be nil,
// in which case session names are not looked up.
func NewWebinarWebhookHandler(
	client webinar.ClientAPI,
	publisher EventPublisher,
	names *SessionNameCache,
	lang string,
) *WebinarWebhookHandler {
	if lang == "" {
		lang = webhook.LangEN
	}
	return &WebinarWebhookHandler{
		client:    client,
		publisher: publisher,
		names:     names,
		lang:      lang,
	}
}

// HandlerReady reports whether notifications can be forwarded.
func (h *WebinarWebhookHandler) HandlerReady() bool {
	return h.publisher != nil && h.publisher.Ready()
}

// ServeHTTP implements http.Handler.
func (h *WebinarWebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxWebhookBodyBytes))
	if err != nil {
		slog.WarnContext(ctx, "failed to read webhook body", logging.ErrKey, err)
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	payload, err := webhook.Decode(r.Header.Get("Content-Type"), body)
	if err != nil {
		slog.WarnContext(ctx, "rejected webhook payload", logging.ErrKey, err)
		status := http.StatusBadRequest
		if errors.Is(err, webhook.ErrUnknownEvent) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	if err := h.HandlePayload(ctx, payload); err != nil {
		http.Error(w, "failed to forward notification", statusFor(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandlePayload enriches, logs and publishes a decoded notification.
func (h *WebinarWebhookHandler) HandlePayload(ctx context.Context, payload *webhook.Payload) error {
	ctx = logging.AppendCtx(ctx, slog.String("webhook_event", string(payload.Event)))
	if payload.Data.EventSessionID != nil {
		ctx = logging.AppendCtx(ctx, slog.Int64("event_session_id", *payload.Data.EventSessionID))
	}

	h.fillSessionName(ctx, payload)

	summary := payload.Summary(h.lang)
	slog.InfoContext(ctx, "webinar notification received", "summary", summary)

	if h.publisher == nil {
		return nil
	}
	err := h.publisher.Publish(ctx, messaging.Message{
		Event:   payload.Event,
		Summary: summary,
		Data:    payload.Data,
	})
	if err != nil {
		slog.ErrorContext(ctx, "error publishing notification", logging.ErrKey, err)
		return err
	}
	return nil
}

func (h *WebinarWebhookHandler) fillSessionName(ctx context.Context, payload *webhook.Payload) {
	id := payload.Data.EventSessionID
	if id == nil {
		return
	}

	if name := utils.StringValue(payload.Data.Name); name != "" {
		if h.names != nil {
			h.names.Put(*id, name)
		}
		return
	}

	if h.names != nil {
		if name, ok := h.names.Get(*id); ok {
			payload.Data.Name = &name
			return
		}
	}

	if h.client == nil {
		return
	}
	session, err := h.client.GetEventSession(ctx, *id)
	if err != nil {
		slog.WarnContext(ctx, "unable to look up session name", logging.ErrKey, err)
		return
	}
	if session == nil || utils.StringValue(session.Name) == "" {
		return
	}

	name := *session.Name
	payload.Data.Name = &name
	if h.names != nil {
		h.names.Put(*id, name)
	}
}

func statusFor(err error) int {
	switch domain.GetErrorType(err) {
	case domain.ErrorTypeValidation:
		return http.StatusBadRequest
	case domain.ErrorTypeUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
