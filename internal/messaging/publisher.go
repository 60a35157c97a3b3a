// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package messaging forwards decoded webinar notifications to NATS.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/vmihailenco/msgpack/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webhook"
)

// tracerName is the instrumentation name for the messaging package.
const tracerName = "github.com/linuxfoundation/lfx-v2-webinar-client/internal/messaging"

// SubjectPrefix is prepended to the event tag to build the NATS subject.
const SubjectPrefix = "lfx.webinar.webhook."

// Encoding selects the wire format of published messages.
type Encoding string

const (
	EncodingJSON    Encoding = "json"
	EncodingMsgpack Encoding = "msgpack"
)

// ParseEncoding maps a configuration value to an Encoding. Empty means JSON.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(s) {
	case "", EncodingJSON:
		return EncodingJSON, nil
	case EncodingMsgpack:
		return EncodingMsgpack, nil
	}
	return "", fmt.Errorf("unsupported message encoding %q", s)
}

// INatsConn is the part of a NATS connection the publisher needs.
type INatsConn interface {
	IsConnected() bool
	Publish(subj string, data []byte) error
}

// Message is what subscribers receive for every notification.
type Message struct {
	Event   webhook.Event `json:"event" msgpack:"event"`
	Summary string        `json:"summary" msgpack:"summary"`
	Data    webhook.Data  `json:"data" msgpack:"data"`
}

// Publisher sends notifications to NATS.
type Publisher struct {
	NatsConn INatsConn
	Encoding Encoding
}

// NewPublisher creates a Publisher. An empty encoding means JSON.
func NewPublisher(natsConn INatsConn, encoding Encoding) *Publisher {
	if encoding == "" {
		encoding = EncodingJSON
	}
	return &Publisher{
		NatsConn: natsConn,
		Encoding: encoding,
	}
}

// Subject returns the subject a notification with event e is published on.
func Subject(e webhook.Event) string {
	return SubjectPrefix + string(e)
}

// Ready reports whether the underlying connection is up.
func (p *Publisher) Ready() bool {
	return p.NatsConn != nil && p.NatsConn.IsConnected()
}

// Publish encodes msg and sends it on the subject of its event.
func (p *Publisher) Publish(ctx context.Context, msg Message) error {
	subject := Subject(msg.Event)
	ctx = logging.AppendCtx(ctx, slog.String("subject", subject))

	ctx, span := otel.Tracer(tracerName).Start(ctx, "nats.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "nats"),
			attribute.String("messaging.destination.name", subject),
			attribute.String("messaging.message.encoding", string(p.Encoding)),
		),
	)
	defer span.End()

	if !p.Ready() {
		slog.WarnContext(ctx, "NATS connection is not available, dropping message")
		err := domain.NewUnavailableError("NATS connection is not available")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	data, err := p.encode(msg)
	if err != nil {
		slog.ErrorContext(ctx, "error encoding message", logging.ErrKey, err, "encoding", p.Encoding)
		err = domain.NewInternalError("failed to encode message", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := p.publish(ctx, subject, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (p *Publisher) encode(msg Message) ([]byte, error) {
	switch p.Encoding {
	case EncodingMsgpack:
		return msgpack.Marshal(msg)
	case EncodingJSON, "":
		return json.Marshal(msg)
	}
	return nil, fmt.Errorf("unsupported message encoding %q", p.Encoding)
}

func (p *Publisher) publish(ctx context.Context, subject string, data []byte) error {
	if err := p.NatsConn.Publish(subject, data); err != nil {
		slog.ErrorContext(ctx, "error sending message to NATS", logging.ErrKey, err)
		return domain.NewUnavailableError("failed to publish message", err)
	}
	slog.DebugContext(ctx, "sent message to NATS", "bytes", len(data))
	return nil
}

// Decode parses a message published with the given encoding.
func Decode(encoding Encoding, data []byte) (Message, error) {
	var msg Message
	var err error
	switch encoding {
	case EncodingMsgpack:
		err = msgpack.Unmarshal(data, &msg)
	case EncodingJSON, "":
		err = json.Unmarshal(data, &msg)
	default:
		err = fmt.Errorf("unsupported message encoding %q", encoding)
	}
	return msg, err
}
