// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/formenc"
)

// ChatMessage is a message of a session chat.
type ChatMessage struct {
	ID               *int64    `json:"id,omitempty"`
	Text             *string   `json:"text,omitempty"`
	AuthorID         *int64    `json:"authorId,omitempty"`
	AuthorName       *string   `json:"authorName,omitempty"`
	AuthorSecondName *string   `json:"authorSecondName,omitempty"`
	CreateAt         *DateTime `json:"createAt,omitempty"`
	IsModerated      *bool     `json:"isModerated,omitempty"`
	IsPrivate        *bool     `json:"isPrivate,omitempty"`
	IsQuestion       *bool     `json:"isQuestion,omitempty"`
}

// ChatOptions filters chat messages.
type ChatOptions struct {
	IsModerated *bool
	// Limit defaults to the last 100 messages on the platform side.
	Limit    *int
	AuthorID *int64
	// PrivateChat requires AuthorID.
	PrivateChat *bool
}

func (o *ChatOptions) params() formenc.Params {
	p := formenc.New()
	if o == nil {
		return p
	}
	return p.SetBool("isModerated", o.IsModerated).
		SetInt("limit", o.Limit).
		SetInt64("authorId", o.AuthorID).
		SetBool("privateChat", o.PrivateChat)
}

// GetChatMessages retrieves the chat of a session
func (c *Client) GetChatMessages(ctx context.Context, eventSessionID int64, opts *ChatOptions) ([]ChatMessage, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_chat_messages"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_session_id", eventSessionID))

	if opts != nil && opts.PrivateChat != nil && *opts.PrivateChat && opts.AuthorID == nil {
		return nil, domain.NewValidationError("private chat requires an author id")
	}

	resp, err := c.get(ctx, fmt.Sprintf("/eventsessions/%d/chat", eventSessionID), opts.params())
	if err != nil {
		return nil, err
	}

	messages, err := decodeList[ChatMessage](resp)
	if err != nil {
		logDecodeError(ctx, "chat messages", err)
		return nil, err
	}

	slog.DebugContext(ctx, "successfully retrieved chat messages", "message_count", len(messages))
	return messages, nil
}
