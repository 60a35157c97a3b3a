// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"context"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/formenc"
)

// PageOptions selects a page of a paginated listing.
type PageOptions struct {
	// PerPage is one of 10, 50, 100, 250 or 500.
	PerPage *int
	Page    *int
}

func (o *PageOptions) params() formenc.Params {
	p := formenc.New()
	if o == nil {
		return p
	}
	return p.SetInt("perPage", o.PerPage).SetInt("page", o.Page)
}

// MemberListOptions filters the organization members listing.
type MemberListOptions struct {
	PageOptions
	// ID is the user id of a single member.
	ID       *int64
	Role     *string
	Email    *string
	Position *string
}

func (o *MemberListOptions) params() formenc.Params {
	if o == nil {
		return formenc.New()
	}
	return o.PageOptions.params().
		SetInt64("id", o.ID).
		SetString("role", o.Role).
		SetString("email", o.Email).
		SetString("position", o.Position)
}

// GetMembers retrieves the employees of the organization
func (c *Client) GetMembers(ctx context.Context, opts *MemberListOptions) ([]Member, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_members"))

	resp, err := c.get(ctx, "/organization/members", opts.params())
	if err != nil {
		return nil, err
	}

	members, err := decodeList[Member](resp)
	if err != nil {
		logDecodeError(ctx, "members", err)
		return nil, err
	}

	slog.DebugContext(ctx, "successfully retrieved members", "member_count", len(members))
	return members, nil
}
