// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"context"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/transport"
)

// decodeOne decodes a single record. A null body is reported as not found
// so the result is never a zero-valued record standing in for "absent".
func decodeOne[T any](resp *transport.Response, what string) (*T, error) {
	if resp.IsNull() {
		return nil, domain.NewNotFoundError(what + " not found").WithStatus(resp.StatusCode)
	}
	var out T
	if err := resp.DecodeJSON(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// decodeCreated decodes the record returned by a mutating call. The
// platform accepted the request, so a null body is a decode failure carrying
// the status rather than "not found".
func decodeCreated[T any](resp *transport.Response, what string) (*T, error) {
	if resp.IsNull() {
		return nil, domain.NewDecodeError(what + " missing from response").WithStatus(resp.StatusCode)
	}
	return decodeOne[T](resp, what)
}

// decodeList decodes a JSON array preserving element order. A null body
// decodes to a nil slice, an empty array to an empty one.
func decodeList[T any](resp *transport.Response) ([]T, error) {
	if resp.IsNull() {
		return nil, nil
	}
	var out []T
	if err := resp.DecodeJSON(&out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// fileEnvelope is the wrapper used by the event and event session file
// listings: [{"file": {...}}, ...].
type fileEnvelope struct {
	File *File `json:"file"`
}

// unwrapFiles flattens file envelopes, skipping entries without a file.
func unwrapFiles(envelopes []fileEnvelope) []File {
	if envelopes == nil {
		return nil
	}
	files := make([]File, 0, len(envelopes))
	for _, e := range envelopes {
		if e.File != nil {
			files = append(files, *e.File)
		}
	}
	return files
}

// logDecodeError records a decode failure at the operation level.
func logDecodeError(ctx context.Context, what string, err error) {
	if domain.IsType(err, domain.ErrorTypeDecode) {
		slog.WarnContext(ctx, "failed to decode "+what, logging.ErrKey, err)
	}
}
