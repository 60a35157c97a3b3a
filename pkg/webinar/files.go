// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/formenc"
)

// Record listing periods.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// FileListOptions filters the file system listing.
type FileListOptions struct {
	// User is the id of the organization member owning the files.
	User   *int64
	Parent *string
	// Format is a file extension.
	Format   *string
	IsShared *bool
}

func (o *FileListOptions) params() formenc.Params {
	p := formenc.New()
	if o == nil {
		return p
	}
	return p.SetInt64("user", o.User).
		SetString("parent", o.Parent).
		SetString("format", o.Format).
		SetBool("isShared", o.IsShared)
}

// RecordListOptions filters the recordings listing.
type RecordListOptions struct {
	From *time.Time
	// ID selects a single recording.
	ID     *int64
	Period *string
	To     *time.Time
	UserID *int64
	// Offset is a multiple of 10.
	Offset *int
	Limit  *int
}

func (o *RecordListOptions) params() formenc.Params {
	p := formenc.New()
	if o == nil {
		return p
	}
	return p.SetTimeString("from", o.From).
		SetInt64("id", o.ID).
		SetString("period", o.Period).
		SetTimeString("to", o.To).
		SetInt64("userId", o.UserID).
		SetInt("offset", o.Offset).
		SetInt("limit", o.Limit)
}

// GetFiles lists the file system of the organization
func (c *Client) GetFiles(ctx context.Context, opts *FileListOptions) ([]File, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_files"))

	resp, err := c.get(ctx, "/fileSystem/files", opts.params())
	if err != nil {
		return nil, err
	}

	files, err := decodeList[File](resp)
	if err != nil {
		logDecodeError(ctx, "files", err)
		return nil, err
	}

	slog.DebugContext(ctx, "successfully retrieved files", "file_count", len(files))
	return files, nil
}

// GetFile retrieves a file by id
func (c *Client) GetFile(ctx context.Context, fileID int64, name *string) (*File, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_file"))
	ctx = logging.AppendCtx(ctx, slog.Int64("file_id", fileID))

	resp, err := c.get(ctx, fmt.Sprintf("/fileSystem/file/%d", fileID), formenc.New().SetString("name", name))
	if err != nil {
		return nil, err
	}

	file, err := decodeOne[File](resp, "file")
	if err != nil {
		logDecodeError(ctx, "file", err)
		return nil, err
	}
	return file, nil
}

// DownloadFile returns the raw content of a file
func (c *Client) DownloadFile(ctx context.Context, fileID int64) ([]byte, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "download_file"))
	ctx = logging.AppendCtx(ctx, slog.Int64("file_id", fileID))

	resp, err := c.get(ctx, fmt.Sprintf("/fileSystem/file/%d/download", fileID), nil)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "successfully downloaded file", "size", len(resp.Body))
	return resp.Body, nil
}

// GetEventFiles lists the files attached to an event
func (c *Client) GetEventFiles(ctx context.Context, eventID int64, fileID *int64) ([]File, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_event_files"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_id", eventID))

	return c.listAttachedFiles(ctx, fmt.Sprintf("/events/%d/files", eventID), fileID)
}

// GetEventSessionFiles lists the files attached to a session
func (c *Client) GetEventSessionFiles(ctx context.Context, eventSessionID int64, fileID *int64) ([]File, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_event_session_files"))
	ctx = logging.AppendCtx(ctx, slog.Int64("event_session_id", eventSessionID))

	return c.listAttachedFiles(ctx, fmt.Sprintf("/eventsessions/%d/files", eventSessionID), fileID)
}

func (c *Client) listAttachedFiles(ctx context.Context, route string, fileID *int64) ([]File, error) {
	resp, err := c.get(ctx, route, formenc.New().SetInt64("fileId", fileID))
	if err != nil {
		return nil, err
	}

	envelopes, err := decodeList[fileEnvelope](resp)
	if err != nil {
		logDecodeError(ctx, "attached files", err)
		return nil, err
	}

	files := unwrapFiles(envelopes)
	slog.DebugContext(ctx, "successfully retrieved attached files", "file_count", len(files))
	return files, nil
}

// GetRecords lists online recordings
func (c *Client) GetRecords(ctx context.Context, opts *RecordListOptions) ([]File, error) {
	ctx = logging.AppendCtx(ctx, slog.String("webinar_operation", "get_records"))

	resp, err := c.get(ctx, "/records", opts.params())
	if err != nil {
		return nil, err
	}

	records, err := decodeList[File](resp)
	if err != nil {
		logDecodeError(ctx, "records", err)
		return nil, err
	}

	slog.DebugContext(ctx, "successfully retrieved records", "record_count", len(records))
	return records, nil
}
