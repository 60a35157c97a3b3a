// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/config"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

// environment is what a command runs against.
type environment struct {
	client webinar.ClientAPI
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

// command is one subcommand. A nil result prints nothing.
type command struct {
	summary string
	run     func(ctx context.Context, env *environment, args []string) (any, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"members":        {summary: "list organization members", run: runMembers},
		"events":         {summary: "list events (scoped to -user or WEBINAR_USER_ID when set)", run: runEvents},
		"event":          {summary: "show one event with its sessions", run: runEvent},
		"session":        {summary: "show one event session", run: runSession},
		"stop-session":   {summary: "stop a running event session", run: runStopSession},
		"participants":   {summary: "list participants of an event or a session", run: runParticipants},
		"timezones":      {summary: "list timezones", run: runTimezones},
		"files":          {summary: "list file system entries or files attached to an event or session", run: runFiles},
		"download":       {summary: "download a file", run: runDownload},
		"records":        {summary: "list recordings", run: runRecords},
		"chat":           {summary: "show chat messages of a session", run: runChat},
		"stats-users":    {summary: "attendance statistics per user", run: runStatsUsers},
		"stats-sessions": {summary: "attendance statistics per session", run: runStatsSessions},
		"report":         {summary: "per-session attendance and chat summary of an event", run: runReport},
	}
}

func newFlagSet(env *environment, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	return fs
}

func runMembers(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "members")
	id := optInt64(fs, "id", "member user id")
	role := optString(fs, "role", "member role (admin, lecturer, guest)")
	email := optString(fs, "email", "member email")
	position := optString(fs, "position", "member position")
	page := optInt(fs, "page", "page number")
	perPage := optInt(fs, "per-page", "page size (10, 50, 100, 250, 500)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return env.client.GetMembers(ctx, &webinar.MemberListOptions{
		PageOptions: webinar.PageOptions{PerPage: *perPage, Page: *page},
		ID:          *id,
		Role:        *role,
		Email:       *email,
		Position:    *position,
	})
}

func runEvents(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "events")
	user := optInt64(fs, "user", "organizer user id")
	from := optTime(fs, "from", "start of the interval")
	to := optTime(fs, "to", "end of the interval")
	name := optString(fs, "name", "event name")
	status := fs.String("status", "", "comma separated statuses (ACTIVE, START, STOP)")
	page := optInt(fs, "page", "page number")
	perPage := optInt(fs, "per-page", "page size (10, 50, 100, 250)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &webinar.EventListOptions{
		From:    *from,
		To:      *to,
		Name:    *name,
		Page:    *page,
		PerPage: *perPage,
	}
	for _, s := range splitList(*status) {
		opts.Status = append(opts.Status, webinar.EventStatus(s))
	}

	userID := env.cfg.UserID
	if *user != nil {
		userID = **user
	}
	if userID != 0 {
		return env.client.GetEventsForUser(ctx, userID, opts)
	}
	return env.client.GetEvents(ctx, opts)
}

func runEvent(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "event")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	id, err := positionalID(fs, "event id")
	if err != nil {
		return nil, err
	}
	return env.client.GetEvent(ctx, id)
}

func runSession(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "session")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	id, err := positionalID(fs, "session id")
	if err != nil {
		return nil, err
	}
	return env.client.GetEventSession(ctx, id)
}

func runStopSession(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "stop-session")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	id, err := positionalID(fs, "session id")
	if err != nil {
		return nil, err
	}
	stopped, err := env.client.StopEventSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{"eventSessionId": id, "stopped": stopped}, nil
}

func runParticipants(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "participants")
	event := optInt64(fs, "event", "event id")
	session := optInt64(fs, "session", "event session id")
	page := optInt(fs, "page", "page number")
	perPage := optInt(fs, "per-page", "page size")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &webinar.PageOptions{Page: *page, PerPage: *perPage}
	switch {
	case *event != nil && *session != nil:
		return nil, errors.New("participants: -event and -session are mutually exclusive")
	case *event != nil:
		return env.client.GetEventParticipations(ctx, **event, opts)
	case *session != nil:
		return env.client.GetEventSessionParticipations(ctx, **session, opts)
	}
	return nil, errors.New("participants: one of -event or -session is required")
}

func runTimezones(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "timezones")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return env.client.GetTimezones(ctx)
}

func runFiles(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "files")
	event := optInt64(fs, "event", "list files attached to this event")
	session := optInt64(fs, "session", "list files attached to this event session")
	fileID := optInt64(fs, "file", "single attached file id (with -event or -session)")
	user := optInt64(fs, "user", "owner member id")
	parent := optString(fs, "parent", "parent folder id")
	format := optString(fs, "format", "file extension")
	shared := optBool(fs, "shared", "only shared files")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case *event != nil && *session != nil:
		return nil, errors.New("files: -event and -session are mutually exclusive")
	case *event != nil:
		return env.client.GetEventFiles(ctx, **event, *fileID)
	case *session != nil:
		return env.client.GetEventSessionFiles(ctx, **session, *fileID)
	}
	return env.client.GetFiles(ctx, &webinar.FileListOptions{
		User:     *user,
		Parent:   *parent,
		Format:   *format,
		IsShared: *shared,
	})
}

func runDownload(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "download")
	out := fs.String("o", "", "output path (stdout when empty)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	id, err := positionalID(fs, "file id")
	if err != nil {
		return nil, err
	}

	data, err := env.client.DownloadFile(ctx, id)
	if err != nil {
		return nil, err
	}
	if *out == "" {
		_, err = env.stdout.Write(data)
		return nil, err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	return map[string]any{"fileId": id, "path": *out, "bytes": len(data)}, nil
}

func runRecords(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "records")
	from := optTime(fs, "from", "start of the interval")
	to := optTime(fs, "to", "end of the interval")
	id := optInt64(fs, "id", "single recording id")
	period := optString(fs, "period", "day, week, month or year")
	user := optInt64(fs, "user", "owner user id")
	offset := optInt(fs, "offset", "offset, a multiple of 10")
	limit := optInt(fs, "limit", "maximum number of records")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return env.client.GetRecords(ctx, &webinar.RecordListOptions{
		From:   *from,
		To:     *to,
		ID:     *id,
		Period: *period,
		UserID: *user,
		Offset: *offset,
		Limit:  *limit,
	})
}

func runChat(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "chat")
	moderated := optBool(fs, "moderated", "only moderated messages")
	limit := optInt(fs, "limit", "maximum number of messages")
	author := optInt64(fs, "author", "author user id")
	private := optBool(fs, "private", "private messages of -author")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	id, err := positionalID(fs, "session id")
	if err != nil {
		return nil, err
	}

	return env.client.GetChatMessages(ctx, id, &webinar.ChatOptions{
		IsModerated: *moderated,
		Limit:       *limit,
		AuthorID:    *author,
		PrivateChat: *private,
	})
}

func runStatsUsers(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "stats-users")
	from := optTime(fs, "from", "start of the interval")
	to := optTime(fs, "to", "end of the interval")
	event := optInt64(fs, "event", "event id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *from == nil {
		return nil, errors.New("stats-users: -from is required")
	}

	return env.client.GetUsersStats(ctx, &webinar.UserStatsOptions{
		From:    *from,
		To:      *to,
		EventID: *event,
	})
}

func runStatsSessions(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "stats-sessions")
	from := optTime(fs, "from", "start of the interval")
	to := optTime(fs, "to", "end of the interval")
	user := optInt64(fs, "user", "organizer user id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *from == nil {
		return nil, errors.New("stats-sessions: -from is required")
	}

	return env.client.GetEventSessionsStats(ctx, &webinar.SessionStatsOptions{
		From:   *from,
		To:     *to,
		UserID: *user,
	})
}
