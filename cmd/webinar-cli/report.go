// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/concurrent"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/utils"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

// eventReport summarizes attendance and chat activity of an event.
type eventReport struct {
	EventID      int64           `json:"eventId"`
	Name         string          `json:"name,omitempty"`
	Sessions     []sessionReport `json:"sessions"`
	Participants int             `json:"participants"`
	Visited      int             `json:"visited"`
	ChatMessages int             `json:"chatMessages"`
	// LinkHosts counts the distinct links shared in chat per host.
	LinkHosts map[string]int `json:"linkHosts,omitempty"`
	Failed    int            `json:"failed,omitempty"`
}

type sessionReport struct {
	EventSessionID int64             `json:"eventSessionId"`
	Name           string            `json:"name,omitempty"`
	StartsAt       *webinar.DateTime `json:"startsAt,omitempty"`
	Participants   int               `json:"participants"`
	Visited        int               `json:"visited"`
	// VisitSeconds is the summed visit duration of every participant.
	VisitSeconds int64 `json:"visitSeconds"`
	ChatMessages int   `json:"chatMessages"`
	// Links are the distinct links posted in the chat.
	Links []string `json:"links,omitempty"`
	Error string   `json:"error,omitempty"`
}

func runReport(ctx context.Context, env *environment, args []string) (any, error) {
	fs := newFlagSet(env, "report")
	workers := fs.Int("workers", env.cfg.Workers, "concurrent session lookups")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	id, err := positionalID(fs, "event id")
	if err != nil {
		return nil, err
	}

	event, err := env.client.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return buildReport(ctx, env.client, concurrent.NewWorkerPool(*workers), id, event), nil
}

// buildReport queries every session of event through pool. A failed session
// is reported with its error instead of failing the whole report.
func buildReport(ctx context.Context, client webinar.ClientAPI, pool *concurrent.WorkerPool, eventID int64, event *webinar.Event) *eventReport {
	report := &eventReport{
		EventID:  eventID,
		Name:     utils.StringValue(event.Name),
		Sessions: make([]sessionReport, 0, len(event.EventSessions)),
	}
	slog.DebugContext(ctx, "building event report",
		"event_id", eventID, "session_count", len(event.EventSessions), "workers", pool.Size())

	rows, errs := concurrent.Map(ctx, pool, event.EventSessions, func(ctx context.Context, s webinar.EventSession) (sessionReport, error) {
		return sessionSummary(ctx, client, s)
	})

	for i, row := range rows {
		session := event.EventSessions[i]
		if errs != nil && errs[i] != nil {
			slog.WarnContext(ctx, "session report incomplete",
				"event_session_id", utils.Value(session.ID), logging.ErrKey, errs[i])
			row = sessionReport{
				EventSessionID: utils.Value(session.ID),
				Name:           utils.StringValue(session.Name),
				StartsAt:       session.StartsAt,
				Error:          errs[i].Error(),
			}
			report.Failed++
		}
		report.Participants += row.Participants
		report.Visited += row.Visited
		report.ChatMessages += row.ChatMessages
		for _, link := range row.Links {
			if report.LinkHosts == nil {
				report.LinkHosts = map[string]int{}
			}
			report.LinkHosts[webinar.LinkHost(link)]++
		}
		report.Sessions = append(report.Sessions, row)
	}
	return report
}

func sessionSummary(ctx context.Context, client webinar.ClientAPI, s webinar.EventSession) (sessionReport, error) {
	if s.ID == nil {
		return sessionReport{}, errors.New("session without id")
	}
	row := sessionReport{
		EventSessionID: *s.ID,
		Name:           utils.StringValue(s.Name),
		StartsAt:       s.StartsAt,
	}

	// Participants and chat are independent; the first failure fails the row.
	err := concurrent.NewWorkerPool(2).Run(ctx,
		func(ctx context.Context) error {
			participants, err := client.GetEventSessionParticipations(ctx, *s.ID, nil)
			if err != nil {
				return fmt.Errorf("participants: %w", err)
			}
			row.Participants = len(participants)
			for _, p := range participants {
				if p.Visited != nil && *p.Visited {
					row.Visited++
				}
				row.VisitSeconds += utils.Value(p.VisitDuration)
			}
			return nil
		},
		func(ctx context.Context) error {
			messages, err := client.GetChatMessages(ctx, *s.ID, nil)
			if err != nil {
				return fmt.Errorf("chat: %w", err)
			}
			row.ChatMessages = len(messages)
			row.Links = webinar.SharedLinks(messages)
			return nil
		},
	)
	return row, err
}
