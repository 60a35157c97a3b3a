// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package mocks provides a function-field implementation of
// webinar.ClientAPI for tests.
package mocks

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

// MockClient is a mock implementation of the webinar platform client.
// Unset functions return zero values and a nil error.
type MockClient struct {
	GetMembersFunc                    func(ctx context.Context, opts *webinar.MemberListOptions) ([]webinar.Member, error)
	GetEventsForUserFunc              func(ctx context.Context, userID int64, opts *webinar.EventListOptions) ([]webinar.Event, error)
	GetEventsFunc                     func(ctx context.Context, opts *webinar.EventListOptions) ([]webinar.Event, error)
	GetEventFunc                      func(ctx context.Context, eventID int64) (*webinar.Event, error)
	GetEventParticipationsFunc        func(ctx context.Context, eventID int64, opts *webinar.PageOptions) ([]webinar.EventParticipant, error)
	GetEventSessionParticipationsFunc func(ctx context.Context, eventSessionID int64, opts *webinar.PageOptions) ([]webinar.EventSessionParticipant, error)
	GetEventSessionFunc               func(ctx context.Context, eventSessionID int64) (*webinar.EventSession, error)
	StopEventSessionFunc              func(ctx context.Context, eventSessionID int64) (bool, error)
	GetTimezonesFunc                  func(ctx context.Context) ([]webinar.Timezone, error)
	DeleteEventFunc                   func(ctx context.Context, eventID int64) (bool, error)
	DeleteEventSessionFunc            func(ctx context.Context, eventSessionID int64, sendEmail *bool) (bool, error)
	CreateEventFunc                   func(ctx context.Context, req *webinar.CreateEventRequest) (*webinar.CreatedEvent, error)
	EditEventFunc                     func(ctx context.Context, eventID int64, req *webinar.EditEventRequest) (bool, error)
	CreateEventSessionFunc            func(ctx context.Context, eventID int64, req *webinar.CreateEventSessionRequest) (*webinar.CreatedEventSession, error)
	EditEventSessionFunc              func(ctx context.Context, eventSessionID int64, req *webinar.EditEventSessionRequest) (bool, error)
	CreateWebinarFunc                 func(ctx context.Context, req *webinar.CreateWebinarRequest) (*webinar.CreatedWebinar, error)
	GetChatMessagesFunc               func(ctx context.Context, eventSessionID int64, opts *webinar.ChatOptions) ([]webinar.ChatMessage, error)
	GetFilesFunc                      func(ctx context.Context, opts *webinar.FileListOptions) ([]webinar.File, error)
	GetFileFunc                       func(ctx context.Context, fileID int64, name *string) (*webinar.File, error)
	DownloadFileFunc                  func(ctx context.Context, fileID int64) ([]byte, error)
	GetEventFilesFunc                 func(ctx context.Context, eventID int64, fileID *int64) ([]webinar.File, error)
	GetEventSessionFilesFunc          func(ctx context.Context, eventSessionID int64, fileID *int64) ([]webinar.File, error)
	GetRecordsFunc                    func(ctx context.Context, opts *webinar.RecordListOptions) ([]webinar.File, error)
	GetUsersStatsFunc                 func(ctx context.Context, opts *webinar.UserStatsOptions) ([]webinar.UserStats, error)
	GetEventSessionsStatsFunc         func(ctx context.Context, opts *webinar.SessionStatsOptions) ([]webinar.SessionStats, error)
	RegisterParticipantFunc           func(ctx context.Context, eventSessionID int64, req *webinar.RegisterRequest) (*webinar.Registration, error)
	InviteParticipantsFunc            func(ctx context.Context, eventSessionID int64, req *webinar.InviteRequest) (bool, error)
}

// Ensure MockClient implements ClientAPI interface
var _ webinar.ClientAPI = (*MockClient)(nil)

// GetMembers mocks the GetMembers API call
func (m *MockClient) GetMembers(ctx context.Context, opts *webinar.MemberListOptions) ([]webinar.Member, error) {
	if m.GetMembersFunc != nil {
		return m.GetMembersFunc(ctx, opts)
	}
	return nil, nil
}

// GetEventsForUser mocks the GetEventsForUser API call
func (m *MockClient) GetEventsForUser(ctx context.Context, userID int64, opts *webinar.EventListOptions) ([]webinar.Event, error) {
	if m.GetEventsForUserFunc != nil {
		return m.GetEventsForUserFunc(ctx, userID, opts)
	}
	return nil, nil
}

// GetEvents mocks the GetEvents API call
func (m *MockClient) GetEvents(ctx context.Context, opts *webinar.EventListOptions) ([]webinar.Event, error) {
	if m.GetEventsFunc != nil {
		return m.GetEventsFunc(ctx, opts)
	}
	return nil, nil
}

// GetEvent mocks the GetEvent API call
func (m *MockClient) GetEvent(ctx context.Context, eventID int64) (*webinar.Event, error) {
	if m.GetEventFunc != nil {
		return m.GetEventFunc(ctx, eventID)
	}
	return nil, nil
}

// GetEventParticipations mocks the GetEventParticipations API call
func (m *MockClient) GetEventParticipations(ctx context.Context, eventID int64, opts *webinar.PageOptions) ([]webinar.EventParticipant, error) {
	if m.GetEventParticipationsFunc != nil {
		return m.GetEventParticipationsFunc(ctx, eventID, opts)
	}
	return nil, nil
}

// GetEventSessionParticipations mocks the GetEventSessionParticipations API call
func (m *MockClient) GetEventSessionParticipations(ctx context.Context, eventSessionID int64, opts *webinar.PageOptions) ([]webinar.EventSessionParticipant, error) {
	if m.GetEventSessionParticipationsFunc != nil {
		return m.GetEventSessionParticipationsFunc(ctx, eventSessionID, opts)
	}
	return nil, nil
}

// GetEventSession mocks the GetEventSession API call
func (m *MockClient) GetEventSession(ctx context.Context, eventSessionID int64) (*webinar.EventSession, error) {
	if m.GetEventSessionFunc != nil {
		return m.GetEventSessionFunc(ctx, eventSessionID)
	}
	return nil, nil
}

// StopEventSession mocks the StopEventSession API call
func (m *MockClient) StopEventSession(ctx context.Context, eventSessionID int64) (bool, error) {
	if m.StopEventSessionFunc != nil {
		return m.StopEventSessionFunc(ctx, eventSessionID)
	}
	return false, nil
}

// GetTimezones mocks the GetTimezones API call
func (m *MockClient) GetTimezones(ctx context.Context) ([]webinar.Timezone, error) {
	if m.GetTimezonesFunc != nil {
		return m.GetTimezonesFunc(ctx)
	}
	return nil, nil
}

// DeleteEvent mocks the DeleteEvent API call
func (m *MockClient) DeleteEvent(ctx context.Context, eventID int64) (bool, error) {
	if m.DeleteEventFunc != nil {
		return m.DeleteEventFunc(ctx, eventID)
	}
	return false, nil
}

// DeleteEventSession mocks the DeleteEventSession API call
func (m *MockClient) DeleteEventSession(ctx context.Context, eventSessionID int64, sendEmail *bool) (bool, error) {
	if m.DeleteEventSessionFunc != nil {
		return m.DeleteEventSessionFunc(ctx, eventSessionID, sendEmail)
	}
	return false, nil
}

// CreateEvent mocks the CreateEvent API call
func (m *MockClient) CreateEvent(ctx context.Context, req *webinar.CreateEventRequest) (*webinar.CreatedEvent, error) {
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(ctx, req)
	}
	return nil, nil
}

// EditEvent mocks the EditEvent API call
func (m *MockClient) EditEvent(ctx context.Context, eventID int64, req *webinar.EditEventRequest) (bool, error) {
	if m.EditEventFunc != nil {
		return m.EditEventFunc(ctx, eventID, req)
	}
	return false, nil
}

// CreateEventSession mocks the CreateEventSession API call
func (m *MockClient) CreateEventSession(ctx context.Context, eventID int64, req *webinar.CreateEventSessionRequest) (*webinar.CreatedEventSession, error) {
	if m.CreateEventSessionFunc != nil {
		return m.CreateEventSessionFunc(ctx, eventID, req)
	}
	return nil, nil
}

// EditEventSession mocks the EditEventSession API call
func (m *MockClient) EditEventSession(ctx context.Context, eventSessionID int64, req *webinar.EditEventSessionRequest) (bool, error) {
	if m.EditEventSessionFunc != nil {
		return m.EditEventSessionFunc(ctx, eventSessionID, req)
	}
	return false, nil
}

// CreateWebinar mocks the CreateWebinar API call
func (m *MockClient) CreateWebinar(ctx context.Context, req *webinar.CreateWebinarRequest) (*webinar.CreatedWebinar, error) {
	if m.CreateWebinarFunc != nil {
		return m.CreateWebinarFunc(ctx, req)
	}
	return nil, nil
}

// GetChatMessages mocks the GetChatMessages API call
func (m *MockClient) GetChatMessages(ctx context.Context, eventSessionID int64, opts *webinar.ChatOptions) ([]webinar.ChatMessage, error) {
	if m.GetChatMessagesFunc != nil {
		return m.GetChatMessagesFunc(ctx, eventSessionID, opts)
	}
	return nil, nil
}

// GetFiles mocks the GetFiles API call
func (m *MockClient) GetFiles(ctx context.Context, opts *webinar.FileListOptions) ([]webinar.File, error) {
	if m.GetFilesFunc != nil {
		return m.GetFilesFunc(ctx, opts)
	}
	return nil, nil
}

// GetFile mocks the GetFile API call
func (m *MockClient) GetFile(ctx context.Context, fileID int64, name *string) (*webinar.File, error) {
	if m.GetFileFunc != nil {
		return m.GetFileFunc(ctx, fileID, name)
	}
	return nil, nil
}

// DownloadFile mocks the DownloadFile API call
func (m *MockClient) DownloadFile(ctx context.Context, fileID int64) ([]byte, error) {
	if m.DownloadFileFunc != nil {
		return m.DownloadFileFunc(ctx, fileID)
	}
	return nil, nil
}

// GetEventFiles mocks the GetEventFiles API call
func (m *MockClient) GetEventFiles(ctx context.Context, eventID int64, fileID *int64) ([]webinar.File, error) {
	if m.GetEventFilesFunc != nil {
		return m.GetEventFilesFunc(ctx, eventID, fileID)
	}
	return nil, nil
}

// GetEventSessionFiles mocks the GetEventSessionFiles API call
func (m *MockClient) GetEventSessionFiles(ctx context.Context, eventSessionID int64, fileID *int64) ([]webinar.File, error) {
	if m.GetEventSessionFilesFunc != nil {
		return m.GetEventSessionFilesFunc(ctx, eventSessionID, fileID)
	}
	return nil, nil
}

// GetRecords mocks the GetRecords API call
func (m *MockClient) GetRecords(ctx context.Context, opts *webinar.RecordListOptions) ([]webinar.File, error) {
	if m.GetRecordsFunc != nil {
		return m.GetRecordsFunc(ctx, opts)
	}
	return nil, nil
}

// GetUsersStats mocks the GetUsersStats API call
func (m *MockClient) GetUsersStats(ctx context.Context, opts *webinar.UserStatsOptions) ([]webinar.UserStats, error) {
	if m.GetUsersStatsFunc != nil {
		return m.GetUsersStatsFunc(ctx, opts)
	}
	return nil, nil
}

// GetEventSessionsStats mocks the GetEventSessionsStats API call
func (m *MockClient) GetEventSessionsStats(ctx context.Context, opts *webinar.SessionStatsOptions) ([]webinar.SessionStats, error) {
	if m.GetEventSessionsStatsFunc != nil {
		return m.GetEventSessionsStatsFunc(ctx, opts)
	}
	return nil, nil
}

// RegisterParticipant mocks the RegisterParticipant API call
func (m *MockClient) RegisterParticipant(ctx context.Context, eventSessionID int64, req *webinar.RegisterRequest) (*webinar.Registration, error) {
	if m.RegisterParticipantFunc != nil {
		return m.RegisterParticipantFunc(ctx, eventSessionID, req)
	}
	return nil, nil
}

// InviteParticipants mocks the InviteParticipants API call
func (m *MockClient) InviteParticipants(ctx context.Context, eventSessionID int64, req *webinar.InviteRequest) (bool, error) {
	if m.InviteParticipantsFunc != nil {
		return m.InviteParticipantsFunc(ctx, eventSessionID, req)
	}
	return false, nil
}
