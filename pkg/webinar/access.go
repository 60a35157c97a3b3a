// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import "github.com/linuxfoundation/lfx-v2-webinar-client/pkg/formenc"

// Access is the legacy numeric access level of an event.
type Access int

// Access levels accepted by the platform.
const (
	AccessFree                              Access = 1
	AccessFreeWithPassword                  Access = 3
	AccessRegistration                      Access = 4
	AccessRegistrationWithPassword          Access = 6
	AccessModeratedRegistration             Access = 8
	AccessModeratedRegistrationWithPassword Access = 10
)

// EventStatus is the lifecycle state of an event or session.
type EventStatus string

const (
	StatusActive EventStatus = "ACTIVE"
	StatusStart  EventStatus = "START"
	StatusStop   EventStatus = "STOP"
)

// StartType selects how a session is launched.
type StartType string

const (
	StartManual      StartType = "manual"
	StartAutostart   StartType = "autostart"
	StartAutowebinar StartType = "autowebinar"
)

// EventType is the kind of room the event uses.
type EventType string

const (
	TypeWebinar  EventType = "webinar"
	TypeMeeting  EventType = "meeting"
	TypeTraining EventType = "training"
)

// Lang is the interface language of an event.
type Lang string

const (
	LangRU Lang = "RU"
	LangEN Lang = "EN"
)

// Labels the platform expects for access settings. Event endpoints and the
// session edit endpoint use the capitalized form; session creation and list
// filters use the lower-case one.
const (
	accessSettingsLabel      = "AccessSettings"
	accessSettingsLabelLower = "accessSettings"
)

// AccessSettings describes how participants get into an event. All three
// flags are always sent together.
type AccessSettings struct {
	IsPasswordRequired     bool `json:"isPasswordRequired"`
	IsRegistrationRequired bool `json:"isRegistrationRequired"`
	IsModerationRequired   bool `json:"isModerationRequired"`
}

// EncodeForm renders the flags as numeric 1/0 under label.
func (a *AccessSettings) EncodeForm(label string) formenc.Params {
	if a == nil {
		return nil
	}
	return formenc.Params{
		formenc.Key(label, "isPasswordRequired"):     boolToInt(a.IsPasswordRequired),
		formenc.Key(label, "isRegistrationRequired"): boolToInt(a.IsRegistrationRequired),
		formenc.Key(label, "isModerationRequired"):   boolToInt(a.IsModerationRequired),
	}
}

// Access returns the legacy access level equivalent to the flags.
func (a AccessSettings) Access() Access {
	switch {
	case a.IsModerationRequired && a.IsPasswordRequired:
		return AccessModeratedRegistrationWithPassword
	case a.IsModerationRequired:
		return AccessModeratedRegistration
	case a.IsRegistrationRequired && a.IsPasswordRequired:
		return AccessRegistrationWithPassword
	case a.IsRegistrationRequired:
		return AccessRegistration
	case a.IsPasswordRequired:
		return AccessFreeWithPassword
	}
	return AccessFree
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
