// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"encoding/json"
	"strings"

	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/utils"
)

// Role values used for organization members and participants.
const (
	RoleAdmin    = "admin"
	RoleLecturer = "lecturer"
	RoleGuest    = "guest"
)

// User is the identity shared by members and participants.
type User struct {
	ID         *int64  `json:"id,omitempty"`
	Name       *string `json:"name,omitempty"`
	SecondName *string `json:"secondName,omitempty"`
	Email      *string `json:"email,omitempty"`
}

// Member is an employee of the organization.
type Member struct {
	User
	PatrName     *string         `json:"patrName,omitempty"`
	Nickname     *string         `json:"nickname,omitempty"`
	MembershipID *int64          `json:"membershipId,omitempty"`
	Role         *string         `json:"role,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	Position     *string         `json:"position,omitempty"`
	Organization *string         `json:"organization,omitempty"`
	Sex          *string         `json:"sex,omitempty"`
	Photo        json.RawMessage `json:"photo,omitempty"`
	Avatar       json.RawMessage `json:"avatar,omitempty"`
}

// Participant is a registration on an event or an event session. Its ID is
// the participation id, not the user id.
type Participant struct {
	User
	EventID *int64 `json:"eventId,omitempty"`
	// EventSessionID is nil when the registration covers the whole series.
	EventSessionID  *int64          `json:"eventSessionId,omitempty"`
	UserID          *int64          `json:"userId,omitempty"`
	URL             *string         `json:"url,omitempty"`
	Role            *string         `json:"role,omitempty"`
	RegisterStatus  *string         `json:"registerStatus,omitempty"`
	PaymentStatus   *string         `json:"paymentStatus,omitempty"`
	Visited         *bool           `json:"visited,omitempty"`
	IsAccepted      *int            `json:"isAccepted,omitempty"`
	IsSeen          json.RawMessage `json:"isSeen,omitempty"`
	AgreementStatus json.RawMessage `json:"agreementStatus,omitempty"`
	IsOnline        json.RawMessage `json:"isOnline,omitempty"`
}

// EventParticipant is registered on a whole series.
type EventParticipant struct {
	Participant
}

// EventSessionParticipant is registered on a single session and carries
// its attendance.
type EventSessionParticipant struct {
	Participant
	VisitDuration *int64    `json:"visitDuration,omitempty"`
	JoinedAt      *DateTime `json:"joinedAt,omitempty"`
	LeftAt        *DateTime `json:"leftAt,omitempty"`
}

// DisplayName joins the name parts that are present, falling back to the
// email address.
func (u User) DisplayName() string {
	full := strings.TrimSpace(utils.StringValue(u.Name) + " " + utils.StringValue(u.SecondName))
	return utils.CoalesceString(full, utils.StringValue(u.Email))
}
