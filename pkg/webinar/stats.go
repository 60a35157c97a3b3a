// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

// Connection is one visit of a participant to a session.
type Connection struct {
	IP        *string   `json:"ip,omitempty"`
	UserAgent *string   `json:"userAgent,omitempty"`
	JoinedAt  *DateTime `json:"joinedAt,omitempty"`
	LeftAt    *DateTime `json:"leftAt,omitempty"`
	Duration  *int64    `json:"duration,omitempty"`
	Country   *string   `json:"country,omitempty"`
	City      *string   `json:"city,omitempty"`
}

// UTM holds the campaign tags a participant registered with.
type UTM struct {
	Source   *string `json:"source,omitempty"`
	Medium   *string `json:"medium,omitempty"`
	Campaign *string `json:"campaign,omitempty"`
	Term     *string `json:"term,omitempty"`
	Content  *string `json:"content,omitempty"`
}

// UserSessionStats is the attendance of one user in one session.
type UserSessionStats struct {
	ID          *int64       `json:"id,omitempty"`
	Name        *string      `json:"name,omitempty"`
	StartsAt    *DateTime    `json:"startsAt,omitempty"`
	EndsAt      *DateTime    `json:"endsAt,omitempty"`
	Duration    *int64       `json:"duration,omitempty"`
	Connections []Connection `json:"connections,omitempty"`
	UTM         *UTM         `json:"utm,omitempty"`
}

// UserStats is the attendance of one participant across sessions.
type UserStats struct {
	User
	EventSessions []UserSessionStats `json:"eventSessions,omitempty"`
}

// TotalDuration sums the durations of all sessions that report one.
func (s UserStats) TotalDuration() int64 {
	var total int64
	for _, es := range s.EventSessions {
		if es.Duration != nil {
			total += *es.Duration
		}
	}
	return total
}

// SessionStats is the attendance summary of one session.
type SessionStats struct {
	ID                  *int64       `json:"id,omitempty"`
	Name                *string      `json:"name,omitempty"`
	EventID             *int64       `json:"eventId,omitempty"`
	StartsAt            *DateTime    `json:"startsAt,omitempty"`
	EndsAt              *DateTime    `json:"endsAt,omitempty"`
	ParticipationsCount *int         `json:"participationsCount,omitempty"`
	VisitorsCount       *int         `json:"visitorsCount,omitempty"`
	Connections         []Connection `json:"connections,omitempty"`
	UTM                 []UTM        `json:"utm,omitempty"`
}
