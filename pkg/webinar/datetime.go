// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dateTimeLayouts are tried in order when decoding a platform timestamp.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// DateTime is a platform timestamp. The platform mostly sends ISO 8601 with
// a numeric offset without a colon, which time.Time does not accept.
type DateTime struct {
	time.Time
}

// ParseDateTime parses s with any of the accepted layouts.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{Time: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("unrecognized date/time %q", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date/time must be a string: %w", err)
	}
	if s == "" {
		return nil
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders RFC 3339.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.RFC3339))
}

// TimePtr returns the wrapped time, or nil for a nil DateTime.
func (d *DateTime) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
