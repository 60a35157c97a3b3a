// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

// ErrUnknownEvent is returned for a tag outside the known set.
var ErrUnknownEvent = errors.New("unknown webhook event")

var dateTimeType = reflect.TypeOf(webinar.DateTime{})

// Decode parses a notification body. JSON bodies and form bodies
// (event=...&data[eventId]=...) are accepted; numeric fields may arrive as
// strings.
func Decode(contentType string, body []byte) (*Payload, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)

	var raw map[string]any
	switch mediaType {
	case "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("failed to parse webhook form: %w", err)
		}
		raw = formToMap(values)
	default:
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse webhook JSON: %w", err)
		}
	}

	return FromMap(raw)
}

// FromMap converts a generic map into a Payload and checks the event tag.
func FromMap(raw map[string]any) (*Payload, error) {
	var payload Payload
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       stringToDateTimeHook,
		Result:           &payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode webhook payload: %w", err)
	}

	if !payload.Event.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, payload.Event)
	}
	return &payload, nil
}

func stringToDateTimeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != dateTimeType || from.Kind() != reflect.String {
		return data, nil
	}
	s := data.(string)
	if s == "" {
		return webinar.DateTime{}, nil
	}
	return webinar.ParseDateTime(s)
}

// formToMap turns data[field]=value keys into a nested "data" map.
func formToMap(values url.Values) map[string]any {
	raw := map[string]any{}
	data := map[string]any{}
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if field, ok := strings.CutPrefix(key, "data["); ok && strings.HasSuffix(field, "]") {
			data[strings.TrimSuffix(field, "]")] = vals[0]
			continue
		}
		raw[key] = vals[0]
	}
	if len(data) > 0 {
		raw["data"] = data
	}
	return raw
}
