// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package formenc flattens typed, optional call arguments into the
// bracket-notation keys the webinar platform expects in query strings and
// form bodies:
//
//	name[0], name[1]                  sequences of scalars
//	name[key]                         mappings
//	name[0][email]                    sequences of records
//	startsAt[date][year] ... [minute] date/time values
//
// Absent (nil) arguments never produce a key. Booleans are sent as the
// string literals "true" and "false"; integers stay integers until the
// final conversion to url.Values.
package formenc

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TimeStringLayout is the default stringification of a date/time used by
// list filters such as "from" and "to".
const TimeStringLayout = "2006-01-02 15:04:05"

// Params is a flat string-keyed mapping ready for transmission. Values are
// strings or integer types.
type Params map[string]any

// Encoder is implemented by structured values that know their own wire
// encoding under a given label (access settings, invite records).
type Encoder interface {
	EncodeForm(label string) Params
}

// Scalar is the set of element types accepted by SetList and SetMap.
type Scalar interface {
	~string | ~bool | ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// New returns an empty Params.
func New() Params {
	return Params{}
}

// Key builds a bracketed key: Key("users", "0", "email") is "users[0][email]".
func Key(label string, parts ...string) string {
	var b strings.Builder
	b.WriteString(label)
	for _, p := range parts {
		b.WriteByte('[')
		b.WriteString(p)
		b.WriteByte(']')
	}
	return b.String()
}

// Set stores a required value as is. Booleans are converted to their
// string literal; a pointer is dereferenced and a nil one stores nothing.
func (p Params) Set(key string, v any) Params {
	if n := normalize(v); n != nil {
		p[key] = n
	}
	return p
}

// SetString stores v when present.
func (p Params) SetString(key string, v *string) Params {
	if v != nil {
		p[key] = *v
	}
	return p
}

// SetInt stores v when present.
func (p Params) SetInt(key string, v *int) Params {
	if v != nil {
		p[key] = *v
	}
	return p
}

// SetInt64 stores v when present.
func (p Params) SetInt64(key string, v *int64) Params {
	if v != nil {
		p[key] = *v
	}
	return p
}

// SetBool stores "true" or "false" when present.
func (p Params) SetBool(key string, v *bool) Params {
	if v != nil {
		p[key] = strconv.FormatBool(*v)
	}
	return p
}

// SetDateTime decomposes v into label[date][year|month|day] and
// label[time][hour|minute]. Seconds and the zone offset are not sent; the
// wall clock of v's own location is used.
func (p Params) SetDateTime(label string, v *time.Time) Params {
	if v == nil {
		return p
	}
	t := *v
	p[Key(label, "date", "year")] = t.Year()
	p[Key(label, "date", "month")] = int(t.Month())
	p[Key(label, "date", "day")] = t.Day()
	p[Key(label, "time", "hour")] = t.Hour()
	p[Key(label, "time", "minute")] = t.Minute()
	return p
}

// SetTimeString stores v formatted with TimeStringLayout when present.
func (p Params) SetTimeString(key string, v *time.Time) Params {
	if v != nil {
		p[key] = v.Format(TimeStringLayout)
	}
	return p
}

// SetObject merges the encoding of e under label. A nil Encoder is absent.
func (p Params) SetObject(label string, e Encoder) Params {
	if e == nil {
		return p
	}
	return p.Merge(e.EncodeForm(label))
}

// Merge copies every key of other into p, overwriting duplicates.
func (p Params) Merge(other Params) Params {
	for k, v := range other {
		p[k] = v
	}
	return p
}

// SetOptional stores *v when present. It covers named scalar types such as
// enum-like strings that SetString does not accept.
func SetOptional[T Scalar](p Params, key string, v *T) Params {
	if v != nil {
		p[key] = normalize(*v)
	}
	return p
}

// SetList stores items as label[0]..label[N-1] in their original order.
// A nil slice is absent; an empty slice contributes no keys.
func SetList[T Scalar](p Params, label string, items []T) Params {
	for i, item := range items {
		p[Key(label, strconv.Itoa(i))] = normalize(item)
	}
	return p
}

// SetMap stores each entry as label[key].
func SetMap[T Scalar](p Params, label string, m map[string]T) Params {
	for k, v := range m {
		p[Key(label, k)] = normalize(v)
	}
	return p
}

// SetRecords stores each record under label[index]; fields a record leaves
// absent are omitted by its own encoder.
func SetRecords[T Encoder](p Params, label string, records []T) Params {
	for i, r := range records {
		p.Merge(r.EncodeForm(Key(label, strconv.Itoa(i))))
	}
	return p
}

// Keys returns the keys in lexical order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values converts p into url.Values for a query string or a
// form-urlencoded body.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for k, v := range p {
		values.Set(k, format(v))
	}
	return values
}

// normalize reduces named scalar types to their base type and turns
// booleans into their string literal.
func normalize(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return rv.String()
	case reflect.Int:
		return int(rv.Int())
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	}
	return v
}

func format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
