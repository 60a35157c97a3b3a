// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Optional flag helpers: the returned pointer stays nil unless the flag is
// given, so unset flags never reach the request.

func optInt64(fs *flag.FlagSet, name, usage string) **int64 {
	var p *int64
	fs.Func(name, usage, func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		p = &v
		return nil
	})
	return &p
}

func optInt(fs *flag.FlagSet, name, usage string) **int {
	var p *int
	fs.Func(name, usage, func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		p = &v
		return nil
	})
	return &p
}

func optString(fs *flag.FlagSet, name, usage string) **string {
	var p *string
	fs.Func(name, usage, func(s string) error {
		p = &s
		return nil
	})
	return &p
}

func optBool(fs *flag.FlagSet, name, usage string) **bool {
	var p *bool
	fs.Func(name, usage+" (true|false)", func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		p = &v
		return nil
	})
	return &p
}

// timeLayouts are accepted by time flags, in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func optTime(fs *flag.FlagSet, name, usage string) **time.Time {
	var p *time.Time
	fs.Func(name, usage+" (YYYY-MM-DD[ HH:MM:SS] or RFC 3339)", func(s string) error {
		t, err := parseTime(s)
		if err != nil {
			return err
		}
		p = &t
		return nil
	})
	return &p
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// positionalID parses the single numeric argument most commands take.
func positionalID(fs *flag.FlagSet, what string) (int64, error) {
	if fs.NArg() != 1 {
		return 0, fmt.Errorf("%s: expected exactly one %s argument", fs.Name(), what)
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid %s %q", fs.Name(), what, fs.Arg(0))
	}
	return id, nil
}
