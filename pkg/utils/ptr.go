// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package utils holds small helpers for building optional call arguments.
package utils

import "time"

// Ptr returns a pointer to a copy of v. Optional webinar arguments are
// pointers, so this is the usual way to set one inline.
func Ptr[T any](v T) *T {
	return &v
}

// Value safely dereferences p, returning the zero value if nil.
func Value[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}

// StringPtr converts a string to a pointer to a string.
func StringPtr(s string) *string {
	return &s
}

// StringValue safely dereferences a string pointer, returning empty string if nil.
func StringValue(s *string) string {
	return Value(s)
}

// BoolPtr converts a bool to a pointer to a bool.
func BoolPtr(b bool) *bool {
	return &b
}

// Int64Ptr converts an int64 to a pointer to an int64. Platform identifiers
// are int64.
func Int64Ptr(i int64) *int64 {
	return &i
}

// IntPtr converts an int to a pointer to an int.
func IntPtr(i int) *int {
	return &i
}

// TimePtr converts a time.Time to a pointer to a time.Time.
func TimePtr(t time.Time) *time.Time {
	return &t
}
