// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package query applies jq expressions to command output.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Filter is a compiled jq expression.
type Filter struct {
	expression string
	code       *gojq.Code
}

// Compile parses and compiles a jq expression.
func Compile(expression string) (*Filter, error) {
	q, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return &Filter{expression: expression, code: code}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}

// Apply runs the filter over v, which is first converted to its JSON form
// so that typed records are addressed by their JSON field names.
func (f *Filter) Apply(v any) ([]any, error) {
	input, err := toGeneric(v)
	if err != nil {
		return nil, err
	}

	values := make([]any, 0)
	iter := f.code.Run(input)
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := out.(error); isErr {
			var haltErr *gojq.HaltError
			if errors.As(err, &haltErr) && haltErr.Value() == nil {
				break
			}
			return nil, fmt.Errorf("jq %s: %s", f.expression, withHint(err))
		}
		values = append(values, out)
	}
	return values, nil
}

func toGeneric(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value for jq: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode value for jq: %w", err)
	}
	return out, nil
}

func withHint(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "cannot iterate over: null"):
		return msg + " (the path may not exist in this response)"
	case strings.Contains(msg, "cannot index") && strings.Contains(msg, "with"):
		return msg + " (field not found or wrong type)"
	}
	return msg
}
