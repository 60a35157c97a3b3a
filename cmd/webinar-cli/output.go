// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/query"
)

// writeOutput prints v as indented JSON, or each jq result on its own line.
func writeOutput(w io.Writer, v any, filter *query.Filter) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if filter == nil {
		return enc.Encode(v)
	}

	values, err := filter.Apply(v)
	if err != nil {
		return err
	}
	for _, value := range values {
		if s, ok := value.(string); ok {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
			continue
		}
		if err := enc.Encode(value); err != nil {
			return err
		}
	}
	return nil
}
