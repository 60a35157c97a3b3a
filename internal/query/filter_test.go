// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/utils"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

func TestFilter_TypedRecords(t *testing.T) {
	events := []webinar.Event{
		{ID: utils.Ptr(int64(1)), Name: utils.Ptr("Kickoff")},
		{ID: utils.Ptr(int64(2)), Name: utils.Ptr("Retro")},
	}

	f, err := Compile(".[].name")
	require.NoError(t, err)
	assert.Equal(t, ".[].name", f.String())

	values, err := f.Apply(events)
	require.NoError(t, err)
	assert.Equal(t, []any{"Kickoff", "Retro"}, values)
}

func TestFilter_Select(t *testing.T) {
	f, err := Compile(`.[] | select(.id > 1) | .id`)
	require.NoError(t, err)

	values, err := f.Apply([]map[string]int{{"id": 1}, {"id": 2}, {"id": 3}})
	require.NoError(t, err)
	assert.Equal(t, []any{float64(2), float64(3)}, values)
}

func TestFilter_EmptyResult(t *testing.T) {
	f, err := Compile(".[]")
	require.NoError(t, err)

	values, err := f.Apply([]int{})
	require.NoError(t, err)
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestFilter_Errors(t *testing.T) {
	_, err := Compile(".name[")
	assert.Error(t, err)

	_, err = Compile("$undefined")
	assert.Error(t, err)

	f, err := Compile(".items[]")
	require.NoError(t, err)
	_, err = f.Apply(map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path may not exist")

	_, err = f.Apply(func() {})
	assert.Error(t, err)
}
