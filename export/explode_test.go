/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/uxfetch/records"
	"github.com/suparena/uxfetch/tables"
)

var sessionSpec = tables.UnpackSpec{KeyColumns: []string{"ppid_session_dataname"}}

func TestExplodeUnpacksParallelLists(t *testing.T) {
	rows := []records.Record{
		{
			"ppid_session_dataname": "P1_1_trial_results",
			"trial_num":             []interface{}{float64(1), float64(2), float64(3)},
			"response":              []interface{}{"left", "right", "left"},
			"experiment":            "E1",
		},
	}

	out := Explode(rows, sessionSpec)
	require.Len(t, out, 3)

	assert.Equal(t, float64(2), out[1]["trial_num"])
	assert.Equal(t, "right", out[1]["response"])

	// Key columns and scalars repeat on every exploded row
	for _, row := range out {
		assert.Equal(t, "P1_1_trial_results", row["ppid_session_dataname"])
		assert.Equal(t, "E1", row["experiment"])
	}
}

func TestExplodeLeavesScalarRowsAlone(t *testing.T) {
	rows := []records.Record{
		{"ppid_session_dataname": "P1_1_details", "age": float64(31)},
		{"ppid_session_dataname": "P2_1_details", "age": float64(27)},
	}

	out := Explode(rows, sessionSpec)
	assert.Equal(t, rows, out)
}

func TestExplodePadsShortLists(t *testing.T) {
	rows := []records.Record{
		{
			"ppid_session_dataname": "P1_1_log",
			"message":               []interface{}{"a", "b", "c"},
			"level":                 []interface{}{"info"},
		},
	}

	out := Explode(rows, sessionSpec)
	require.Len(t, out, 3)
	assert.Equal(t, "info", out[0]["level"])
	assert.Nil(t, out[1]["level"])
	assert.Nil(t, out[2]["level"])
}

func TestExplodeKeepsListValuedKeyColumns(t *testing.T) {
	// Tracker rows key on trial_num as well; a list under a key column must
	// not be exploded even if other columns are.
	spec := tables.UnpackSpec{KeyColumns: []string{"ppid_session_dataname", "trial_num"}}
	rows := []records.Record{
		{
			"ppid_session_dataname": "P1_1_head",
			"trial_num":             float64(4),
			"pos_x":                 []interface{}{float64(0.1), float64(0.2)},
		},
	}

	out := Explode(rows, spec)
	require.Len(t, out, 2)
	assert.Equal(t, float64(4), out[0]["trial_num"])
	assert.Equal(t, float64(4), out[1]["trial_num"])
	assert.Equal(t, float64(0.2), out[1]["pos_x"])
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "left", formatValue("left"))
	assert.Equal(t, "true", formatValue(true))
	assert.Equal(t, "3.5", formatValue(3.5))
	assert.Equal(t, "42", formatValue(float64(42)))
	assert.Equal(t, "aGk=", formatValue([]byte("hi")))
}
