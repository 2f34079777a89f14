/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	assert.Equal(t, "UXFData.MyStudy.TrialResults", Name("UXFData", "MyStudy", KindTrialResults))
	assert.Equal(t, "Lab.MyStudy.Trackers", Name("Lab", "MyStudy", KindTrackers))

	// Empty prefix falls back to the UXF default
	assert.Equal(t, "UXFData.E1.Settings", Name("", "E1", KindSettings))
}

func TestStandardExcludesTrackers(t *testing.T) {
	for _, k := range Standard() {
		assert.NotEqual(t, KindTrackers, k)
	}
	assert.Len(t, Standard(), 5)
	assert.Equal(t, KindParticipantDetails, Standard()[0])
}

func TestUnpackSpecFor(t *testing.T) {
	spec, ok := UnpackSpecFor(KindTrialResults)
	require.True(t, ok)
	assert.Equal(t, []string{"ppid_session_dataname"}, spec.KeyColumns)

	spec, ok = UnpackSpecFor(KindTrackers)
	require.True(t, ok)
	assert.Equal(t, []string{"ppid_session_dataname", "trial_num"}, spec.KeyColumns)

	_, ok = UnpackSpecFor(Kind("Bogus"))
	assert.False(t, ok)
}

func TestRegisterUnpackSpecDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		RegisterUnpackSpec(KindSettings, UnpackSpec{})
	})
}
