/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tables

import "fmt"

// Kind names one UXF table within an experiment.
type Kind string

// The tables UXF writes for every experiment, plus the optional tracker table.
const (
	KindParticipantDetails Kind = "ParticipantDetails"
	KindTrialResults       Kind = "TrialResults"
	KindSettings           Kind = "Settings"
	KindSessionLog         Kind = "SessionLog"
	KindSummaryStatistics  Kind = "SummaryStatistics"
	KindTrackers           Kind = "Trackers"
)

// DefaultPrefix is the table name prefix UXF uses unless configured otherwise.
const DefaultPrefix = "UXFData"

// Standard returns the table kinds fetched for a full (non-tracker) download,
// in fetch order.
func Standard() []Kind {
	return []Kind{
		KindParticipantDetails,
		KindTrialResults,
		KindSettings,
		KindSessionLog,
		KindSummaryStatistics,
	}
}

// Name builds the remote table name for an experiment's table,
// e.g. "UXFData.MyStudy.TrialResults".
func Name(prefix, experiment string, kind Kind) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s.%s.%s", prefix, experiment, kind)
}
