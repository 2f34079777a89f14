/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fetcher

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/suparena/uxfetch/datastore/mock"
	uxferrors "github.com/suparena/uxfetch/errors"
	"github.com/suparena/uxfetch/records"
	"github.com/suparena/uxfetch/tables"
)

// captureSink records everything the fetcher hands it.
type captureSink struct {
	rows     map[tables.Kind][]records.Record
	order    []tables.Kind
	finished bool
}

func newCaptureSink() *captureSink {
	return &captureSink{rows: make(map[tables.Kind][]records.Record)}
}

func (s *captureSink) WriteTable(ctx context.Context, kind tables.Kind, results <-chan records.StreamResult) (int, error) {
	s.order = append(s.order, kind)
	n := 0
	for res := range results {
		if res.Error != nil {
			return n, res.Error
		}
		s.rows[kind] = append(s.rows[kind], res.Record)
		n++
	}
	return n, nil
}

func (s *captureSink) Finish(ctx context.Context) error {
	s.finished = true
	return nil
}

func page(ppids ...string) []map[string]types.AttributeValue {
	items := make([]map[string]types.AttributeValue, 0, len(ppids))
	for _, p := range ppids {
		items = append(items, map[string]types.AttributeValue{
			"ppid_session_dataname": &types.AttributeValueMemberS{Value: p},
		})
	}
	return items
}

// seedStandard seeds all five standard tables for experiment E1.
func seedStandard(scanner *mock.Scanner) {
	for _, kind := range tables.Standard() {
		scanner.WithTable(tables.Name("", "E1", kind), page("P1_1_"+string(kind)))
	}
}

func query() records.ExperimentQuery {
	return records.ExperimentQuery{Experiment: "E1"}
}

func TestFetchStandardTables(t *testing.T) {
	scanner := mock.New()
	seedStandard(scanner)
	sink := newCaptureSink()

	err := New(scanner, zap.NewNop()).Fetch(context.Background(), query(), sink)
	require.NoError(t, err)

	assert.Equal(t, tables.Standard(), sink.order)
	assert.True(t, sink.finished)
	require.Len(t, sink.rows[tables.KindTrialResults], 1)
	assert.Equal(t, "P1_1_TrialResults", sink.rows[tables.KindTrialResults][0]["ppid_session_dataname"])
}

func TestParticipantsOnlySkipsEverythingElse(t *testing.T) {
	scanner := mock.New()
	seedStandard(scanner)
	scanner.WithTable("UXFData.E1.Trackers", page("P1_1_head"))
	sink := newCaptureSink()

	q := query()
	q.ParticipantsOnly = true
	q.IncludeTrackers = true // must be ignored in participants-only mode

	err := New(scanner, zap.NewNop()).Fetch(context.Background(), q, sink)
	require.NoError(t, err)

	assert.Equal(t, []tables.Kind{tables.KindParticipantDetails}, sink.order)
	for _, scanned := range scanner.ScannedTables() {
		assert.Equal(t, "UXFData.E1.ParticipantDetails", scanned)
	}
}

func TestIncludeTrackersAppendsTrackerTable(t *testing.T) {
	scanner := mock.New()
	seedStandard(scanner)
	scanner.WithTable("UXFData.E1.Trackers", page("P1_1_head", "P1_2_head"))
	sink := newCaptureSink()

	q := query()
	q.IncludeTrackers = true

	err := New(scanner, zap.NewNop()).Fetch(context.Background(), q, sink)
	require.NoError(t, err)

	assert.Equal(t, append(tables.Standard(), tables.KindTrackers), sink.order)
	assert.Len(t, sink.rows[tables.KindTrackers], 2)
}

func TestTrackersNotFetchedByDefault(t *testing.T) {
	scanner := mock.New()
	seedStandard(scanner)
	scanner.WithTable("UXFData.E1.Trackers", page("P1_1_head"))
	sink := newCaptureSink()

	err := New(scanner, zap.NewNop()).Fetch(context.Background(), query(), sink)
	require.NoError(t, err)

	assert.NotContains(t, scanner.ScannedTables(), "UXFData.E1.Trackers")
}

func TestMissingTableIsSkipped(t *testing.T) {
	scanner := mock.New()
	seedStandard(scanner)
	// SessionLog table was never created for this deployment
	scanner.WithError("UXFData.E1.SessionLog", uxferrors.NewNotFoundError("", "UXFData.E1.SessionLog"))
	sink := newCaptureSink()

	err := New(scanner, zap.NewNop()).Fetch(context.Background(), query(), sink)
	require.NoError(t, err)

	assert.True(t, sink.finished)
	assert.Empty(t, sink.rows[tables.KindSessionLog])
	assert.Len(t, sink.rows[tables.KindSummaryStatistics], 1)
}

func TestUnknownExperimentReportsNotFound(t *testing.T) {
	// No tables seeded at all: every scan reports not found, so the run must
	// fail rather than succeed with empty output.
	scanner := mock.New()
	sink := newCaptureSink()

	err := New(scanner, zap.NewNop()).Fetch(context.Background(), query(), sink)
	require.Error(t, err)
	assert.True(t, uxferrors.IsNotFound(err))
	assert.False(t, sink.finished)
}

func TestAllTablesEmptyReportsNotFound(t *testing.T) {
	scanner := mock.New()
	for _, kind := range tables.Standard() {
		scanner.WithTable(tables.Name("", "E1", kind), page())
	}
	sink := newCaptureSink()

	err := New(scanner, zap.NewNop()).Fetch(context.Background(), query(), sink)
	assert.True(t, uxferrors.IsNotFound(err))
	assert.False(t, sink.finished)
}

func TestAuthenticationFailureAborts(t *testing.T) {
	scanner := mock.New()
	seedStandard(scanner)
	scanner.WithError("UXFData.E1.ParticipantDetails",
		uxferrors.NewAuthenticationError("scan", assert.AnError))
	sink := newCaptureSink()

	err := New(scanner, zap.NewNop()).Fetch(context.Background(), query(), sink)
	require.Error(t, err)
	assert.True(t, uxferrors.IsAuthentication(err))

	// The run stops at the first hard failure
	assert.Equal(t, []string{"UXFData.E1.ParticipantDetails"}, scanner.ScannedTables())
	assert.False(t, sink.finished)
}

func TestEmptyExperimentNameIsUsageError(t *testing.T) {
	err := New(mock.New(), nil).Fetch(context.Background(), records.ExperimentQuery{}, newCaptureSink())
	assert.True(t, uxferrors.IsUsage(err))
}

func TestCustomTablePrefix(t *testing.T) {
	scanner := mock.New()
	for _, kind := range tables.Standard() {
		scanner.WithTable(tables.Name("LabData", "E1", kind), page("P1_1_"+string(kind)))
	}
	sink := newCaptureSink()

	q := query()
	q.TablePrefix = "LabData"

	err := New(scanner, zap.NewNop()).Fetch(context.Background(), q, sink)
	require.NoError(t, err)
	assert.Contains(t, scanner.ScannedTables(), "LabData.E1.TrialResults")
}
