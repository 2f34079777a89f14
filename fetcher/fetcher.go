/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fetcher

import (
	"context"

	"go.uber.org/zap"

	"github.com/suparena/uxfetch/datastore"
	uxferrors "github.com/suparena/uxfetch/errors"
	"github.com/suparena/uxfetch/records"
	"github.com/suparena/uxfetch/tables"
)

// Sink consumes the record sequence of each fetched table. Implementations
// must consume the stream incrementally; records are not materialized on the
// fetcher side.
type Sink interface {
	// WriteTable drains one table's record stream and reports how many rows
	// it wrote. A stream error is returned as-is.
	WriteTable(ctx context.Context, kind tables.Kind, results <-chan records.StreamResult) (int, error)

	// Finish is called once after all tables were written successfully.
	Finish(ctx context.Context) error
}

// Fetcher retrieves all tables of one UXF experiment and feeds them to a Sink.
type Fetcher struct {
	scanner datastore.TableScanner
	log     *zap.Logger
}

// New constructs a Fetcher. A nil logger disables logging.
func New(scanner datastore.TableScanner, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{scanner: scanner, log: log}
}

// Fetch downloads every table the query selects, streaming each table's rows
// into the sink. Individual missing tables are skipped, matching how UXF
// deployments omit tables for unused features; if no table yields any record
// the run fails with a not-found error so a mistyped experiment name is
// reported rather than producing empty output.
func (f *Fetcher) Fetch(ctx context.Context, q records.ExperimentQuery, sink Sink, opts ...records.StreamOption) error {
	if err := q.Validate(); err != nil {
		return uxferrors.NewUsageError("%v", err)
	}

	total := 0
	for _, kind := range kindsFor(q) {
		if kind == tables.KindTrackers {
			f.log.Warn("tracker table may transfer a significant data volume",
				zap.String("experiment", q.Experiment))
		}

		name := tables.Name(q.TablePrefix, q.Experiment, kind)
		f.log.Info("retrieving table", zap.String("table", name))

		rows, err := sink.WriteTable(ctx, kind, f.scanner.Stream(ctx, name, opts...))
		if err != nil {
			if uxferrors.IsNotFound(err) {
				f.log.Info("table not found, skipping", zap.String("table", name))
				continue
			}
			return err
		}
		total += rows
	}

	if total == 0 {
		return uxferrors.NewNotFoundError(q.Experiment, "")
	}
	return sink.Finish(ctx)
}

// kindsFor selects the tables one query fetches. ParticipantsOnly restricts
// the run to participant details and always excludes the tracker table.
func kindsFor(q records.ExperimentQuery) []tables.Kind {
	if q.ParticipantsOnly {
		return []tables.Kind{tables.KindParticipantDetails}
	}
	kinds := tables.Standard()
	if q.IncludeTrackers {
		kinds = append(kinds, tables.KindTrackers)
	}
	return kinds
}
