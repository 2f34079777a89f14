/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/suparena/uxfetch/records"
	"github.com/suparena/uxfetch/tables"
)

// CSVWriter writes one tab-separated CSV file per fetched table, optionally
// nested under a per-experiment subfolder, and records a manifest of what
// was written.
type CSVWriter struct {
	experiment string
	dir        string
	log        *zap.Logger
	now        func() time.Time
	echo       io.Writer
	summaries  []TableSummary
}

// Option configures a CSVWriter.
type Option func(*CSVWriter)

// WithBaseDir sets the directory output files are written to (default ".").
func WithBaseDir(dir string) Option {
	return func(w *CSVWriter) {
		w.dir = dir
	}
}

// WithLogger sets the logger used for progress and skip messages.
func WithLogger(log *zap.Logger) Option {
	return func(w *CSVWriter) {
		w.log = log
	}
}

// WithClock overrides the clock used for file name timestamps. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(w *CSVWriter) {
		w.now = now
	}
}

// WithEcho additionally prints each written table to the given writer as an
// aligned text listing. Participants-only runs echo the details to the
// terminal as well as saving them.
func WithEcho(out io.Writer) Option {
	return func(w *CSVWriter) {
		w.echo = out
	}
}

// NewCSVWriter creates a writer for one experiment. When subfolder is true,
// output files land under "<dir>/<experiment>/" (created if absent).
func NewCSVWriter(experiment string, subfolder bool, opts ...Option) (*CSVWriter, error) {
	w := &CSVWriter{
		experiment: experiment,
		dir:        ".",
		log:        zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	if subfolder {
		w.dir = filepath.Join(w.dir, experiment)
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", w.dir, err)
	}
	return w, nil
}

// Dir returns the resolved output directory.
func (w *CSVWriter) Dir() string {
	return w.dir
}

// WriteTable consumes the record stream for one table and writes it to a CSV
// file. Zero-row tables produce no file. The row count written is returned.
func (w *CSVWriter) WriteTable(ctx context.Context, kind tables.Kind, results <-chan records.StreamResult) (int, error) {
	var rows []records.Record
	for res := range results {
		if res.Error != nil {
			return 0, res.Error
		}
		rows = append(rows, res.Record)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fileName := w.fileName(kind)
	if len(rows) == 0 {
		w.log.Info("no data, skipping", zap.String("file", fileName))
		return 0, nil
	}

	spec, _ := tables.UnpackSpecFor(kind)
	rows = Explode(rows, spec)
	header := headerFor(rows, spec)

	path := filepath.Join(w.dir, fileName)
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	cw.Comma = '\t'

	var tw *tabwriter.Writer
	if w.echo != nil {
		tw = tabwriter.NewWriter(w.echo, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(header, "	"))
	}

	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write header to %q: %w", path, err)
	}
	for _, row := range rows {
		cells := make([]string, len(header))
		for i, col := range header {
			cells[i] = formatValue(row[col])
		}
		if err := cw.Write(cells); err != nil {
			return 0, fmt.Errorf("failed to write row to %q: %w", path, err)
		}
		if tw != nil {
			fmt.Fprintln(tw, strings.Join(cells, "	"))
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush %q: %w", path, err)
	}
	if tw != nil {
		_ = tw.Flush()
	}

	w.log.Info("table written", zap.String("file", fileName), zap.Int("rows", len(rows)))
	w.summaries = append(w.summaries, TableSummary{
		Table: string(kind),
		File:  fileName,
		Rows:  len(rows),
	})
	return len(rows), nil
}

// fileName builds the per-table CSV file name, including a timestamp so
// repeated downloads do not clobber earlier ones.
func (w *CSVWriter) fileName(kind tables.Kind) string {
	return fmt.Sprintf("%s_%s_%s.csv", w.experiment, kind, w.now().Format("20060102_1504"))
}

// headerFor computes the output column order: the table's key columns first,
// then the remaining attributes sorted by name.
func headerFor(rows []records.Record, spec tables.UnpackSpec) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			seen[col] = true
		}
	}

	var header []string
	for _, key := range spec.KeyColumns {
		if seen[key] {
			header = append(header, key)
			delete(seen, key)
		}
	}
	rest := make([]string, 0, len(seen))
	for col := range seen {
		rest = append(rest, col)
	}
	sort.Strings(rest)
	return append(header, rest...)
}
