/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/uxfetch/records"
)

// TableScanner reads full tables from the remote store, one page at a time.
type TableScanner interface {
	// Scan retrieves a single page of results. Callers drive pagination by
	// feeding ScanPage.LastEvaluatedKey back in as ExclusiveStartKey until
	// no cursor is returned.
	Scan(ctx context.Context, params *records.ScanParams) (*records.ScanPage, error)

	// Stream scans the whole table and emits its rows as a lazy, finite,
	// non-restartable sequence. The channel is closed when the table is
	// exhausted or after the first page-level error.
	Stream(ctx context.Context, tableName string, opts ...records.StreamOption) <-chan records.StreamResult
}
