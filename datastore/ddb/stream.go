/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/uxfetch/records"
)

// Stream performs a paginated scan of the named table and emits rows through
// a buffered channel so consumers can process them incrementally.
func (s *Store) Stream(ctx context.Context, tableName string, opts ...records.StreamOption) <-chan records.StreamResult {
	// Apply options
	options := records.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	// Create buffered result channel
	resultCh := make(chan records.StreamResult, options.BufferSize)

	// Start streaming in background
	go s.streamWorker(ctx, tableName, options, resultCh)

	return resultCh
}

// streamWorker handles the actual pagination loop
func (s *Store) streamWorker(
	ctx context.Context,
	tableName string,
	options records.StreamOptions,
	resultCh chan<- records.StreamResult,
) {
	defer close(resultCh)

	// Initialize progress tracking
	var itemIndex int64
	var pageNumber int
	startTime := time.Now()

	// Progress reporting helper
	reportProgress := func(lastKey map[string]types.AttributeValue) {
		if options.ProgressHandler != nil {
			progress := records.StreamProgress{
				ItemsProcessed: itemIndex,
				PagesProcessed: pageNumber,
				LastKey:        lastKey,
				StartTime:      startTime,
			}

			// Calculate rate
			elapsed := time.Since(startTime).Seconds()
			if elapsed > 0 {
				progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
			}

			options.ProgressHandler(progress)
		}
	}

	params := &records.ScanParams{TableName: tableName}
	if options.PageSize > 0 {
		params.Limit = aws.Int32(options.PageSize)
	}

	for {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return
		default:
		}

		page, err := s.Scan(ctx, params)
		if err != nil {
			// Transient failures are not retried; the error surfaces to the
			// consumer through the channel and the stream ends.
			result := records.StreamResult{
				Error: err,
				Meta: records.StreamMeta{
					Index:      itemIndex,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			select {
			case <-ctx.Done():
			case resultCh <- result:
			}
			return
		}

		pageNumber++

		// Process items in current page
		for _, item := range page.Items {
			result := processItem(item, itemIndex, pageNumber)
			itemIndex++

			// Send result
			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
		}

		// Report progress after each page
		reportProgress(page.LastEvaluatedKey)

		// Check for more pages
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		params.ExclusiveStartKey = page.LastEvaluatedKey
	}
}

// processItem converts a raw DynamoDB item to a decoded result
func processItem(
	item map[string]types.AttributeValue,
	index int64,
	pageNumber int,
) records.StreamResult {
	meta := records.StreamMeta{
		Index:      index,
		PageNumber: pageNumber,
		Timestamp:  time.Now(),
	}

	// Make a copy of the raw item
	rawCopy := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		rawCopy[k] = v
	}

	rec, err := records.FromItem(item)
	if err != nil {
		return records.StreamResult{
			Error: fmt.Errorf("failed to decode item: %w", err),
			Raw:   rawCopy,
			Meta:  meta,
		}
	}

	return records.StreamResult{
		Record: rec,
		Raw:    rawCopy,
		Meta:   meta,
	}
}
