/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the TableScanner interface for testing
package mock

import (
	"context"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	uxferrors "github.com/suparena/uxfetch/errors"
	"github.com/suparena/uxfetch/records"
)

// Scanner is a mock implementation of datastore.TableScanner for testing.
// Tables are seeded with pages of raw items; unknown tables behave like
// missing DynamoDB tables and report a not-found error.
type Scanner struct {
	mu      sync.RWMutex
	tables  map[string][][]map[string]types.AttributeValue
	errs    map[string]error
	scanned []string
}

// New creates a new mock Scanner
func New() *Scanner {
	return &Scanner{
		tables: make(map[string][][]map[string]types.AttributeValue),
		errs:   make(map[string]error),
	}
}

// WithTable seeds a table with pages of items
func (m *Scanner) WithTable(name string, pages ...[]map[string]types.AttributeValue) *Scanner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[name] = pages
	return m
}

// WithError makes scans of the named table fail with err
func (m *Scanner) WithError(name string, err error) *Scanner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[name] = err
	return m
}

// ScannedTables returns the table names scanned so far, in request order
func (m *Scanner) ScannedTables() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.scanned))
	copy(out, m.scanned)
	return out
}

// Scan serves one seeded page per call, emulating DynamoDB's cursor protocol
// with a synthetic page-index key.
func (m *Scanner) Scan(ctx context.Context, params *records.ScanParams) (*records.ScanPage, error) {
	m.mu.Lock()
	m.scanned = append(m.scanned, params.TableName)
	err := m.errs[params.TableName]
	pages, ok := m.tables[params.TableName]
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, uxferrors.NewNotFoundError("", params.TableName)
	}

	idx := 0
	if len(params.ExclusiveStartKey) > 0 {
		if n, okN := params.ExclusiveStartKey["page"].(*types.AttributeValueMemberN); okN {
			idx, _ = strconv.Atoi(n.Value)
		}
	}
	if idx >= len(pages) {
		return &records.ScanPage{}, nil
	}

	page := &records.ScanPage{Items: pages[idx]}
	if idx+1 < len(pages) {
		page.LastEvaluatedKey = map[string]types.AttributeValue{
			"page": &types.AttributeValueMemberN{Value: strconv.Itoa(idx + 1)},
		}
	}
	return page, nil
}

// Stream replays the seeded pages through a channel, mirroring the lazy
// sequence the real store produces.
func (m *Scanner) Stream(ctx context.Context, tableName string, opts ...records.StreamOption) <-chan records.StreamResult {
	options := records.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan records.StreamResult, options.BufferSize)
	go func() {
		defer close(resultCh)

		var index int64
		pageNumber := 0
		params := &records.ScanParams{TableName: tableName}
		for {
			page, err := m.Scan(ctx, params)
			if err != nil {
				select {
				case <-ctx.Done():
				case resultCh <- records.StreamResult{Error: err}:
				}
				return
			}
			pageNumber++
			for _, item := range page.Items {
				rec, decErr := records.FromItem(item)
				result := records.StreamResult{
					Record: rec,
					Raw:    item,
					Error:  decErr,
					Meta:   records.StreamMeta{Index: index, PageNumber: pageNumber},
				}
				index++
				select {
				case <-ctx.Done():
					return
				case resultCh <- result:
				}
			}
			if len(page.LastEvaluatedKey) == 0 {
				return
			}
			params.ExclusiveStartKey = page.LastEvaluatedKey
		}
	}()
	return resultCh
}

