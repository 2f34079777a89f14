/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/uxfetch/records"
)

// Scan retrieves a single page of the named table. The returned page carries
// the LastEvaluatedKey cursor when the scan is truncated; callers feed it back
// in as ExclusiveStartKey to continue.
func (s *Store) Scan(ctx context.Context, params *records.ScanParams) (*records.ScanPage, error) {
	input := &dynamodb.ScanInput{
		TableName: &params.TableName,
		Limit:     params.Limit,
	}
	if len(params.ExclusiveStartKey) > 0 {
		input.ExclusiveStartKey = params.ExclusiveStartKey
	}

	out, err := s.client.Scan(ctx, input)
	if err != nil {
		return nil, classify("scan", params.TableName, err)
	}

	return &records.ScanPage{
		Items:            out.Items,
		LastEvaluatedKey: out.LastEvaluatedKey,
	}, nil
}
