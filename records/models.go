/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package records

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var errEmptyExperiment = errors.New("experiment name must not be empty")

// Record is one retrieved row, keyed by attribute name. Values are the
// decoded forms produced by attributevalue: string, float64, bool, []byte,
// []interface{} or nested maps.
type Record map[string]interface{}

// FromItem decodes a raw DynamoDB item into a Record.
func FromItem(item map[string]types.AttributeValue) (Record, error) {
	var rec Record
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ScanParams defines parameters for one page of a DynamoDB Scan operation.
type ScanParams struct {
	// TableName is the DynamoDB table name.
	TableName string
	// Limit defines an optional limit per scan page.
	Limit *int32
	// ExclusiveStartKey resumes a truncated scan from the previous page's cursor.
	ExclusiveStartKey map[string]types.AttributeValue
}

// ScanPage is one page of scan results together with the continuation cursor.
// A nil/empty LastEvaluatedKey means the scan is exhausted.
type ScanPage struct {
	Items            []map[string]types.AttributeValue
	LastEvaluatedKey map[string]types.AttributeValue
}

// ExperimentQuery identifies the experiment to download and which of its
// tables to fetch. Constructed once from CLI input, then immutable.
type ExperimentQuery struct {
	// Experiment is the UXF experiment name used to locate its tables.
	Experiment string
	// TablePrefix is the table name prefix, "UXFData" by default.
	TablePrefix string
	// ParticipantsOnly restricts the fetch to the participant details table.
	ParticipantsOnly bool
	// IncludeTrackers additionally fetches the (typically much larger) tracker table.
	IncludeTrackers bool
}

// Validate reports whether the query is well-formed.
func (q ExperimentQuery) Validate() error {
	if strings.TrimSpace(q.Experiment) == "" {
		return errEmptyExperiment
	}
	return nil
}
