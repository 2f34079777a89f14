/*
Package datastore defines the interface uxfetch uses to read remote tables.

The main interface is TableScanner:

	type TableScanner interface {
	    Scan(ctx context.Context, params *records.ScanParams) (*records.ScanPage, error)
	    Stream(ctx context.Context, tableName string, opts ...records.StreamOption) <-chan records.StreamResult
	}

Implementations:
  - ddb: DynamoDB implementation backed by the AWS SDK
  - mock: In-memory mock implementation for testing
*/
package datastore
