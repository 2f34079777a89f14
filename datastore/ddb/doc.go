/*
Package ddb provides the DynamoDB implementation of the TableScanner interface.

The Store supports:
  - Credential resolution with explicit > profile > ambient precedence
  - Full-table scans paginated over LastEvaluatedKey
  - Lazy streaming of rows through a buffered channel
  - Classification of AWS errors into the uxfetch error taxonomy

Streaming:
The streaming API supports configurable options:

	results := store.Stream(ctx, "UXFData.MyStudy.TrialResults",
	    records.WithBufferSize(100),
	    records.WithPageSize(25),
	    records.WithProgressHandler(func(p records.StreamProgress) {
	        log.Printf("Processed %d items", p.ItemsProcessed)
	    }),
	)

For usage examples, see the integration tests and documentation.
*/
package ddb
