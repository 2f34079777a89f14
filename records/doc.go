/*
Package records defines the data structures used throughout uxfetch.

Key Types:

ExperimentQuery:
The immutable description of one download run:

	q := records.ExperimentQuery{
	    Experiment:      "MyStudy",
	    TablePrefix:     "UXFData",
	    IncludeTrackers: true,
	}

ScanParams / ScanPage:
Parameters and results for one page of a table scan:

	page, err := scanner.Scan(ctx, &records.ScanParams{
	    TableName: "UXFData.MyStudy.TrialResults",
	})
	// page.LastEvaluatedKey drives the next request until absent

StreamResult:
Results from streaming operations with metadata:

	type StreamResult struct {
	    Record Record                          // The decoded row
	    Raw    map[string]types.AttributeValue // Raw DynamoDB attributes
	    Error  error                           // Item- or page-level error, if any
	    Meta   StreamMeta                      // Metadata about this item
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent interface across storage implementations.
*/
package records
