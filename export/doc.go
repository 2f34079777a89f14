/*
Package export writes fetched experiment records to local files.

The CSVWriter consumes the lazy record sequence a table scan produces and
writes one tab-separated CSV file per table, named

	<experiment>_<table>_<timestamp>.csv

optionally nested under a per-experiment subfolder. Tables whose rows carry
nested item lists are exploded into one row per element before writing, using
the key columns the tables package registers for each kind. A manifest.yaml
summarizing the run is written alongside the CSVs.

Zero-row tables are skipped rather than producing empty files.
*/
package export
