/*
Package fetcher orchestrates one experiment download.

Given an ExperimentQuery, the Fetcher resolves the set of remote tables to
read, streams each table's rows through the TableScanner, and hands the lazy
record sequence to a Sink for output. Each run is one-shot and synchronous:
tables are fetched in order, one blocking page request at a time.
*/
package fetcher
