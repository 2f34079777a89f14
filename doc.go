/*
Package uxfetch downloads Unity Experiment Framework (UXF) experiment data
from AWS DynamoDB and writes it to local CSV files.

UXF's AWS integration stores each experiment's data in per-experiment tables
named "<prefix>.<experiment>.<table>", e.g. "UXFData.MyStudy.TrialResults".
uxfetch scans those tables page by page, unpacks the nested per-trial lists
some tables carry, and writes one tab-separated CSV file per table.

Basic Usage:

	store, _ := ddb.New(ctx, ddb.Config{Region: "eu-west-1"})
	sink, _ := export.NewCSVWriter("MyStudy", false)
	query := records.ExperimentQuery{Experiment: "MyStudy"}
	err := fetcher.New(store, logger).Fetch(ctx, query, sink)

The cmd/uxfetch command wraps this in a CLI:

	uxfetch -r eu-west-1 MyStudy

For more information, see the documentation at https://github.com/suparena/uxfetch
*/
package uxfetch
