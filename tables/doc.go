/*
Package tables names the per-experiment DynamoDB tables UXF writes and
how their rows are unpacked for output.

UXF stores each experiment's data in tables named

	<prefix>.<experiment>.<kind>

for example "UXFData.MyStudy.TrialResults". The standard kinds exist for
every experiment; the Trackers table only exists when position/rotation
tracking was enabled and is typically much larger than the rest.

The unpack registry associates each kind with the key columns that are
held fixed while nested list attributes are exploded into rows. It is
populated at init time and is thread-safe.
*/
package tables
