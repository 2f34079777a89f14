/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package export

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/suparena/uxfetch/records"
	"github.com/suparena/uxfetch/tables"
)

// Explode unpacks nested list attributes into one row per element. UXF writes
// some tables as one row per session with parallel item lists per trial; each
// list attribute contributes its i-th element to the i-th output row while
// key columns and scalar attributes are repeated.
func Explode(rows []records.Record, spec tables.UnpackSpec) []records.Record {
	keySet := make(map[string]bool, len(spec.KeyColumns))
	for _, k := range spec.KeyColumns {
		keySet[k] = true
	}

	var out []records.Record
	for _, row := range rows {
		n := 1
		for col, val := range row {
			if keySet[col] {
				continue
			}
			if list, ok := val.([]interface{}); ok && len(list) > n {
				n = len(list)
			}
		}

		for i := 0; i < n; i++ {
			exploded := make(records.Record, len(row))
			for col, val := range row {
				if list, ok := val.([]interface{}); ok && !keySet[col] {
					if i < len(list) {
						exploded[col] = list[i]
					} else {
						exploded[col] = nil
					}
					continue
				}
				exploded[col] = val
			}
			out = append(out, exploded)
		}
	}
	return out
}

// formatValue renders a decoded attribute value as a CSV cell. DynamoDB
// numbers decode to float64; they are written without a forced exponent.
func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []byte:
		return base64.StdEncoding.EncodeToString(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
