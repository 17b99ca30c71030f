// Package output renders comparison and sort reports.
package output

import "encoding/json"

// ToJSON serializes a report to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
