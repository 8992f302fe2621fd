package geomerge

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"unicode/utf8"
)

// Format is the detected content type of an uploaded document.
type Format string

const (
	FormatGeoJSON Format = "geojson"
	FormatCSV     Format = "csv"
	FormatUnknown Format = "unknown"
)

// DetectFormat classifies raw file content as GeoJSON, CSV or unknown.
// It never fails: a parse error simply moves on to the next candidate
// format. The input is a byte slice, so the caller can re-read its own
// stream from the start afterwards.
func DetectFormat(data []byte) Format {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err == nil {
		if obj, ok := doc.(map[string]interface{}); ok {
			_, hasType := obj["type"]
			_, hasFeatures := obj["features"]
			if hasType && hasFeatures {
				return FormatGeoJSON
			}
		}
	}

	if utf8.Valid(data) {
		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		header, err := r.Read()
		if err == nil && len(header) > 0 {
			return FormatCSV
		}
	}

	return FormatUnknown
}
