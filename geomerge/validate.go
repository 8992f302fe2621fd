package geomerge

import "encoding/json"

// ValidateGeoJSON checks the structural conformance of a parsed GeoJSON
// document. Raw []byte or string input is decoded first. The returned
// message is suitable for direct display, rules are checked in order and
// the first failure wins. Individual feature geometries are not validated
// here, malformed geometries surface later during combination.
func ValidateGeoJSON(doc interface{}) (bool, string) {
	switch d := doc.(type) {
	case []byte:
		var parsed interface{}
		if err := json.Unmarshal(d, &parsed); err != nil {
			return false, "Invalid GeoJSON: " + err.Error()
		}
		doc = parsed
	case string:
		var parsed interface{}
		if err := json.Unmarshal([]byte(d), &parsed); err != nil {
			return false, "Invalid GeoJSON: " + err.Error()
		}
		doc = parsed
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		return false, "Invalid GeoJSON structure: missing required fields"
	}

	typ, hasType := obj["type"]
	features, hasFeatures := obj["features"]
	if !hasType || !hasFeatures {
		return false, "Invalid GeoJSON structure: missing required fields"
	}

	if t, ok := typ.(string); !ok || t != "FeatureCollection" {
		return false, "Invalid GeoJSON: root type must be 'FeatureCollection'"
	}

	feats, ok := features.([]interface{})
	if !ok || len(feats) == 0 {
		return false, "GeoJSON contains no features"
	}

	return true, "Valid GeoJSON"
}

// CheckCoordinates verifies that two table columns contain usable
// latitude/longitude values. Cells that fail numeric coercion are
// excluded from the range checks, they are silently dropped later during
// conversion.
func CheckCoordinates(t *Table, latCol, lonCol string) error {
	if !t.HasColumn(latCol) || !t.HasColumn(lonCol) {
		return ErrColumnNotFound
	}

	lats, latOK := t.Numeric(latCol)
	lons, lonOK := t.Numeric(lonCol)

	if !anyTrue(latOK) || !anyTrue(lonOK) {
		return ErrNoNumericData
	}

	for i, ok := range latOK {
		if ok && (lats[i] < -90 || lats[i] > 90) {
			return &RangeError{Axis: "Latitude", Min: -90, Max: 90}
		}
	}
	for i, ok := range lonOK {
		if ok && (lons[i] < -180 || lons[i] > 180) {
			return &RangeError{Axis: "Longitude", Min: -180, Max: 180}
		}
	}

	return nil
}

// ValidateCoordinates is the message-pair form of CheckCoordinates.
func ValidateCoordinates(t *Table, latCol, lonCol string) (bool, string) {
	err := CheckCoordinates(t, latCol, lonCol)
	if err != nil {
		return false, err.Error()
	}
	return true, "Valid coordinates"
}

func anyTrue(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}
