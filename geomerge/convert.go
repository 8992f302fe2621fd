package geomerge

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// SkippedRow records a row that was dropped during conversion and why.
type SkippedRow struct {
	Index  int
	Reason string
}

// ConvertResult carries converted features together with per-row skip
// diagnostics. Skipped rows are non-fatal.
type ConvertResult struct {
	Collection *geojson.FeatureCollection
	Skipped    []SkippedRow
}

// TableToGeoJSON converts a table with coordinate columns into a
// FeatureCollection of point features. Rows where either coordinate fails
// numeric coercion are skipped and reported, the remaining rows keep
// their input order. Every non-coordinate column becomes a property with
// its cell value stringified, empty cells become null. A fully empty
// result is an error, never an empty collection.
func TableToGeoJSON(t *Table, latCol, lonCol string) (*ConvertResult, error) {
	if !t.HasColumn(latCol) || !t.HasColumn(lonCol) {
		return nil, ErrColumnNotFound
	}

	result := &ConvertResult{Collection: geojson.NewFeatureCollection()}
	for i, row := range t.Rows {
		lat, latOK := parseNumber(row[latCol])
		lon, lonOK := parseNumber(row[lonCol])
		if !latOK || !lonOK {
			col := latCol
			if latOK {
				col = lonCol
			}
			result.Skipped = append(result.Skipped, SkippedRow{
				Index:  i,
				Reason: fmt.Sprintf("non-numeric value in column %q", col),
			})
			continue
		}

		f := geojson.NewPointFeature([]float64{lon, lat})
		for _, col := range t.Columns {
			if col == latCol || col == lonCol {
				continue
			}
			if row[col] == "" {
				f.Properties[col] = nil
			} else {
				f.Properties[col] = row[col]
			}
		}
		result.Collection.AddFeature(f)
	}

	if len(result.Collection.Features) == 0 {
		return nil, ErrNoFeatures
	}

	return result, nil
}
