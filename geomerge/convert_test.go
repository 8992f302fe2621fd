package geomerge

import (
	"errors"
	"testing"

	"github.com/cheekybits/is"
)

func TestTableToGeoJSON(t *testing.T) {
	is := is.New(t)

	table := &Table{
		Columns: []string{"lat", "lon", "name", "note"},
		Rows: []Row{
			{"lat": "50.85", "lon": "4.35", "name": "Brussels", "note": "capital"},
			{"lat": "49.61", "lon": "6.13", "name": "Luxembourg", "note": ""},
		},
	}

	result, err := TableToGeoJSON(table, "lat", "lon")
	is.NoErr(err)
	is.Equal(len(result.Skipped), 0)

	fc := result.Collection
	is.Equal(len(fc.Features), 2)

	f := fc.Features[0]
	is.Equal(f.Geometry.Point, []float64{4.35, 50.85})
	is.Equal(f.Properties["name"], "Brussels")
	is.Equal(f.Properties["note"], "capital")

	// Coordinate columns do not leak into properties
	_, hasLat := f.Properties["lat"]
	is.Equal(hasLat, false)

	// Empty cells become explicit nulls
	v, ok := fc.Features[1].Properties["note"]
	is.True(ok)
	is.Nil(v)
}

func TestTableToGeoJSONSkipsBadRows(t *testing.T) {
	is := is.New(t)

	table := &Table{
		Columns: []string{"lat", "lon", "name"},
		Rows: []Row{
			{"lat": "1", "lon": "2", "name": "A"},
			{"lat": "x", "lon": "2", "name": "B"},
			{"lat": "3", "lon": "", "name": "C"},
			{"lat": "5", "lon": "6", "name": "D"},
		},
	}

	result, err := TableToGeoJSON(table, "lat", "lon")
	is.NoErr(err)
	is.Equal(len(result.Collection.Features), 2)
	is.Equal(len(result.Skipped), 2)
	is.Equal(result.Skipped[0].Index, 1)
	is.Equal(result.Skipped[1].Index, 2)

	// Surviving row order matches input order
	is.Equal(result.Collection.Features[0].Properties["name"], "A")
	is.Equal(result.Collection.Features[1].Properties["name"], "D")
}

func TestTableToGeoJSONNoFeatures(t *testing.T) {
	is := is.New(t)

	table := &Table{
		Columns: []string{"lat", "lon"},
		Rows:    []Row{{"lat": "x", "lon": "y"}},
	}

	_, err := TableToGeoJSON(table, "lat", "lon")
	is.NotNil(err)
	is.True(errors.Is(err, ErrNoFeatures))
}

func TestTableToGeoJSONMissingColumn(t *testing.T) {
	is := is.New(t)

	table := &Table{
		Columns: []string{"lat", "lon"},
		Rows:    []Row{{"lat": "1", "lon": "2"}},
	}

	_, err := TableToGeoJSON(table, "lat", "longitude")
	is.NotNil(err)
	is.True(errors.Is(err, ErrColumnNotFound))
}
