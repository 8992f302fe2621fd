package geomerge

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/kr/pretty"
	geojson "github.com/paulmach/go.geojson"
)

func roundTrip(t *testing.T, g *geojson.Geometry) {
	is := is.New(t)

	geom, err := GeometryToGeos(g)
	is.NoErr(err)
	is.NotNil(geom)

	g2, err := GeometryFromGeos(geom)
	is.NoErr(err)
	is.NotNil(g2)

	if diff := pretty.Diff(g, g2); len(diff) > 0 {
		t.Errorf("Geometry changed in round-trip: %v", diff)
	}
}

func TestRoundTripPoint(t *testing.T) {
	roundTrip(t, geojson.NewPointGeometry([]float64{4.35, 50.85}))
}

func TestRoundTripLineString(t *testing.T) {
	roundTrip(t, geojson.NewLineStringGeometry([][]float64{
		{0, 0}, {1, 1}, {2, 0},
	}))
}

func TestRoundTripPolygon(t *testing.T) {
	roundTrip(t, geojson.NewPolygonGeometry([][][]float64{
		{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
	}))
}

func TestRoundTripPolygonWithHole(t *testing.T) {
	roundTrip(t, geojson.NewPolygonGeometry([][][]float64{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		{{1, 1}, {1, 2}, {2, 2}, {2, 1}, {1, 1}},
	}))
}

func TestRoundTripMultiPolygon(t *testing.T) {
	roundTrip(t, geojson.NewMultiPolygonGeometry(
		[][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
		[][][]float64{{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {5, 5}}},
	))
}

func TestGeometryToGeosUnknownType(t *testing.T) {
	is := is.New(t)

	_, err := GeometryToGeos(&geojson.Geometry{Type: "Circle"})
	is.NotNil(err)
}
