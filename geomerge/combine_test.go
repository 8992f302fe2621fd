package geomerge

import (
	"errors"
	"math"
	"testing"

	"github.com/cheekybits/is"
	geojson "github.com/paulmach/go.geojson"
)

func squareFeature(x, y, size float64) *geojson.Feature {
	return geojson.NewPolygonFeature([][][]float64{
		{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y}},
	})
}

func geometryArea(t *testing.T, g *geojson.Geometry) float64 {
	is := is.New(t)

	geom, err := GeometryToGeos(g)
	is.NoErr(err)

	area, err := geom.Area()
	is.NoErr(err)
	return area
}

func TestCombineSinglePolygon(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(squareFeature(0, 0, 1))

	result, err := NewCombiner().Combine(fc)
	is.NoErr(err)

	// A single polygon comes back wrapped in a size-one MultiPolygon
	is.Equal(result.Geometry.Type, geojson.GeometryMultiPolygon)
	is.Equal(len(result.Geometry.MultiPolygon), 1)
	is.Equal(result.Geometry.MultiPolygon[0], fc.Features[0].Geometry.Polygon)

	is.Equal(len(result.Collection.Features), 1)
	is.Equal(len(result.Collection.Features[0].Properties), 0)
}

func TestCombineDisjointPolygons(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(squareFeature(0, 0, 1))
	fc.AddFeature(squareFeature(5, 5, 2))
	fc.AddFeature(squareFeature(10, 0, 3))

	result, err := NewCombiner().Combine(fc)
	is.NoErr(err)
	is.Equal(result.Geometry.Type, geojson.GeometryMultiPolygon)
	is.Equal(len(result.Geometry.MultiPolygon), 3)

	// Disjoint input: union area equals the sum of the parts
	total := geometryArea(t, result.Geometry)
	is.True(math.Abs(total-(1+4+9)) < 1e-9)
}

func TestCombineOverlappingPolygons(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(squareFeature(0, 0, 2))
	fc.AddFeature(squareFeature(1, 0, 2))

	result, err := NewCombiner().Combine(fc)
	is.NoErr(err)

	// Overlap merges into one polygon, wrapped as a multi-geometry
	is.Equal(result.Geometry.Type, geojson.GeometryMultiPolygon)
	is.Equal(len(result.Geometry.MultiPolygon), 1)

	total := geometryArea(t, result.Geometry)
	is.True(math.Abs(total-6) < 1e-9)
}

func TestCombineMixedTypes(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(squareFeature(0, 0, 1))
	fc.AddFeature(geojson.NewPointFeature([]float64{10, 10}))

	result, err := NewCombiner().Combine(fc)
	is.NoErr(err)

	// Heterogeneous input yields a GeometryCollection, not an error
	is.Equal(result.Geometry.Type, geojson.GeometryCollection)
}

func TestCombineEmpty(t *testing.T) {
	is := is.New(t)

	_, err := NewCombiner().Combine(geojson.NewFeatureCollection())
	is.NotNil(err)
	is.True(errors.Is(err, ErrEmptyFeatureSet))

	_, err = NewCombiner().Combine(nil)
	is.True(errors.Is(err, ErrEmptyFeatureSet))
}

func TestCombineMissingGeometry(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(&geojson.Feature{Type: "Feature"})

	_, err := NewCombiner().Combine(fc)
	is.NotNil(err)
	is.True(errors.Is(err, ErrGeometryParse))
}

type stubEngine struct {
	result *geojson.Geometry
}

func (e stubEngine) Union(geometries []*geojson.Geometry) (*geojson.Geometry, error) {
	return e.result, nil
}

func TestCombineCustomEngine(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(squareFeature(0, 0, 1))

	poly := geojson.NewPolygonGeometry([][][]float64{
		{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
	})

	result, err := NewCombiner().Engine(stubEngine{result: poly}).Combine(fc)
	is.NoErr(err)

	// Polygon normalization applies regardless of engine
	is.Equal(result.Geometry.Type, geojson.GeometryMultiPolygon)
	is.Equal(len(result.Geometry.MultiPolygon), 1)
}
