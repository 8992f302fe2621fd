package geomerge

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulsmith/gogeos/geos"
)

// UnionEngine computes the set-theoretic union of a list of geometries.
// The default engine is backed by GEOS, tests can swap in an alternative.
type UnionEngine interface {
	Union(geometries []*geojson.Geometry) (*geojson.Geometry, error)
}

// GeosEngine implements UnionEngine on top of the GEOS library by folding
// a pairwise union over the input. Overlapping regions are merged, shared
// boundaries dissolved and contained shapes deduplicated. A union over
// mixed geometry types yields a GeometryCollection.
type GeosEngine struct{}

func (GeosEngine) Union(geometries []*geojson.Geometry) (*geojson.Geometry, error) {
	var acc *geos.Geometry
	for _, g := range geometries {
		geom, err := GeometryToGeos(g)
		if err != nil {
			return nil, err
		}

		if acc == nil {
			acc = geom
			continue
		}
		acc, err = acc.Union(geom)
		if err != nil {
			return nil, err
		}
	}

	return GeometryFromGeos(acc)
}

// CombineResult holds the combined geometry plus a single-feature
// collection wrapping it, ready for serialization.
type CombineResult struct {
	Geometry   *geojson.Geometry
	Collection *geojson.FeatureCollection
}

// Combiner unions all feature geometries of a collection into a single
// normalized multi-geometry.
type Combiner struct {
	engine UnionEngine
}

func NewCombiner() *Combiner {
	return &Combiner{engine: GeosEngine{}}
}

// Engine replaces the union engine.
func (c *Combiner) Engine(e UnionEngine) *Combiner {
	c.engine = e
	return c
}

// Combine unions every feature geometry in the collection. A union that
// degenerates to a single polygon is wrapped in a size-one MultiPolygon,
// so the result is uniformly a multi-geometry regardless of input
// cardinality. The wrapping feature carries empty properties.
func (c *Combiner) Combine(fc *geojson.FeatureCollection) (*CombineResult, error) {
	if fc == nil || len(fc.Features) == 0 {
		return nil, ErrEmptyFeatureSet
	}

	geometries := make([]*geojson.Geometry, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			return nil, fmt.Errorf("%w: feature %d has no geometry", ErrGeometryParse, i)
		}
		geometries = append(geometries, f.Geometry)
	}

	combined, err := c.engine.Union(geometries)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGeometryParse, err)
	}

	if combined.Type == geojson.GeometryPolygon {
		combined = geojson.NewMultiPolygonGeometry(combined.Polygon)
	}

	out := geojson.NewFeatureCollection()
	out.AddFeature(geojson.NewFeature(combined))

	return &CombineResult{Geometry: combined, Collection: out}, nil
}
