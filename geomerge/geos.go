package geomerge

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulsmith/gogeos/geos"
)

// GeometryToGeos converts a GeoJSON geometry into a GEOS geometry.
func GeometryToGeos(g *geojson.Geometry) (*geos.Geometry, error) {
	switch g.Type {
	case geojson.GeometryPoint:
		return geos.NewPoint(toGeosCoord(g.Point))
	case geojson.GeometryMultiPoint:
		points := make([]*geos.Geometry, 0, len(g.MultiPoint))
		for _, c := range g.MultiPoint {
			p, err := geos.NewPoint(toGeosCoord(c))
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
		return geos.NewCollection(geos.MULTIPOINT, points...)
	case geojson.GeometryLineString:
		return geos.NewLineString(toGeosCoords(g.LineString)...)
	case geojson.GeometryMultiLineString:
		lines := make([]*geos.Geometry, 0, len(g.MultiLineString))
		for _, c := range g.MultiLineString {
			l, err := geos.NewLineString(toGeosCoords(c)...)
			if err != nil {
				return nil, err
			}
			lines = append(lines, l)
		}
		return geos.NewCollection(geos.MULTILINESTRING, lines...)
	case geojson.GeometryPolygon:
		return polygonToGeos(g.Polygon)
	case geojson.GeometryMultiPolygon:
		polygons := make([]*geos.Geometry, 0, len(g.MultiPolygon))
		for _, rings := range g.MultiPolygon {
			p, err := polygonToGeos(rings)
			if err != nil {
				return nil, err
			}
			polygons = append(polygons, p)
		}
		return geos.NewCollection(geos.MULTIPOLYGON, polygons...)
	case geojson.GeometryCollection:
		geometries := make([]*geos.Geometry, 0, len(g.Geometries))
		for _, sub := range g.Geometries {
			s, err := GeometryToGeos(sub)
			if err != nil {
				return nil, err
			}
			geometries = append(geometries, s)
		}
		return geos.NewCollection(geos.GEOMETRYCOLLECTION, geometries...)
	default:
		return nil, fmt.Errorf("Unknown geometry type: %v", g.Type)
	}
}

func polygonToGeos(rings [][][]float64) (*geos.Geometry, error) {
	if len(rings) == 0 {
		return nil, fmt.Errorf("Polygon without rings")
	}
	holes := make([][]geos.Coord, 0, len(rings)-1)
	for _, ring := range rings[1:] {
		holes = append(holes, toGeosCoords(ring))
	}
	return geos.NewPolygon(toGeosCoords(rings[0]), holes...)
}

func toGeosCoord(point []float64) geos.Coord {
	return geos.Coord{X: point[0], Y: point[1]}
}

func toGeosCoords(points [][]float64) []geos.Coord {
	coords := make([]geos.Coord, len(points))
	for i, p := range points {
		coords[i] = toGeosCoord(p)
	}
	return coords
}

// GeometryFromGeos converts a GEOS geometry back into its GeoJSON form.
func GeometryFromGeos(geom *geos.Geometry) (*geojson.Geometry, error) {
	t, err := geom.Type()
	if err != nil {
		return nil, err
	}

	switch t {
	case geos.POINT:
		c, err := pointCoord(geom)
		if err != nil {
			return nil, err
		}
		return geojson.NewPointGeometry(c), nil
	case geos.LINESTRING, geos.LINEARRING:
		coords, err := lineCoords(geom)
		if err != nil {
			return nil, err
		}
		return geojson.NewLineStringGeometry(coords), nil
	case geos.POLYGON:
		rings, err := polyToRings(geom)
		if err != nil {
			return nil, err
		}
		return geojson.NewPolygonGeometry(rings), nil
	case geos.MULTIPOINT:
		points := make([][]float64, 0)
		err = eachSubGeometry(geom, func(sub *geos.Geometry) error {
			c, err := pointCoord(sub)
			if err != nil {
				return err
			}
			points = append(points, c)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return geojson.NewMultiPointGeometry(points...), nil
	case geos.MULTILINESTRING:
		lines := make([][][]float64, 0)
		err = eachSubGeometry(geom, func(sub *geos.Geometry) error {
			coords, err := lineCoords(sub)
			if err != nil {
				return err
			}
			lines = append(lines, coords)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return geojson.NewMultiLineStringGeometry(lines...), nil
	case geos.MULTIPOLYGON:
		polygons := make([][][][]float64, 0)
		err = eachSubGeometry(geom, func(sub *geos.Geometry) error {
			rings, err := polyToRings(sub)
			if err != nil {
				return err
			}
			polygons = append(polygons, rings)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return geojson.NewMultiPolygonGeometry(polygons...), nil
	case geos.GEOMETRYCOLLECTION:
		geometries := make([]*geojson.Geometry, 0)
		err = eachSubGeometry(geom, func(sub *geos.Geometry) error {
			g, err := GeometryFromGeos(sub)
			if err != nil {
				return err
			}
			geometries = append(geometries, g)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return geojson.NewCollectionGeometry(geometries...), nil
	default:
		return nil, fmt.Errorf("Unknown geometry type: %v", t)
	}
}

func eachSubGeometry(geom *geos.Geometry, fn func(sub *geos.Geometry) error) error {
	c, err := geom.NGeometry()
	if err != nil {
		return err
	}

	for i := 0; i < c; i++ {
		sub, err := geom.Geometry(i)
		if err != nil {
			return err
		}
		err = fn(sub)
		if err != nil {
			return err
		}
	}
	return nil
}

func pointCoord(geom *geos.Geometry) ([]float64, error) {
	x, err := geom.X()
	if err != nil {
		return nil, err
	}
	y, err := geom.Y()
	if err != nil {
		return nil, err
	}
	return []float64{x, y}, nil
}

func lineCoords(geom *geos.Geometry) ([][]float64, error) {
	n, err := geom.NPoint()
	if err != nil {
		return nil, err
	}

	coords := make([][]float64, n)
	for i := 0; i < n; i++ {
		p, err := geom.Point(i)
		if err != nil {
			return nil, err
		}
		c, err := pointCoord(p)
		if err != nil {
			return nil, err
		}
		coords[i] = c
	}
	return coords, nil
}

func polyToRings(geom *geos.Geometry) ([][][]float64, error) {
	shell, err := geom.Shell()
	if err != nil {
		return nil, err
	}
	c, err := lineCoords(shell)
	if err != nil {
		return nil, err
	}

	holes, err := geom.Holes()
	if err != nil {
		return nil, err
	}

	rings := make([][][]float64, len(holes)+1)
	rings[0] = c
	for i, h := range holes {
		c, err := lineCoords(h)
		if err != nil {
			return nil, err
		}
		rings[i+1] = c
	}

	return rings, nil
}
