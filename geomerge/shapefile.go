package geomerge

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jonas-p/go-shp"
	geojson "github.com/paulmach/go.geojson"
)

// ReadShapefile loads an ESRI shapefile into a FeatureCollection. Zip
// archives are unpacked to a temporary directory first and the contained
// .shp is used, which is the usual distribution form. Attribute values
// become string properties.
func ReadShapefile(file string) (*geojson.FeatureCollection, error) {
	if strings.HasSuffix(file, ".zip") {
		tmp, err := os.MkdirTemp("", "shapefile")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(tmp)

		shpName, err := unpackZip(file, tmp)
		if err != nil {
			return nil, err
		}
		if shpName == "" {
			return nil, errors.New("No shape file found in zip")
		}
		file = path.Join(tmp, shpName)
	}

	shape, err := shp.Open(file)
	if err != nil {
		return nil, err
	}
	defer shape.Close()

	fields := shape.Fields()
	fc := geojson.NewFeatureCollection()
	for shape.Next() {
		n, p := shape.Shape()

		geom, err := shapeToGeometry(p)
		if err != nil {
			return nil, err
		}
		if geom == nil {
			continue
		}

		f := geojson.NewFeature(geom)
		for i, field := range fields {
			f.Properties[field.String()] = shape.ReadAttribute(n, i)
		}
		fc.AddFeature(f)
	}

	if len(fc.Features) == 0 {
		return nil, errors.New("No features found in shapefile")
	}

	return fc, nil
}

func unpackZip(zipfile, dir string) (string, error) {
	r, err := zip.OpenReader(zipfile)
	if err != nil {
		return "", err
	}
	defer r.Close()

	shpName := ""
	for _, f := range r.File {
		err = unpackFile(f, dir)
		if err != nil {
			return "", err
		}

		if strings.HasSuffix(f.Name, ".shp") {
			parts := strings.Split(f.Name, "/")
			shpName = parts[len(parts)-1]
		}
	}
	return shpName, nil
}

func unpackFile(f *zip.File, dir string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(path.Join(dir, filepath.Base(f.Name)))
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}

func shapeToGeometry(p shp.Shape) (*geojson.Geometry, error) {
	switch s := p.(type) {
	case *shp.Point:
		return geojson.NewPointGeometry([]float64{s.X, s.Y}), nil
	case *shp.PolyLine:
		lines := partsToRings(s.Parts, s.Points)
		if len(lines) == 1 {
			return geojson.NewLineStringGeometry(lines[0]), nil
		}
		return geojson.NewMultiLineStringGeometry(lines...), nil
	case *shp.Polygon:
		return polygonFromParts(s.Parts, s.Points), nil
	default:
		return nil, fmt.Errorf("Unsupported shape type: %T", p)
	}
}

func partsToRings(parts []int32, points []shp.Point) [][][]float64 {
	rings := make([][][]float64, 0, len(parts))
	for i, first := range parts {
		last := len(points)
		if i < len(parts)-1 {
			last = int(parts[i+1])
		}

		ring := make([][]float64, 0, last-int(first))
		for _, pt := range points[first:last] {
			ring = append(ring, []float64{pt.X, pt.Y})
		}
		rings = append(rings, ring)
	}
	return rings
}

// polygonFromParts classifies rings by winding: shapefiles encode outer
// rings clockwise and holes counter-clockwise. Holes are attached to the
// most recently seen outer ring.
func polygonFromParts(parts []int32, points []shp.Point) *geojson.Geometry {
	polygons := make([][][][]float64, 0)
	for _, ring := range partsToRings(parts, points) {
		if len(ring) < 4 {
			continue
		}

		// Drop tiny geometries
		if math.Abs(ringArea(ring)) < 1e-8 {
			continue
		}

		// GeoJSON winds the opposite way: outer rings
		// counter-clockwise, holes clockwise.
		if isClockwise(ring) {
			polygons = append(polygons, [][][]float64{reverseRing(ring)})
		} else if len(polygons) > 0 {
			last := len(polygons) - 1
			polygons[last] = append(polygons[last], reverseRing(ring))
		}
	}

	if len(polygons) == 0 {
		return nil
	}
	if len(polygons) == 1 {
		return geojson.NewPolygonGeometry(polygons[0])
	}
	return geojson.NewMultiPolygonGeometry(polygons...)
}
