package geomerge

import (
	"encoding/json"
	"io"
	"math"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rubenv/topojson"
)

// MarshalIndent serializes a FeatureCollection as pretty-printed GeoJSON
// with two-space indentation.
func MarshalIndent(fc *geojson.FeatureCollection) ([]byte, error) {
	return json.MarshalIndent(fc, "", "  ")
}

// WriteGeoJSON writes a FeatureCollection as pretty-printed GeoJSON.
func WriteGeoJSON(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := MarshalIndent(fc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// TopoJSONOptions control the topology conversion. Simplify is an
// exponent: a value of n allows a simplification error of up to 10^-n
// degrees, zero disables simplification. Quantize is passed through as
// the post-quantization factor.
type TopoJSONOptions struct {
	Simplify int
	Quantize float64
}

// WriteTopoJSON converts a FeatureCollection into a TopoJSON topology and
// writes it out.
func WriteTopoJSON(w io.Writer, fc *geojson.FeatureCollection, opts TopoJSONOptions) error {
	maxErr := float64(0)
	if opts.Simplify > 0 {
		maxErr = math.Pow(10, float64(-opts.Simplify))
	}

	topo := topojson.NewTopology(fc, &topojson.TopologyOptions{
		Simplify:     maxErr,
		PostQuantize: opts.Quantize,
	})

	return json.NewEncoder(w).Encode(topo)
}
