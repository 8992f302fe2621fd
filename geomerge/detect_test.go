package geomerge

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestDetectGeoJSON(t *testing.T) {
	is := is.New(t)

	in := `{"type":"FeatureCollection","features":[]}`
	is.Equal(DetectFormat([]byte(in)), FormatGeoJSON)
}

func TestDetectCSV(t *testing.T) {
	is := is.New(t)

	in := "lat,lon,name\n1.0,2.0,A\n"
	is.Equal(DetectFormat([]byte(in)), FormatCSV)
}

func TestDetectJSONWithoutFeatures(t *testing.T) {
	is := is.New(t)

	// Parses as JSON but lacks the GeoJSON keys, falls through to the
	// CSV reader which accepts it as a single-column table.
	is.Equal(DetectFormat([]byte(`{"a": 1}`)), FormatCSV)
}

func TestDetectUnknown(t *testing.T) {
	is := is.New(t)

	is.Equal(DetectFormat([]byte{}), FormatUnknown)
	is.Equal(DetectFormat([]byte{0xff, 0xfe, 0x00, 0x01}), FormatUnknown)
}

func TestDetectLeavesInputIntact(t *testing.T) {
	is := is.New(t)

	in := []byte("lat,lon\n1,2\n")
	saved := string(in)
	DetectFormat(in)
	is.Equal(string(in), saved)
}
