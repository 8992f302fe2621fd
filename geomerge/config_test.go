package geomerge

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

func TestParseConfig(t *testing.T) {
	is := is.New(t)

	in := `
input: cities.csv
output: combined.geojson

latitude_column: lat
longitude_column: lng

filters:
    country: [BE, LU]
    category: []

format: topojson
simplify: 6
quantize: 1000000
`

	config, err := ParseConfig(strings.NewReader(in))
	is.NoErr(err)
	is.NotNil(config)

	is.Equal(config.Input, "cities.csv")
	is.Equal(config.Output, "combined.geojson")
	is.Equal(config.LatitudeColumn, "lat")
	is.Equal(config.LongitudeColumn, "lng")
	is.Equal(config.Filters["country"], []string{"BE", "LU"})
	is.Equal(len(config.Filters["category"]), 0)
	is.Equal(config.Format, "topojson")
	is.Equal(config.Simplify, 6)
	is.Equal(config.Quantize, 1e6)
}

func TestParseConfigDefaults(t *testing.T) {
	is := is.New(t)

	config, err := ParseConfig(strings.NewReader("input: data.geojson\n"))
	is.NoErr(err)
	is.Equal(config.Format, "geojson")
	is.Equal(config.Simplify, 0)
}

func TestParseConfigMissingInput(t *testing.T) {
	is := is.New(t)

	_, err := ParseConfig(strings.NewReader("output: out.geojson\n"))
	is.NotNil(err)
}

func TestParseConfigBadFormat(t *testing.T) {
	is := is.New(t)

	_, err := ParseConfig(strings.NewReader("input: a.csv\nformat: shapefile\n"))
	is.NotNil(err)
}
