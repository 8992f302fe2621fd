package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rubenv/geomerge/geomerge"
)

type GlobalOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if globalOpts.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		return command.Execute(args)
	}

	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

type InputOptions struct {
	LatColumn string `long:"lat" description:"Latitude column for CSV input" default:"latitude"`
	LonColumn string `long:"lon" description:"Longitude column for CSV input" default:"longitude"`
}

// Load reads a GeoJSON, CSV or shapefile input into a FeatureCollection.
// Shapefiles are recognized by extension, everything else goes through
// content detection.
func (o *InputOptions) Load(file string) (*geojson.FeatureCollection, error) {
	if strings.HasSuffix(file, ".shp") || strings.HasSuffix(file, ".zip") {
		return geomerge.ReadShapefile(file)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	switch geomerge.DetectFormat(data) {
	case geomerge.FormatGeoJSON:
		if ok, msg := geomerge.ValidateGeoJSON(data); !ok {
			return nil, errors.New(msg)
		}
		return geojson.UnmarshalFeatureCollection(data)
	case geomerge.FormatCSV:
		table, err := geomerge.ReadTable(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}

		err = geomerge.CheckCoordinates(table, o.LatColumn, o.LonColumn)
		if err != nil {
			return nil, err
		}

		result, err := geomerge.TableToGeoJSON(table, o.LatColumn, o.LonColumn)
		if err != nil {
			return nil, err
		}

		for _, s := range result.Skipped {
			log.Debug().Int("row", s.Index).Str("reason", s.Reason).Msg("Skipped row")
		}
		if len(result.Skipped) > 0 {
			log.Warn().Int("rows", len(result.Skipped)).Msg("Skipped rows with invalid coordinates")
		}

		return result.Collection, nil
	default:
		return nil, geomerge.ErrUnrecognizedFormat
	}
}

type FilterOptions struct {
	Filters []string `short:"f" long:"filter" description:"Property filter, prop=value1,value2 (repeatable)"`
}

func (o *FilterOptions) Spec() (geomerge.FilterSpec, error) {
	spec := geomerge.FilterSpec{}
	for _, f := range o.Filters {
		parts := strings.SplitN(f, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("Invalid filter: %s", f)
		}

		values := []string{}
		if parts[1] != "" {
			values = strings.Split(parts[1], ",")
		}
		spec[parts[0]] = values
	}
	return spec, nil
}

func writeOutput(output string, write func(w io.Writer) error) error {
	if output == "" {
		return write(os.Stdout)
	}

	fp, err := os.Create(output)
	if err != nil {
		return err
	}
	defer fp.Close()

	return write(fp)
}
