package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/rubenv/geomerge/geomerge"
)

type CmdConvert struct {
	global *GlobalOptions
	Input  InputOptions `group:"Input options"`
	Output string       `short:"o" long:"output" description:"Output file (default: stdout)"`
}

func init() {
	_, err := parser.AddCommand("convert",
		"Convert input to GeoJSON",
		"Convert a CSV or shapefile input into a GeoJSON FeatureCollection",
		&CmdConvert{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdConvert) Usage() string {
	return "inputfile"
}

func (cmd CmdConvert) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Input file not specified, Usage: %s", cmd.Usage())
	}

	fc, err := cmd.Input.Load(args[0])
	if err != nil {
		return err
	}

	log.Info().Int("features", len(fc.Features)).Msg("Converted input")

	return writeOutput(cmd.Output, func(w io.Writer) error {
		return geomerge.WriteGeoJSON(w, fc)
	})
}
