package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/rubenv/geomerge/geomerge"
)

type CmdCombine struct {
	global   *GlobalOptions
	Input    InputOptions  `group:"Input options"`
	Filter   FilterOptions `group:"Filter options"`
	Output   string        `short:"o" long:"output" description:"Output file (default: stdout)"`
	Format   string        `long:"format" choice:"geojson" choice:"topojson" default:"geojson" description:"Output format"`
	Simplify int           `long:"simplify" description:"Simplification exponent for TopoJSON output"`
	Quantize float64       `long:"quantize" description:"Post-quantization factor for TopoJSON output"`
}

func init() {
	_, err := parser.AddCommand("combine",
		"Combine feature geometries",
		"Union all feature geometries into a single combined shape",
		&CmdCombine{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdCombine) Usage() string {
	return "inputfile"
}

func (cmd CmdCombine) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Input file not specified, Usage: %s", cmd.Usage())
	}

	spec, err := cmd.Filter.Spec()
	if err != nil {
		return err
	}

	fc, err := cmd.Input.Load(args[0])
	if err != nil {
		return err
	}

	fc = geomerge.FilterFeatures(fc, spec)

	combined, err := geomerge.NewCombiner().Combine(fc)
	if err != nil {
		return fmt.Errorf("Failed to combine geometries: %s", err)
	}

	log.Info().
		Int("features", len(fc.Features)).
		Str("type", string(combined.Geometry.Type)).
		Msg("Combined geometries")

	return writeOutput(cmd.Output, func(w io.Writer) error {
		if cmd.Format == "topojson" {
			return geomerge.WriteTopoJSON(w, combined.Collection, geomerge.TopoJSONOptions{
				Simplify: cmd.Simplify,
				Quantize: cmd.Quantize,
			})
		}
		return geomerge.WriteGeoJSON(w, combined.Collection)
	})
}
