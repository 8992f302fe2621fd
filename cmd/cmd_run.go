package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cheggaaa/pb"
	"github.com/rs/zerolog/log"
	"github.com/rubenv/geomerge/geomerge"
)

type CmdRun struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("run",
		"Run a processing job",
		"Run a full processing job described by a configuration file",
		&CmdRun{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdRun) Usage() string {
	return "config.yaml"
}

func (cmd CmdRun) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Config file not specified, Usage: %s", cmd.Usage())
	}

	config, err := geomerge.LoadConfig(args[0])
	if err != nil {
		return fmt.Errorf("Failed to load config: %s", err)
	}

	var combined *geomerge.CombineResult

	if strings.HasSuffix(config.Input, ".shp") || strings.HasSuffix(config.Input, ".zip") {
		fc, err := geomerge.ReadShapefile(config.Input)
		if err != nil {
			return err
		}

		fc = geomerge.FilterFeatures(fc, geomerge.FilterSpec(config.Filters))
		combined, err = geomerge.NewCombiner().Combine(fc)
		if err != nil {
			return err
		}
	} else {
		data, err := readInput(config.Input)
		if err != nil {
			return err
		}

		result, err := geomerge.NewPipeline().
			Coordinates(config.LatitudeColumn, config.LongitudeColumn).
			Filter(geomerge.FilterSpec(config.Filters)).
			Run(data)
		if err != nil {
			return err
		}

		if len(result.Skipped) > 0 {
			log.Warn().Int("rows", len(result.Skipped)).Msg("Skipped rows with invalid coordinates")
		}
		combined = result.Combined
	}

	log.Info().
		Str("type", string(combined.Geometry.Type)).
		Str("output", config.Output).
		Msg("Writing combined geometry")

	return writeOutput(config.Output, func(w io.Writer) error {
		if config.Format == "topojson" {
			return geomerge.WriteTopoJSON(w, combined.Collection, geomerge.TopoJSONOptions{
				Simplify: config.Simplify,
				Quantize: config.Quantize,
			})
		}
		return geomerge.WriteGeoJSON(w, combined.Collection)
	})
}

func readInput(file string) ([]byte, error) {
	fp, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	st, err := fp.Stat()
	if err != nil {
		return nil, err
	}

	bar := pb.New(int(st.Size())).SetUnits(pb.U_BYTES).Format("[=> ]")
	bar.Output = os.Stderr
	bar.Start()
	defer bar.Finish()

	return io.ReadAll(bar.NewProxyReader(fp))
}
