package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/rubenv/geomerge/geomerge"
)

type CmdFilter struct {
	global *GlobalOptions
	Input  InputOptions  `group:"Input options"`
	Filter FilterOptions `group:"Filter options"`
	Output string        `short:"o" long:"output" description:"Output file (default: stdout)"`
}

func init() {
	_, err := parser.AddCommand("filter",
		"Filter features",
		"Keep only the features whose properties match the given filters",
		&CmdFilter{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdFilter) Usage() string {
	return "-f prop=value1,value2 inputfile"
}

func (cmd CmdFilter) Execute(args []string) error {
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

	filtered := geomerge.FilterFeatures(fc, spec)
	log.Info().
		Int("in", len(fc.Features)).
		Int("out", len(filtered.Features)).
		Msg("Filtered features")

	return writeOutput(cmd.Output, func(w io.Writer) error {
		return geomerge.WriteGeoJSON(w, filtered)
	})
}
