package cmd

import (
	"fmt"
	"os"

	"github.com/rubenv/geomerge/geomerge"
)

type CmdDetect struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("detect",
		"Detect input format",
		"Detect whether a file contains GeoJSON or CSV data",
		&CmdDetect{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdDetect) Usage() string {
	return "inputfile"
}

func (cmd CmdDetect) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Input file not specified, Usage: %s", cmd.Usage())
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Println(geomerge.DetectFormat(data))
	return nil
}
