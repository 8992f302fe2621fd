package cmd

import (
	"fmt"

	"github.com/rubenv/geomerge/geomerge"
)

type CmdValues struct {
	global *GlobalOptions
	Input  InputOptions `group:"Input options"`
}

func init() {
	_, err := parser.AddCommand("values",
		"List property values",
		"List the distinct values a property takes across all features",
		&CmdValues{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdValues) Usage() string {
	return "inputfile property"
}

func (cmd CmdValues) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Input file or property not specified, Usage: %s", cmd.Usage())
	}

	fc, err := cmd.Input.Load(args[0])
	if err != nil {
		return err
	}

	for _, v := range geomerge.PropertyValues(fc, args[1]) {
		fmt.Println(v)
	}
	return nil
}
