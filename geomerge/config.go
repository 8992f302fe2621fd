package geomerge

import (
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Config describes a processing job: where the input comes from, which
// columns hold coordinates for CSV input, which attribute filters apply
// and how the result is exported.
type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	LatitudeColumn  string `yaml:"latitude_column"`
	LongitudeColumn string `yaml:"longitude_column"`

	Filters map[string][]string `yaml:"filters"`

	Format   string  `yaml:"format"`
	Simplify int     `yaml:"simplify"`
	Quantize float64 `yaml:"quantize"`
}

// ParseConfig reads a job configuration from a stream, applying defaults.
func ParseConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if config.Input == "" {
		return nil, errors.New("No input file specified")
	}

	if config.Format == "" {
		config.Format = "geojson"
	}
	if config.Format != "geojson" && config.Format != "topojson" {
		return nil, fmt.Errorf("Unknown output format: %s", config.Format)
	}

	return config, nil
}

// LoadConfig reads a job configuration file.
func LoadConfig(configPath string) (*Config, error) {
	fp, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	return ParseConfig(fp)
}
