package geomerge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// Pipeline runs the full processing chain over raw input bytes: format
// detection, structural validation, CSV conversion where needed,
// attribute filtering and geometry combination. Every stage is pure, the
// caller owns all state between runs.
type Pipeline struct {
	latCol  string
	lonCol  string
	filters FilterSpec
	combine bool
	engine  UnionEngine
}

// Result carries the outcome of a pipeline run. Collection is the
// working FeatureCollection after filtering, Combined is only set when
// combination was requested.
type Result struct {
	Format     Format
	Collection *geojson.FeatureCollection
	Skipped    []SkippedRow
	Combined   *CombineResult
}

func NewPipeline() *Pipeline {
	return &Pipeline{combine: true}
}

// Coordinates names the latitude and longitude columns used for CSV
// input.
func (p *Pipeline) Coordinates(latCol, lonCol string) *Pipeline {
	p.latCol = latCol
	p.lonCol = lonCol
	return p
}

// Filter applies attribute constraints to the loaded features.
func (p *Pipeline) Filter(spec FilterSpec) *Pipeline {
	p.filters = spec
	return p
}

// SkipCombine stops the pipeline after filtering.
func (p *Pipeline) SkipCombine() *Pipeline {
	p.combine = false
	return p
}

// Engine overrides the union engine used for combination.
func (p *Pipeline) Engine(e UnionEngine) *Pipeline {
	p.engine = e
	return p
}

// Run processes one document to completion.
func (p *Pipeline) Run(data []byte) (*Result, error) {
	result := &Result{Format: DetectFormat(data)}

	switch result.Format {
	case FormatGeoJSON:
		var doc interface{}
		err := json.Unmarshal(data, &doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStructure, err)
		}
		if ok, msg := ValidateGeoJSON(doc); !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStructure, msg)
		}

		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStructure, err)
		}
		result.Collection = fc

	case FormatCSV:
		if p.latCol == "" || p.lonCol == "" {
			return nil, errors.New("No coordinate columns specified")
		}

		table, err := ReadTable(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		err = CheckCoordinates(table, p.latCol, p.lonCol)
		if err != nil {
			return nil, err
		}

		converted, err := TableToGeoJSON(table, p.latCol, p.lonCol)
		if err != nil {
			return nil, err
		}
		result.Collection = converted.Collection
		result.Skipped = converted.Skipped

	default:
		return nil, ErrUnrecognizedFormat
	}

	result.Collection = FilterFeatures(result.Collection, p.filters)

	if p.combine {
		combiner := NewCombiner()
		if p.engine != nil {
			combiner.Engine(p.engine)
		}

		combined, err := combiner.Combine(result.Collection)
		if err != nil {
			return nil, err
		}
		result.Combined = combined
	}

	return result, nil
}
