package geomerge

import (
	"errors"
	"fmt"
)

// Error kinds signalled by the conversion and combination stages. The
// validators return (bool, message) pairs instead, so their outcome can be
// shown to a user as-is.
var (
	ErrUnrecognizedFormat = errors.New("Unable to process this file type. Please upload a CSV or GeoJSON file")
	ErrInvalidStructure   = errors.New("Invalid GeoJSON data")
	ErrColumnNotFound     = errors.New("Selected columns not found in CSV")
	ErrNoNumericData      = errors.New("Selected columns do not contain valid numeric data")
	ErrNoFeatures         = errors.New("No valid features could be created from the CSV data")
	ErrEmptyFeatureSet    = errors.New("No features found to process")
	ErrGeometryParse      = errors.New("Failed to parse feature geometry")
)

// RangeError reports coordinate values outside the valid range for an
// axis. Its message matches what the validators display.
type RangeError struct {
	Axis string
	Min  float64
	Max  float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s values must be between %g and %g", e.Axis, e.Min, e.Max)
}
