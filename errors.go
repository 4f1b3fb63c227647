package seasonal

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset indicates a chart preset name that is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// ErrSliderPosition indicates a slider value outside of SliderTable.
var ErrSliderPosition = errors.New("slider position out of range")

// ErrNoTooltip indicates hovering a plot line drawn without tooltip.
var ErrNoTooltip = errors.New("plot line has no tooltip")

// FetchError represents a failure to read the dataset from its source.
type FetchError struct {
	Source string
	Status int // HTTP status code, 0 for transport and file errors
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Source, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents a dataset body that is not valid JSON or does not
// have the subplot/month/point shape.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DataShapeError represents data that parsed fine but cannot be drawn:
// a missing subplot or months of unequal length.
type DataShapeError struct {
	Subplot int
	Month   string // empty if not month specific
	Reason  string
}

func (e *DataShapeError) Error() string {
	if e.Month != "" {
		return fmt.Sprintf("subplot %d, month %q: %s", e.Subplot, e.Month, e.Reason)
	}
	return fmt.Sprintf("subplot %d: %s", e.Subplot, e.Reason)
}

// NewDataShapeError creates a new DataShapeError.
func NewDataShapeError(subplot int, month, format string, args ...interface{}) *DataShapeError {
	return &DataShapeError{
		Subplot: subplot,
		Month:   month,
		Reason:  fmt.Sprintf(format, args...),
	}
}
