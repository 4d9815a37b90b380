package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	ErrEmptyInput         = errors.New("input text is empty")
	ErrExtractionInFlight = errors.New("an extraction run is already in progress")
)
