package table

import "errors"

// Persistence errors. Use sites wrap these with the offending detail, e.g.
// fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext).
var (
	// ErrUnsupportedFormat reports a file extension with no adapter behind
	// it, on load or on save.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMalformedTable reports a structured-text payload that parsed as
	// valid data but does not carry a rows collection.
	ErrMalformedTable = errors.New("not a valid table")
)
