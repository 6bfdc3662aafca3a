package steam

import (
	"errors"
	"fmt"
)

// ErrArgument is returned when a parser receives neither a URL nor markup,
// or both at once.
var ErrArgument = errors.New("exactly one of url or html must be provided")

// ErrInvalidProfileURL is returned when a profile URL cannot be turned into
// a gallery URL. It invalidates the whole run.
var ErrInvalidProfileURL = errors.New("invalid profile url")

// DateFormatError reports a date string that matches neither supported layout.
type DateFormatError struct {
	// Input is the raw text as found on the page.
	Input string

	// Err is the underlying parse error, if any.
	Err error
}

func (e *DateFormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unrecognized date %q", e.Input)
	}
	return fmt.Sprintf("unrecognized date %q: %v", e.Input, e.Err)
}

func (e *DateFormatError) Unwrap() error {
	return e.Err
}

// MetadataParseError reports a detail page missing a required element, or
// holding one that cannot be interpreted.
type MetadataParseError struct {
	// Field is the record field that could not be extracted: image, game or date.
	Field string

	// Err is the underlying cause.
	Err error
}

func (e *MetadataParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Field, e.Err)
}

func (e *MetadataParseError) Unwrap() error {
	return e.Err
}

var errMissingElement = errors.New("element not found")
