package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownElement is returned in strict mode for elements other than menu and choice.
	ErrUnknownElement = errors.New("unknown element")

	// ErrUnwritableTarget is returned by Save when the location cannot be opened for writing.
	ErrUnwritableTarget = errors.New("unable to output menu")

	// ErrReadOnlyLocation is returned when saving to a URL or a literal document.
	ErrReadOnlyLocation = errors.New("location is read-only")

	// ErrMissingHandler is returned when a choice has no handler attribute.
	// Choices without an action declare handler="None".
	ErrMissingHandler = errors.New("handler attribute is required")

	// ErrUnnamedHandler is returned by Save for a handler with a function but no name,
	// which could not be bound again on load.
	ErrUnnamedHandler = errors.New("handler has no name")

	// ErrNoStore is returned for store:// locations when no DocumentStore is configured.
	ErrNoStore = errors.New("no document store configured")
)

// DecodeError reports malformed structural input.
type DecodeError struct {
	Element string // Element being decoded ("menu", "choice")
	Attr    string // Offending attribute, if any
	Line    int    // Line in the source document, 0 if unknown
	Err     error
}

func (e *DecodeError) Error() string {
	loc := e.Element
	if e.Attr != "" {
		loc = fmt.Sprintf("%s@%s", e.Element, e.Attr)
	}
	if e.Line > 0 {
		return fmt.Sprintf("decode %s (line %d): %v", loc, e.Line, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", loc, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
