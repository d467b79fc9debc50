package domain

import (
	"errors"
	"fmt"
)

// ErrNameResolution matches any *NameResolutionError via errors.Is.
var ErrNameResolution = errors.New("handler name resolution failed")

// ErrDocumentNotFound is returned when a stored menu document does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// ErrInvalidName is returned when a document name cannot be stored as given.
var ErrInvalidName = errors.New("invalid document name")

// ErrNoRootMenu is returned when navigation is started without a menu.
var ErrNoRootMenu = errors.New("root menu is required")

// NameResolutionError reports a handler name that the resolver does not know.
type NameResolutionError struct {
	Name string
}

func (e *NameResolutionError) Error() string {
	return fmt.Sprintf("handler %q not found", e.Name)
}

// Is lets errors.Is(err, ErrNameResolution) match.
func (e *NameResolutionError) Is(target error) bool {
	return target == ErrNameResolution
}
