package ports

import (
	"context"
)

// DocumentStore persists raw menu documents (serialized markup) by name.
// It backs the "store://" codec locations and the HTTP document server.
type DocumentStore interface {
	// Put writes the document, replacing any previous version.
	Put(ctx context.Context, name string, data []byte) error

	// Get retrieves the document.
	// Returns domain.ErrDocumentNotFound if the name does not exist.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes the document. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored document names in sorted order.
	List(ctx context.Context) ([]string, error)
}
