// Package storage persists uploaded attachments and names them.
// Records reference blobs by the stored name only; absolute URLs are
// built by the HTTP layer at response time.
package storage

import (
	"context"
	"mime/multipart"
)

// Storage defines the interface for attachment storage operations
type Storage interface {
	// Store persists an upload and returns the generated filename.
	Store(ctx context.Context, file *multipart.FileHeader) (string, error)

	// Exists checks if a stored file is present.
	Exists(ctx context.Context, name string) (bool, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, name string) error
}
