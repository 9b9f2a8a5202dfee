package object

import (
	"context"
	"io"
)

// ObjectStore persists uploaded binary assets (avatars, center logos) under a
// per-owner key. Implementations must never embed the raw owner ID in the key.
type ObjectStore interface {
	// Save stores the reader's content and returns the storage key along with
	// the stored size and detected MIME type.
	Save(ctx context.Context, ownerID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	// Open returns a reader for a previously stored object.
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
