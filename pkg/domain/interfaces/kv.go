package interfaces

import "context"

// BlobStore is the key/value blob medium the domain store persists into.
// Any durable key-value backend satisfies it; absence is reported through the
// boolean, not an error.
type BlobStore interface {
	// Get returns the blob stored under key, or ok=false when the key is
	// entirely absent.
	Get(ctx context.Context, key string) (blob []byte, ok bool, err error)

	// Set stores the blob under key, replacing any previous value.
	Set(ctx context.Context, key string, blob []byte) error

	// Close releases backend resources.
	Close() error
}
