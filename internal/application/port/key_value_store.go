package port

import "context"

// KeyValueStore is the host's persistent key-value storage.
// Values are opaque bytes; callers own the encoding.
type KeyValueStore interface {
	// Get returns the value for key. found is false when nothing was stored,
	// which is not an error.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
