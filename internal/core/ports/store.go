package ports

import "context"

// Store is the persistent key-value substrate the ledger runs on. The host
// environment serializes calls and commits each operation's writes
// atomically; the ledger never sees a partial commit.
type Store interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Has reports key existence without reading the value.
	Has(ctx context.Context, key string) (bool, error)
}
