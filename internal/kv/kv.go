package kv

import "context"

// Store is a string-blob key-value store. Get reports absence through the
// second return value rather than an error; a missing key is not a failure.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
