// Package metadata stores opaque key/value pairs: the secure store keeps its
// salt, its passphrase verifier and the encrypted preference values here.
package metadata

import (
	"context"
)

// Repository is a byte-valued key/value table. Get returns (nil, nil) when
// the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
