package cache

import (
	"context"
	"time"
)

// Store caches JSON-encoded values under a namespace
type Store interface {
	// GetJSON decodes the value stored at key into dst. found is false on a miss.
	GetJSON(ctx context.Context, key string, dst any) (found bool, err error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	// Clear removes every key in the namespace.
	Clear(ctx context.Context) error
	Close() error
}
