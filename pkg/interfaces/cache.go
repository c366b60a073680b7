package interfaces

import (
	"context"
	"time"
)

// CacheProvider is the minimal cache contract the list view-model uses for
// paged content summaries. A miss is reported as a nil value, not an error.
type CacheProvider interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
