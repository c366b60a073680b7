package noop

import (
	"context"
	"time"

	"github.com/prakan/go-content-admin/pkg/interfaces"
)

// Cache returns an interfaces.CacheProvider that does nothing. Every read is
// a miss, so list fetches always hit the gateway.
func Cache() interfaces.CacheProvider {
	return cacheAdapter{}
}

type cacheAdapter struct{}

func (cacheAdapter) Get(context.Context, string) (any, error) {
	return nil, nil
}

func (cacheAdapter) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (cacheAdapter) Delete(context.Context, string) error {
	return nil
}

func (cacheAdapter) Clear(context.Context) error {
	return nil
}
