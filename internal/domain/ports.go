package domain

import "context"

// Cache stores rendered pages. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, v []byte, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// RenderedPage is one rendering of the landing page.
type RenderedPage struct {
	Menu MenuState
	HTML []byte
	ETag string
}
