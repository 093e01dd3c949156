package usecase

import (
	"context"
	"time"
)

// Cache is the optional response cache in front of the recommender. A nil
// Cache simply disables caching; misses and backend failures are never fatal.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
