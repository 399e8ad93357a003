package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cache is the subset of the redis wrapper the services use. A nil
// *cache.Client satisfies it and behaves like an always-empty cache.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// userCacheKey is shared by the profile read path and the item mutation
// paths: the cached profile embeds the item list, so item writes must
// invalidate it.
func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

func categoryCacheKey(id uint) string {
	return fmt.Sprintf("category:%d", id)
}
