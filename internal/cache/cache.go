package cache

import (
	"context"
	"time"
)

// Cache backs the public read path. Every mutation of a resource must Del its
// key so the next list fetch reflects the change.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Fixed cache keys, one per public resource.
const (
	KeyProfile     = "profile"
	KeySkills      = "skills"
	KeyExperiences = "experiences"
	KeyProjects    = "projects"
	KeyReviews     = "reviews:published"
)
