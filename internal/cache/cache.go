package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching fetched board pages.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from a URL. The version segment is bumped
// when the cached representation changes incompatibly.
func CacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "sanctia:v1:" + hex.EncodeToString(hash[:])
}
