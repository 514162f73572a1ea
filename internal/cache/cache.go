package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching fetched documents.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// URLKey generates a cache key for a remote document.
func URLKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "skuforge:v1:url:" + hex.EncodeToString(hash[:])
}

// ContentKey generates a cache key from raw document bytes, so a
// renamed copy of the same document hits the same entry.
func ContentKey(data []byte) string {
	hash := sha256.Sum256(data)
	return "skuforge:v1:doc:" + hex.EncodeToString(hash[:])
}
