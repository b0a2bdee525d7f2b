package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// keyVersion is bumped whenever the rendering of captures changes.
const keyVersion = 2

// CaptureParams are the inputs that decide the pixels of a capture.
type CaptureParams struct {
	Seed          string
	Combination   int
	Frames        int // 0 runs until the preview is ready
	Limit         int // frame cap when Frames is 0
	PreviewFactor int
	Width         int // pixel size, after the pixel ratio
	Height        int
}

// CaptureKey returns the cache key of a PNG capture. Limit only takes part
// when Frames is 0.
func CaptureKey(p CaptureParams) string {
	if p.Frames > 0 {
		p.Limit = 0
	}
	return hashKey("capture", keyVersion, p.Seed, p.Combination, p.Frames, p.Limit,
		p.PreviewFactor, p.Width, p.Height)
}

// hashKey generates a key of the form prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data as 64 hex characters.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ScopedCache prefixes every key of an inner cache.
type ScopedCache struct {
	inner  Cache
	prefix string
}

// Scoped returns a cache that stores its entries in inner under prefix.
func Scoped(inner Cache, prefix string) *ScopedCache {
	return &ScopedCache{inner: inner, prefix: prefix}
}

func (c *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

func (c *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

func (c *ScopedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close closes the inner cache.
func (c *ScopedCache) Close() error {
	return c.inner.Close()
}

var _ Cache = (*ScopedCache)(nil)
