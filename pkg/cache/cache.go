// Package cache stores rendered captures so repeated requests for the same
// seed, combination and frame count skip the animation run.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON entry per key under a directory (CLI default)
//   - [RedisCache]: a shared redis instance (preview server deployments)
//   - [NullCache]: never stores anything
//
// Keys come from [CaptureKey], which hashes every input that influences the
// captured bytes. [Scoped] prefixes keys of another cache, which the server
// uses to keep API versions apart.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/drift/pkg/errors"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Options selects and configures a backend for [New].
type Options struct {
	Backend  string // file, redis or none
	Dir      string
	RedisURL string
}

// New opens the configured backend.
func New(opts Options) (Cache, error) {
	switch opts.Backend {
	case "", "file":
		c, err := NewFileCache(opts.Dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "redis":
		c, err := NewRedisCache(opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "none":
		return NewNullCache(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfiguration, "unknown cache backend %q", opts.Backend)
}
