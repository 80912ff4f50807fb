// Package cache provides content-addressed caching for parsed graphs and
// computed layouts.
//
// Pipeline stages are pure functions of their input, so cache keys are
// derived from content hashes: the graph key from a hash of the GEDCOM
// source, the layout key from a hash of the serialized graph plus the
// layout options. Identical input always hits the same entry.
//
// Three backends are provided:
//   - FileCache: XDG cache directory, for the CLI
//   - RedisCache: shared cache for the server
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// Lifetimes per entry type. Keys are content-addressed and never go
// stale; the TTLs only bound disk and memory growth.
const (
	TTLGraph  = 7 * 24 * time.Hour
	TTLLayout = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// GraphKeyOpts are the parse options that shape a graph cache entry.
// Currently none influence the result, but the struct keeps the key
// format stable if options appear.
type GraphKeyOpts struct{}

// LayoutKeyOpts are the layout options folded into a layout cache key.
type LayoutKeyOpts struct {
	HSpacing float64
	VSpacing float64
}

// Keyer derives cache keys for the pipeline stages.
type Keyer interface {
	// GraphKey keys a parsed graph by source content hash.
	GraphKey(sourceHash string, opts GraphKeyOpts) string

	// LayoutKey keys a computed layout by graph hash and layout options.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer is the standard key derivation.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// GraphKey generates a key for graph caching.
func (k *DefaultKeyer) GraphKey(sourceHash string, opts GraphKeyOpts) string {
	return hashKey("graph", sourceHash, opts)
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// NullCache is a no-op cache that never stores anything.
// Useful for testing or when caching should be disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache { return &NullCache{} }

// Get always returns a cache miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error { return nil }

// Close does nothing.
func (c *NullCache) Close() error { return nil }

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
