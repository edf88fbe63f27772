package fetch

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Default cache lifetimes for fetched resume bytes. A re-run of a batch
// with overlapping rows skips re-downloading unchanged files.
const (
	DefaultCacheTTL     = 15 * time.Minute
	defaultCacheCleanup = 30 * time.Minute
)

type cachedFile struct {
	data     []byte
	filename string
}

// CachedFetcher wraps another Fetcher with an in-memory TTL cache keyed by
// locator. Only successful fetches are cached; failures always retry the
// underlying fetcher.
type CachedFetcher struct {
	inner Fetcher
	cache *gocache.Cache
}

// NewCachedFetcher wraps inner with a TTL cache. A non-positive ttl uses
// the default.
func NewCachedFetcher(inner Fetcher, ttl time.Duration) *CachedFetcher {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{
		inner: inner,
		cache: gocache.New(ttl, defaultCacheCleanup),
	}
}

// Fetch returns the cached content for the locator or delegates to the
// underlying fetcher.
func (f *CachedFetcher) Fetch(ctx context.Context, locator string) ([]byte, string, error) {
	if entry, ok := f.cache.Get(locator); ok {
		file := entry.(cachedFile)
		return file.data, file.filename, nil
	}

	data, filename, err := f.inner.Fetch(ctx, locator)
	if err != nil {
		return nil, "", err
	}

	f.cache.SetDefault(locator, cachedFile{data: data, filename: filename})
	return data, filename, nil
}
