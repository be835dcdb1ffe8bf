package scan

import (
	"sync"

	"golang.org/x/crypto/blake2b"

	"hiddenmsg/stegano/text"
)

const DefaultCacheSize = 4096

type cached struct {
	res text.Result
	ok  bool
}

/*
 * Cache remembers decoding results by the digest of the fragment, so that
 * unchanged text is not decoded again on the next scan. It forgets
 * everything once it grows over its limit.
 */
type Cache struct {
	limit   int
	entries map[[blake2b.Size256]byte]cached
	mtx     sync.Mutex
	hits    uint64
}

func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = DefaultCacheSize
	}
	return &Cache{
		limit:   limit,
		entries: make(map[[blake2b.Size256]byte]cached),
	}
}

// Decode returns the cached result for s or decodes it with d.
// Results depend on the decoder, so one cache should serve one decoder.
func (c *Cache) Decode(d text.Decoder, s string) (text.Result, bool) {
	key := blake2b.Sum256([]byte(s))

	c.mtx.Lock()
	if e, found := c.entries[key]; found {
		c.hits++
		c.mtx.Unlock()
		return e.res, e.ok
	}
	c.mtx.Unlock()

	res, ok := d.Decode(s)

	c.mtx.Lock()
	defer c.mtx.Unlock()
	if len(c.entries) >= c.limit {
		c.entries = make(map[[blake2b.Size256]byte]cached)
	}
	c.entries[key] = cached{res, ok}
	return res, ok
}

func (c *Cache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.entries)
}

// Hits is the number of lookups answered from the cache.
func (c *Cache) Hits() uint64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.hits
}
