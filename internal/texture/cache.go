package texture

import (
	"image"
	"sync"
)

// Cache memoizes decoded textures by path, so six face slots pointing at
// the same file decode it once. Safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*cacheEntry)}
}

// Load loads and caches a texture by path. Failures are cached too, so a
// bad path reports the same error every time instead of retrying the disk.
func (c *Cache) Load(path string) (*image.NRGBA, error) {
	c.mu.RLock()
	entry, ok := c.items[path]
	c.mu.RUnlock()
	if ok {
		return entry.img, entry.err
	}

	img, err := Load(path)

	c.mu.Lock()
	if prev, ok := c.items[path]; ok {
		c.mu.Unlock()
		return prev.img, prev.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	c.mu.Unlock()
	return img, err
}
