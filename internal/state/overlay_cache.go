package state

import (
	"image"
	"sort"
	"sync"
)

// OverlayCache maps overlay ids to decoded images. Entries are added once and
// kept for the life of the process.
type OverlayCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

func NewOverlayCache() *OverlayCache {
	return &OverlayCache{images: map[string]image.Image{}}
}

func (cache *OverlayCache) Get(id string) (image.Image, bool) {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	img, ok := cache.images[id]
	return img, ok
}

// Put stores img under id unless id is already cached. It reports whether
// the entry was added.
func (cache *OverlayCache) Put(id string, img image.Image) bool {
	if img == nil {
		return false
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if _, ok := cache.images[id]; ok {
		return false
	}
	cache.images[id] = img
	return true
}

func (cache *OverlayCache) Len() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.images)
}

// IDs returns the cached ids, sorted.
func (cache *OverlayCache) IDs() []string {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	out := make([]string, 0, len(cache.images))
	for id := range cache.images {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
