package translate

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// memoCache deduplicates translation calls within one run. Identical source
// strings show up across feeds, and a run is short-lived, so there is no
// expiry.
type memoCache struct {
	mu    sync.RWMutex
	items map[string]string
}

func newMemoCache() *memoCache {
	return &memoCache{items: make(map[string]string)}
}

func (c *memoCache) get(text string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key(text)]
	return v, ok
}

func (c *memoCache) set(text, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key(text)] = translated
}

func key(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:16])
}
