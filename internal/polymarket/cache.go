package polymarket

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Cache provides simple file-based caching for data-api responses, so
// re-running a batch does not re-fetch every wallet's full history.
type Cache struct {
	cacheDir string
	ttl      time.Duration
	mu       sync.RWMutex
}

type cacheEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// NewCache creates a cache instance rooted at cacheDir.
func NewCache(cacheDir string, ttl time.Duration) *Cache {
	if cacheDir == "" {
		cacheDir = "cache/polymarket"
	}

	os.MkdirAll(cacheDir, 0755)

	return &Cache{
		cacheDir: cacheDir,
		ttl:      ttl,
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cacheFile := c.cacheFilePath(key)

	info, err := os.Stat(cacheFile)
	if err != nil {
		return nil, false
	}

	if time.Since(info.ModTime()) > c.ttl {
		os.Remove(cacheFile)
		return nil, false
	}

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	return entry.Data, true
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cacheEntry{
		Key:       key,
		Data:      data,
		Timestamp: time.Now(),
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return os.WriteFile(c.cacheFilePath(key), entryData, 0644)
}

// GetOrFetch retrieves from cache or fetches using the provided function.
func (c *Cache) GetOrFetch(key string, fetchFn func() ([]byte, error)) ([]byte, error) {
	if data, ok := c.Get(key); ok {
		return data, nil
	}

	data, err := fetchFn()
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors)
	c.Set(key, data)

	return data, nil
}

// CleanupExpired removes expired cache entries.
func (c *Cache) CleanupExpired() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if time.Since(info.ModTime()) > c.ttl {
			os.Remove(filepath.Join(c.cacheDir, entry.Name()))
		}
	}

	return nil
}

func (c *Cache) cacheFilePath(key string) string {
	hash := md5.Sum([]byte(key))
	filename := fmt.Sprintf("%x.json", hash)
	return filepath.Join(c.cacheDir, filename)
}
