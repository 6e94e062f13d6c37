package odfgen

import (
	"container/list"
	"os"
	"sync"
	"time"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/xml"
)

// CacheConfig contains configuration options for the fragment cache
type CacheConfig struct {
	// MaxSize is the maximum number of fragment files to cache. 0 disables caching.
	MaxSize int
	// TTL is the time-to-live for cached fragment files. 0 means no expiration.
	TTL time.Duration
}

// FragmentCache keeps parsed fragment files so that suites reusing the same
// file parse it once. Cached elements are shared: callers must treat them as
// read-only, which Merge does by importing copies.
type FragmentCache struct {
	mu     sync.Mutex
	cache  map[string]*cacheEntry
	lru    *list.List
	config CacheConfig
}

type cacheEntry struct {
	key       string
	fragments []*xml.Element
	expiry    time.Time
	element   *list.Element
}

// NewFragmentCache creates a fragment cache sized from config
func NewFragmentCache(config *Config) *FragmentCache {
	config = NewConfigWithDefaults(config)
	size := config.CacheMaxSize
	if config.NoCache {
		size = 0
	}
	return NewFragmentCacheWithConfig(CacheConfig{
		MaxSize: size,
		TTL:     config.CacheTTL,
	})
}

// NewFragmentCacheWithConfig creates a fragment cache with the given configuration
func NewFragmentCacheWithConfig(config CacheConfig) *FragmentCache {
	return &FragmentCache{
		cache:  make(map[string]*cacheEntry),
		lru:    list.New(),
		config: config,
	}
}

// Load returns the fragments parsed from the file at path, reading and
// parsing it only on a cache miss
func (fc *FragmentCache) Load(path string) ([]*xml.Element, error) {
	if fragments, ok := fc.Get(path); ok {
		return fragments, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	defer f.Close()

	fragments, err := xml.ParseElements(f)
	if err != nil {
		return nil, NewDocumentError("parse", path, err)
	}

	fc.Set(path, fragments)
	return fragments, nil
}

// Get retrieves fragments from the cache
func (fc *FragmentCache) Get(key string) ([]*xml.Element, bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	entry, exists := fc.cache[key]
	if !exists {
		return nil, false
	}

	if fc.config.TTL > 0 && time.Now().After(entry.expiry) {
		fc.removeLocked(entry)
		return nil, false
	}

	fc.lru.MoveToFront(entry.element)
	return entry.fragments, true
}

// Set stores fragments in the cache, evicting the least recently used entry when full
func (fc *FragmentCache) Set(key string, fragments []*xml.Element) {
	if fc.config.MaxSize == 0 {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if existing, ok := fc.cache[key]; ok {
		fc.removeLocked(existing)
	}

	if fc.lru.Len() >= fc.config.MaxSize {
		if oldest := fc.lru.Back(); oldest != nil {
			fc.removeLocked(oldest.Value.(*cacheEntry))
		}
	}

	entry := &cacheEntry{
		key:       key,
		fragments: fragments,
	}
	if fc.config.TTL > 0 {
		entry.expiry = time.Now().Add(fc.config.TTL)
	}
	entry.element = fc.lru.PushFront(entry)
	fc.cache[key] = entry
}

// Remove removes an entry from the cache
func (fc *FragmentCache) Remove(key string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if entry, ok := fc.cache[key]; ok {
		fc.removeLocked(entry)
	}
}

// Clear removes all entries from the cache
func (fc *FragmentCache) Clear() {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.cache = make(map[string]*cacheEntry)
	fc.lru.Init()
}

// Size returns the current number of cached files
func (fc *FragmentCache) Size() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.lru.Len()
}

func (fc *FragmentCache) removeLocked(entry *cacheEntry) {
	fc.lru.Remove(entry.element)
	delete(fc.cache, entry.key)
}
