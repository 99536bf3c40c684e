package service

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// RecordCache keeps recent list results per owner and resource. Refresh drops every
// cached list of a resource so the next read goes to the API.
type RecordCache struct {
	lru *expirable.LRU[string, interface{}]
}

// NewRecordCache creates a cache of up to size lists living for ttl
func NewRecordCache(size int, ttl time.Duration) *RecordCache {
	if size <= 0 {
		size = 1
	}
	return &RecordCache{lru: expirable.NewLRU[string, interface{}](size, nil, ttl)}
}

func cacheKey(owner, resource string) string {
	return owner + ":" + resource
}

// Get returns the cached list of resource for owner
func (c *RecordCache) Get(owner, resource string) (interface{}, bool) {
	return c.lru.Get(cacheKey(owner, resource))
}

// Put caches the list of resource for owner
func (c *RecordCache) Put(owner, resource string, records interface{}) {
	c.lru.Add(cacheKey(owner, resource), records)
}

// Refresh drops the cached lists of resource for every owner
func (c *RecordCache) Refresh(resource string) {
	suffix := ":" + resource
	for _, key := range c.lru.Keys() {
		if strings.HasSuffix(key, suffix) {
			c.lru.Remove(key)
		}
	}
}

var _ ListCache = (*RecordCache)(nil)
