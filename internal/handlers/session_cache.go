// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package handlers

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSessionCacheSize is the number of session names kept in memory.
const DefaultSessionCacheSize = 1024

// SessionNameCache is a thread-safe LRU of session id to session name.
type SessionNameCache struct {
	cache *lru.Cache[int64, string]
}

// NewSessionNameCache creates a cache holding at most maxItems names.
func NewSessionNameCache(maxItems int) (*SessionNameCache, error) {
	if maxItems <= 0 {
		maxItems = DefaultSessionCacheSize
	}
	c, err := lru.New[int64, string](maxItems)
	if err != nil {
		return nil, err
	}
	return &SessionNameCache{cache: c}, nil
}

// Get returns the cached name of a session.
func (c *SessionNameCache) Get(sessionID int64) (string, bool) {
	return c.cache.Get(sessionID)
}

// Put adds or replaces the name of a session.
func (c *SessionNameCache) Put(sessionID int64, name string) {
	c.cache.Add(sessionID, name)
}

// Len returns the number of cached names.
func (c *SessionNameCache) Len() int {
	return c.cache.Len()
}
