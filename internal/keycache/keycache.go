package keycache

import (
	"context"
	"sync"
	"time"
)

// KeyInfo is the public verification key issued by the session authority
// together with its expiry. A key is usable only while now < ExpiresAt.
type KeyInfo struct {
	PublicKey string `json:"publicKey"` // PEM-encoded public key material
	ExpiresAt int64  `json:"expiresAt"` // unix milliseconds
}

// Valid reports whether the key is still within its epoch at the given time.
func (k KeyInfo) Valid(now time.Time) bool {
	return now.UnixMilli() < k.ExpiresAt
}

// Cache holds the current signing key. Updates replace the whole value;
// under concurrent escalations the last write wins, which is safe because
// any authority-issued key is individually valid.
type Cache interface {
	// Current returns the cached key. ok is false when no key has been
	// stored yet or the stored key has expired.
	Current(ctx context.Context) (KeyInfo, bool)

	// Update unconditionally replaces the stored key. Safe to call
	// redundantly.
	Update(ctx context.Context, info KeyInfo) error
}

// MemoryCache is an in-process Cache. The zero value holds an
// already-expired key, so the first verification always escalates to the
// authority and fetches a fresh key.
type MemoryCache struct {
	mu   sync.RWMutex
	info KeyInfo
}

func NewMemoryCache() *MemoryCache { return &MemoryCache{} }

func (c *MemoryCache) Current(ctx context.Context) (KeyInfo, bool) {
	c.mu.RLock()
	info := c.info
	c.mu.RUnlock()
	if !info.Valid(time.Now()) {
		return KeyInfo{}, false
	}
	return info, true
}

func (c *MemoryCache) Update(ctx context.Context, info KeyInfo) error {
	c.mu.Lock()
	c.info = info
	c.mu.Unlock()
	return nil
}
