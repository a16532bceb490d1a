package cart

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/reborn-nursery/storefront/internal/cache"
)

// Store persists carts keyed by session ID. Get returns nil when no cart
// exists for the session.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// KeyMutex serializes mutations per session via striped locking.
type KeyMutex struct {
	shards [64]sync.Mutex
}

// Lock acquires the shard for the key and returns its unlock func.
func (m *KeyMutex) Lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	shard := &m.shards[h.Sum32()%uint32(len(m.shards))]
	shard.Lock()
	return shard.Unlock
}

type memoryEntry struct {
	cart      *Cart
	expiresAt time.Time
}

// MemoryStore keeps carts in process memory. Used when Redis is disabled
// and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemoryStore creates an in-memory store with the given session TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 168 * time.Hour
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

// Get returns the session's cart, or nil when absent or expired.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Cart, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()
		return nil, nil
	}
	clone := *entry.cart
	clone.Items = append([]Item(nil), entry.cart.Items...)
	return &clone, nil
}

// Save stores the cart and refreshes its TTL.
func (s *MemoryStore) Save(_ context.Context, c *Cart) error {
	if c == nil || c.SessionID == "" {
		return fmt.Errorf("cart session id is required")
	}
	clone := *c
	clone.Items = append([]Item(nil), c.Items...)
	s.mu.Lock()
	s.entries[c.SessionID] = memoryEntry{
		cart:      &clone,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return nil
}

// Delete removes the session's cart.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

// RedisStore keeps carts in Redis so sessions survive restarts and are
// shared across instances.
type RedisStore struct {
	ttl time.Duration
}

// NewRedisStore creates a Redis-backed store with the given session TTL.
func NewRedisStore(ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 168 * time.Hour
	}
	return &RedisStore{ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:session:" + sessionID
}

// Get returns the session's cart, or nil when absent.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	var c Cart
	found, err := cache.GetJSON(ctx, cartKey(sessionID), &c)
	if err != nil {
		return nil, fmt.Errorf("cart read failed: %w", err)
	}
	if !found {
		return nil, nil
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return &c, nil
}

// Save stores the cart and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, c *Cart) error {
	if c == nil || c.SessionID == "" {
		return fmt.Errorf("cart session id is required")
	}
	if err := cache.SetJSON(ctx, cartKey(c.SessionID), c, s.ttl); err != nil {
		return fmt.Errorf("cart write failed: %w", err)
	}
	return nil
}

// Delete removes the session's cart.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := cache.Del(ctx, cartKey(sessionID)); err != nil {
		return fmt.Errorf("cart delete failed: %w", err)
	}
	return nil
}
