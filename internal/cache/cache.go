package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Entity names used as cache key prefixes. Invalidation happens per
// entity, never by string-matching arbitrary URL substrings.
const (
	EntityRecyclingItems = "recycling_items"
	EntityCategories     = "categories"
)

// Store is a process-local TTL response cache keyed by (entity, request
// path). A mutation to an entity drops every key under that entity.
type Store struct {
	c *gocache.Cache
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{c: gocache.New(ttl, 10*time.Minute)}
}

func key(entity, path string) string {
	return fmt.Sprintf("%s:%s", entity, path)
}

func (s *Store) Get(entity, path string) ([]byte, bool) {
	v, ok := s.c.Get(key(entity, path))
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}

func (s *Store) Set(entity, path string, body []byte) {
	s.c.SetDefault(key(entity, path), body)
}

// InvalidateEntity removes every cached response for the given entity.
func (s *Store) InvalidateEntity(entity string) {
	prefix := entity + ":"
	for k := range s.c.Items() {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			s.c.Delete(k)
		}
	}
}
