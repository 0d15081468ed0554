package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is used when a non positive size is requested.
const DefaultSize = 512

// LRU is a size bounded, goroutine safe cache that evicts the least
// recently used entry first.
type LRU[K comparable, V any] struct {
	inner *lru.Cache[K, V]
}

func NewLRU[K comparable, V any](size int) (*LRU[K, V], error) {
	if size <= 0 {
		size = DefaultSize
	}
	inner, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache: %w", err)
	}
	return &LRU[K, V]{inner: inner}, nil
}

func (self *LRU[K, V]) Get(key K) (V, bool) {
	return self.inner.Get(key)
}

func (self *LRU[K, V]) Set(key K, value V) {
	self.inner.Add(key, value)
}

func (self *LRU[K, V]) Len() int {
	return self.inner.Len()
}


