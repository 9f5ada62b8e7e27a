package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("cache: not found")

func NewSet[T any](prefix string) *Set[T] {
	return &Set[T]{
		prefix: prefix + ":",
		c:      cache.New(cache.NoExpiration, time.Minute*10),
	}
}

// Set is a typed in-process memo over go-cache. The builder uses it for
// values that repeat across items within one run, such as compiled
// drop-search regex families shared by parents and their components.
type Set[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	prefix string

	c *cache.Cache
}

func (c *Set[T]) key(key string) string {
	return c.prefix + key
}

func (c *Set[T]) Get(key string) (T, error) {
	var zero T
	result, ok := c.c.Get(c.key(key))
	if !ok {
		return zero, ErrNotFound
	}
	return result.(T), nil
}

func (c *Set[T]) Set(key string, value T, expire time.Duration) {
	c.c.Set(c.key(key), value, expire)
}

// MutexGetSet gets the value for key, or if the key does not exist, executes
// valueFunc serially, stores the result and returns it. Serial dispatch keeps
// an expensive valueFunc from running more than once per key.
func (c *Set[T]) MutexGetSet(key string, valueFunc func() (T, error), expire time.Duration) (T, error) {
	if v, err := c.Get(key); err == nil {
		return v, nil
	}
	// onwards, cache key does not exist

	return c.slowMutexGetSet(key, valueFunc, expire)
}

func (c *Set[T]) slowMutexGetSet(key string, valueFunc func() (T, error), expire time.Duration) (T, error) {
	c.m.Lock()
	defer c.m.Unlock()

	if v, err := c.Get(key); err == nil {
		return v, nil
	}

	value, err := valueFunc()
	if err != nil {
		var zero T
		return zero, err
	}

	c.Set(key, value, expire)
	return value, nil
}
