package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	s := NewSet[int]("test")

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	s.Set("hit", 42, time.Minute)
	v, err := s.Get("hit")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestMutexGetSetSingleFlight(t *testing.T) {
	s := NewSet[string]("test")

	var calls int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.MutexGetSet("key", func() (string, error) {
				atomic.AddInt32(&calls, 1)
				return "value", nil
			}, time.Minute)
			assert.NoError(t, err)
			assert.Equal(t, "value", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSetPrefixIsolation(t *testing.T) {
	a := NewSet[int]("a")
	b := NewSet[int]("b")

	a.Set("key", 1, time.Minute)
	_, err := b.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)
}
