package pcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPCache_GetSet(t *testing.T) {
	cache, err := NewPCache(1<<10, 1<<4)
	assert.NoError(t, err)

	key1 := "some key"
	key2 := "other key"

	// initially, should get nothing as this key was not set
	_, ok := cache.Get(key1)
	assert.False(t, ok)

	// set it now
	ok = cache.Set(key1, 27, 4)
	assert.True(t, ok)
	cache.Wait()

	// should get it
	v, ok := cache.Get(key1)
	assert.True(t, ok)
	assert.Equal(t, 27, v)

	// set a key with TTL
	ok = cache.SetWithTTL(key2, 64, 4, 100*time.Millisecond)
	assert.True(t, ok)
	cache.Wait()

	// should get it
	v, ok = cache.Get(key2)
	assert.True(t, ok)
	assert.Equal(t, 64, v)

	// can get its ttl, should be less or equal to initial ttl
	ttl, ok := cache.GetTTL(key2)
	assert.True(t, ok)
	assert.LessOrEqual(t, ttl, 100*time.Millisecond)

	// should expire
	time.Sleep(150 * time.Millisecond)
	_, ok = cache.Get(key2)
	assert.False(t, ok)
}

func TestPCache_Clear(t *testing.T) {
	cache, err := NewPCache(1<<10, 1<<4)
	assert.NoError(t, err)

	ok := cache.Set("k", "v", 1)
	assert.True(t, ok)
	cache.Wait()

	_, ok = cache.Get("k")
	assert.True(t, ok)

	cache.Clear()
	_, ok = cache.Get("k")
	assert.False(t, ok)
}
