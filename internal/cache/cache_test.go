package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyURLDisablesCache(t *testing.T) {
	c, err := New("", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNew_BadURL(t *testing.T) {
	_, err := New("not-a-redis-url", time.Minute)
	assert.Error(t, err)
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var out []string
	assert.False(t, c.GetJSON(ctx, "k", &out))

	// no-ops, no panics
	c.SetJSON(ctx, "k", []string{"v"})
	c.Delete(ctx, "k")
}
