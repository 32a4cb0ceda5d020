package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientIsAlwaysEmpty(t *testing.T) {
	var c *Client
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Close())
	assert.Error(t, c.Ping(ctx))

	var dst []string
	assert.False(t, c.GetJSON(ctx, "k", &dst))
	assert.NoError(t, c.SetJSON(ctx, "k", []string{"a"}, time.Minute))
}

func TestUnreachableRedisFailsSafe(t *testing.T) {
	// nothing listens on port 1
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.Error(t, c.Ping(ctx))
}

func TestJSONRoundTripAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", []string{}, time.Minute))
	var dst []string
	assert.True(t, c.GetJSON(ctx, "k", &dst))
	assert.NotNil(t, dst)
	assert.Empty(t, dst)

	mr.FastForward(2 * time.Minute)
	assert.False(t, c.GetJSON(ctx, "k", &dst))
}

func TestGenerationAndBump(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	defer c.Close()
	ctx := context.Background()

	assert.Equal(t, int64(0), c.Generation(ctx, "gen"))
	require.NoError(t, c.Bump(ctx, "gen"))
	require.NoError(t, c.Bump(ctx, "gen"))
	assert.Equal(t, int64(2), c.Generation(ctx, "gen"))

	var nilClient *Client
	assert.Equal(t, int64(0), nilClient.Generation(ctx, "gen"))
	assert.NoError(t, nilClient.Bump(ctx, "gen"))
}
