package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDenylist(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDenylist()

	require.NoError(t, d.Add(ctx, "live", time.Now().Add(time.Hour)))
	require.NoError(t, d.Add(ctx, "stale", time.Now().Add(-time.Minute)))

	ok, err := d.Contains(ctx, "live")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Contains(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = d.Contains(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryDenylist_PurgesExpired(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDenylist()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	require.NoError(t, d.Add(ctx, "a", now.Add(time.Minute)))
	now = now.Add(2 * time.Minute)
	require.NoError(t, d.Add(ctx, "b", now.Add(time.Minute)))

	assert.NotContains(t, d.entries, "a")
	assert.Contains(t, d.entries, "b")
}

func TestRedisDenylist(t *testing.T) {
	s := miniredis.RunT(t)
	d, err := NewRedisDenylist("redis://" + s.Addr())
	require.NoError(t, err)
	defer d.Close()

	ctx := context.Background()
	require.NoError(t, d.Add(ctx, "jti-1", time.Now().Add(time.Hour)))

	ok, err := d.Contains(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.Exists("jwt:denylist:jti-1"))

	s.FastForward(2 * time.Hour)
	ok, err = d.Contains(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisDenylist_SkipsExpiredToken(t *testing.T) {
	s := miniredis.RunT(t)
	d, err := NewRedisDenylist("redis://" + s.Addr())
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Add(context.Background(), "old", time.Now().Add(-time.Minute)))
	assert.False(t, s.Exists("jwt:denylist:old"))
}

func TestNewRedisDenylist_BadURL(t *testing.T) {
	_, err := NewRedisDenylist("not-a-url://")
	assert.Error(t, err)
}
