package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl int) *Cache {
	t.Helper()
	c, err := New(true, t.TempDir(), ttl)
	require.NoError(t, err)
	return c
}

func TestCache_PutGet(t *testing.T) {
	c := newTestCache(t, 3600)
	payload := json.RawMessage(`[{"fileName":"a.xlsx","changeType":"ADDED"}]`)

	require.NoError(t, c.Put(CommitKey("abc123"), payload))

	got, ok := c.Get(CommitKey("abc123"))
	require.True(t, ok)
	assert.JSONEq(t, string(payload), string(got))

	_, ok = c.Get(PRKey(7))
	assert.False(t, ok)
}

func TestCache_PutInvalidJSON(t *testing.T) {
	c := newTestCache(t, 0)
	assert.Error(t, c.Put("k", json.RawMessage(`{broken`)))
}

func TestCache_TTLExpiration(t *testing.T) {
	c := newTestCache(t, 60)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Put("k", json.RawMessage(`{}`)))

	now = now.Add(30 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok, "within TTL")

	now = now.Add(time.Minute)
	stats, err := c.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Expired)

	_, ok = c.Get("k")
	assert.False(t, ok, "expired")
	_, err = os.Stat(c.entryPath("k"))
	assert.True(t, os.IsNotExist(err), "expired entry is removed")
}

func TestCache_NoTTL(t *testing.T) {
	c := newTestCache(t, 0)
	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Put("k", json.RawMessage(`1`)))
	now = now.Add(24 * 365 * time.Hour)

	_, ok := c.Get("k")
	assert.True(t, ok)
}

func TestCache_Disabled(t *testing.T) {
	c, err := New(false, "", 3600)
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	require.NoError(t, c.Put("k", json.RawMessage(`{}`)))
	_, ok := c.Get("k")
	assert.False(t, ok)

	n, err := c.Clear()
	require.NoError(t, err)
	assert.Zero(t, n)

	stats, err := c.GetStats()
	require.NoError(t, err)
	assert.Zero(t, stats.Entries)
}

func TestCache_Clear(t *testing.T) {
	c := newTestCache(t, 0)
	require.NoError(t, c.Put(CommitKey("a"), json.RawMessage(`[]`)))
	require.NoError(t, c.Put(PRKey(1), json.RawMessage(`[]`)))
	require.NoError(t, os.WriteFile(filepath.Join(c.Dir(), "keep.txt"), []byte("x"), 0o644))

	n, err := c.Clear()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = os.Stat(filepath.Join(c.Dir(), "keep.txt"))
	assert.NoError(t, err, "non-entry files are left alone")
}

func TestCache_GetStats(t *testing.T) {
	c := newTestCache(t, 3600)
	require.NoError(t, c.Put("a", json.RawMessage(`{"x":1}`)))
	require.NoError(t, c.Put("b", json.RawMessage(`{"y":2}`)))

	stats, err := c.GetStats()
	require.NoError(t, err)
	assert.Equal(t, c.Dir(), stats.Dir)
	assert.Equal(t, 2, stats.Entries)
	assert.Positive(t, stats.TotalBytes)
	assert.Zero(t, stats.Expired)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "commit:deadbeef", CommitKey("deadbeef"))
	assert.Equal(t, "pr:42", PRKey(42))
	assert.NotEqual(t, HashKey(CommitKey("1")), HashKey(PRKey(1)))
	assert.Len(t, HashKey("x"), 64)
}

func TestDefaultCacheDir_XDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/custom/cache")
	dir, err := defaultCacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/cache", "sheetdiff"), dir)
}
