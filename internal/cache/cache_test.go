package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	a := Key("en_US", "teh")
	assert.True(t, strings.HasPrefix(a, "commentspell:v1:"))
	assert.Equal(t, a, Key("en_US", "teh"))
	assert.NotEqual(t, a, Key("en_GB", "teh"))
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_, found := c.Get("k")
	assert.False(t, found)

	require.NoError(t, c.Set("k", []byte("v"), 0))
	val, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, "v", string(val))
	assert.Equal(t, 1, c.ItemCount())

	require.NoError(t, c.Delete("k"))
	_, found = c.Get("k")
	assert.False(t, found)

	require.NoError(t, c.Set("a", []byte("1"), 0))
	require.NoError(t, c.Clear())
	assert.Equal(t, 0, c.ItemCount())
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	require.NoError(t, c.Set("k", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, found := c.Get("k")
	assert.False(t, found)
}

func TestDiskCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c := NewDiskCache(dir, time.Hour)

	key := Key("en_US", "teh")
	_, found := c.Get(key)
	assert.False(t, found)

	require.NoError(t, c.Set(key, []byte(`["the","tea"]`), 0))
	val, found := c.Get(key)
	require.True(t, found)
	assert.Equal(t, `["the","tea"]`, string(val))

	// survives a new instance
	val, found = NewDiskCache(dir, time.Hour).Get(key)
	require.True(t, found)
	assert.Equal(t, `["the","tea"]`, string(val))

	require.NoError(t, c.Delete(key))
	require.NoError(t, c.Delete(key), "deleting a missing key is not an error")
	_, found = c.Get(key)
	assert.False(t, found)

	require.NoError(t, c.Set(key, []byte("x"), 0))
	require.NoError(t, c.Clear())
	_, err := os.Stat(dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiskCache_ExpiredAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	require.NoError(t, c.Set("old", []byte("v"), -time.Second))
	_, found := c.Get("old")
	assert.False(t, found)
	_, err := os.Stat(c.path("old"))
	assert.ErrorIs(t, err, os.ErrNotExist, "expired entries are removed")

	require.NoError(t, os.WriteFile(c.path("bad"), []byte("{not json"), 0644))
	_, found = c.Get("bad")
	assert.False(t, found)
}

func TestDiskCache_KeyIsFileSafe(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	require.NoError(t, c.Set("a/b:c", []byte("v"), 0))

	val, found := c.Get("a/b:c")
	require.True(t, found)
	assert.Equal(t, "v", string(val))
	assert.NotContains(t, filepath.Base(c.path("a/b:c")), ":")
}

func TestLayeredCache(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)

	require.NoError(t, c.Set("k", []byte("v"), 0))
	val, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, "v", string(val))

	// a fresh layered cache finds the value on disk and promotes it
	fresh := NewLayeredCache(time.Minute, dir, time.Hour)
	val, found = fresh.Get("k")
	require.True(t, found)
	assert.Equal(t, "v", string(val))
	val, found = fresh.memory.Get("k")
	require.True(t, found)
	assert.Equal(t, "v", string(val))

	require.NoError(t, fresh.Delete("k"))
	_, found = fresh.Get("k")
	assert.False(t, found)

	require.NoError(t, c.Clear())
}
