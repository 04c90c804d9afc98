// file: cmd/cache_test.go
// version: 1.0.0
// guid: 5c0f3d8a-9e4b-4a7c-8f2d-6b1e9c4f7a3d

package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/frenchtools/cj/internal/cache"
	"github.com/frenchtools/cj/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCacheEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origConfig := config.AppConfig
	origName := cacheName
	config.AppConfig = config.Config{
		CacheDir:                dir,
		ConjugationMaxAgeDays:   30,
		WordReferenceMaxAgeDays: 7,
		LarousseMaxAgeDays:      14,
	}
	t.Cleanup(func() {
		config.AppConfig = origConfig
		cacheName = origName
	})
	return dir
}

func TestCacheStatsEmpty(t *testing.T) {
	setupCacheEnv(t)

	var out bytes.Buffer
	cacheStatsCmd.SetOut(&out)
	require.NoError(t, cacheStatsCmd.RunE(cacheStatsCmd, nil))
	assert.Contains(t, out.String(), "No cached data found")
}

func TestCacheStatsWithEntries(t *testing.T) {
	dir := setupCacheEnv(t)
	s := cache.Open(dir, cache.NamespaceConjugation, time.Hour)
	s.Set("v", "manger", "all")

	var out bytes.Buffer
	cacheStatsCmd.SetOut(&out)
	require.NoError(t, cacheStatsCmd.RunE(cacheStatsCmd, nil))
	assert.Contains(t, out.String(), "conjugation")
	assert.Contains(t, out.String(), "Total: 1 entries")
}

func TestCacheClear(t *testing.T) {
	dir := setupCacheEnv(t)
	s := cache.Open(dir, cache.NamespaceConjugation, time.Hour)
	s.Set("v", "manger", "all")

	var out bytes.Buffer
	cacheClearCmd.SetOut(&out)
	require.NoError(t, cacheClearCmd.RunE(cacheClearCmd, nil))
	assert.Contains(t, out.String(), "Cleared 1 cache(s)")

	again := cache.Open(dir, cache.NamespaceConjugation, time.Hour)
	_, ok := again.Get("manger", "all")
	assert.False(t, ok)
}

func TestCacheClearNothing(t *testing.T) {
	setupCacheEnv(t)

	var out bytes.Buffer
	cacheClearCmd.SetOut(&out)
	require.NoError(t, cacheClearCmd.RunE(cacheClearCmd, nil))
	assert.Contains(t, out.String(), "No caches to clear")
}

func TestCacheCleanupNothing(t *testing.T) {
	setupCacheEnv(t)

	var out bytes.Buffer
	cacheCleanupCmd.SetOut(&out)
	require.NoError(t, cacheCleanupCmd.RunE(cacheCleanupCmd, nil))
	assert.Contains(t, out.String(), "No expired entries found")
}

func TestOpenStoresByName(t *testing.T) {
	setupCacheEnv(t)

	cacheName = cache.NamespaceLarousse
	stores, err := openStores()
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, cache.NamespaceLarousse, stores[0].Name())
}

func TestOpenStoresUnknownName(t *testing.T) {
	setupCacheEnv(t)

	cacheName = "nope"
	_, err := openStores()
	assert.Error(t, err)
}

func TestOpenStoresAll(t *testing.T) {
	setupCacheEnv(t)

	stores, err := openStores()
	require.NoError(t, err)
	assert.Len(t, stores, len(cache.KnownNamespaces))
}

func TestAliasesCommand(t *testing.T) {
	var out bytes.Buffer
	aliasesCmd.SetOut(&out)
	require.NoError(t, aliasesCmd.RunE(aliasesCmd, nil))
	s := out.String()
	assert.Contains(t, s, "futur simple")
	assert.Contains(t, s, "fut")
	assert.Contains(t, s, "elles")
}
