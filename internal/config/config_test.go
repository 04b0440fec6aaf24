package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sharedinfra "ecomdash/internal/shared/infrastructure"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, SourceCSV, cfg.Data.Source)
	require.Equal(t, "ecommerce_data", cfg.Data.Dir)
	require.Equal(t, CacheSharded, cfg.Cache.Backend)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.Equal(t, 16, cfg.Cache.Shards)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 1000, cfg.Export.BatchSize)
	require.Equal(t, "localhost", cfg.DB.Host)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ECOMDASH_SOURCE", "postgres")
	t.Setenv("ECOMDASH_CACHE_BACKEND", "ttl")
	t.Setenv("ECOMDASH_CACHE_TTL", "30s")
	t.Setenv("ECOMDASH_LOG_FORMAT", "console")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, SourcePostgres, cfg.Data.Source)
	require.Equal(t, 30*time.Second, cfg.Cache.TTL)
	require.Equal(t, "console", cfg.App.LogFormat)
	require.Equal(t, sharedinfra.DBOptions{
		Host: "db.internal", Port: "6543", User: "ecomdash", Password: "ecomdash", Name: "ecomdash", SSLMode: "disable",
	}, cfg.DB.Options())

	cache := cfg.Cache.NewCache()
	defer cache.Close()
	_, ok := cache.(*sharedinfra.TTLCache)
	require.True(t, ok)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ECOMDASH_DATA_DIR=/srv/olist\nECOMDASH_HTTP_ADDR=:9090\n"), 0o644))
	t.Cleanup(func() {
		_ = os.Unsetenv("ECOMDASH_DATA_DIR")
		_ = os.Unsetenv("ECOMDASH_HTTP_ADDR")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/olist", cfg.Data.Dir)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"ECOMDASH_SOURCE":        "s3",
		"ECOMDASH_CACHE_BACKEND": "redis",
		"ECOMDASH_CACHE_SHARDS":  "12",
		"ECOMDASH_LOG_LEVEL":     "verbose",
		"ECOMDASH_CACHE_TTL":     "soon",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
		})
	}
}
