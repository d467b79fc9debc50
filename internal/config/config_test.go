package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StoreFile, cfg.Store.Kind)
	assert.Equal(t, ".menusys/menus", cfg.Store.Path)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Server.Metrics)
	assert.False(t, cfg.Strict)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := `
strict: true
format: yaml
store:
  kind: redis
  redis_addr: cache:6379
  ttl: 1h
server:
  addr: ":9000"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	t.Setenv("MENUSYS_STORE_REDIS_DB", "3")
	t.Setenv("MENUSYS_SERVER_METRICS", "false")
	t.Setenv("MENUSYS_DEBUG", "1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, StoreRedis, cfg.Store.Kind)
	assert.Equal(t, "cache:6379", cfg.Store.RedisAddr)
	assert.Equal(t, 3, cfg.Store.RedisDB)
	assert.Equal(t, time.Hour, cfg.Store.TTL)
	assert.Equal(t, "menusys:menu:", cfg.Store.Prefix, "defaults survive partial sections")
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.False(t, cfg.Server.Metrics)
}

func TestLoad_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("store:\n  kind: memory\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store.Kind)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]string{
		"unknown key":    "colour: red\n",
		"bad kind":       "store:\n  kind: s3\n",
		"bad format":     "format: json\n",
		"bad log format": "log_format: xml\n",
		"bad yaml":       "store: [\n",
		"bad duration":   "store:\n  ttl: soon\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
