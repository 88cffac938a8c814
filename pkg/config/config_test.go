package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manglekit/mangle/pkg/config"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 256, cfg.MaxBatchItems)
	assert.Equal(t, 8, cfg.BatchConcurrency)
	assert.Equal(t, 65536, cfg.MaxInputBytes)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("MANGLE_LISTEN_ADDR", "127.0.0.1:9999")
	t.Setenv("MANGLE_MAX_BATCH_ITEMS", "5")
	cfg, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.ListenAddr)
	assert.Equal(t, 5, cfg.MaxBatchItems)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mangle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: ':7070'\nbatch_concurrency: 2\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, 2, cfg.BatchConcurrency)
	assert.Equal(t, 256, cfg.MaxBatchItems, "untouched fields keep defaults")
}

func TestEnvironmentOutranksFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mangle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: ':7070'\n"), 0o600))
	t.Setenv("MANGLE_LISTEN_ADDR", ":6060")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.ListenAddr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	cfg.MaxBatchItems = 0
	assert.Error(t, cfg.Validate())

	cfg.MaxBatchItems = 10
	cfg.BodyLimit = 10
	assert.Error(t, cfg.Validate(), "body limit below input cap is rejected")
}
