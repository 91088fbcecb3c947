package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "word_output", cfg.OutputDir)
	assert.False(t, cfg.IncludeAffidavits)
	assert.False(t, cfg.ObjectStore.Enabled())
}

func TestMergeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
serverPort: "9090"
dbDriver: postgres
databaseUrl: postgres://registry@localhost/registry
includeAffidavits: true
objectStore:
  endpoint: localhost:9000
  bucket: bundles
`), 0o644))

	cfg := Defaults()
	require.NoError(t, cfg.mergeFile(path))
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.True(t, cfg.IncludeAffidavits)
	assert.True(t, cfg.ObjectStore.Enabled())
	// 文件中未出现的字段保留默认值
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestMergeFile_Errors(t *testing.T) {
	cfg := Defaults()
	assert.Error(t, cfg.mergeFile(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serverPort: [unterminated"), 0o644))
	assert.Error(t, cfg.mergeFile(path))
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("OUTPUT_DIR", "/tmp/bundles")
	t.Setenv("INCLUDE_AFFIDAVITS", "true")
	t.Setenv("OBJECT_STORE_USE_SSL", "not-a-bool")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Defaults()
	cfg.ObjectStore.UseSSL = true
	cfg.applyEnvOverrides()

	assert.Equal(t, "7000", cfg.ServerPort)
	assert.Equal(t, "/tmp/bundles", cfg.OutputDir)
	assert.True(t, cfg.IncludeAffidavits)
	assert.True(t, cfg.ObjectStore.UseSSL, "invalid bool is ignored")
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "sqlite", cfg.DBDriver)
}

func TestObjectStoreConfig_Enabled(t *testing.T) {
	assert.False(t, ObjectStoreConfig{Endpoint: "localhost:9000"}.Enabled())
	assert.False(t, ObjectStoreConfig{Endpoint: " ", Bucket: "b"}.Enabled())
	assert.True(t, ObjectStoreConfig{Endpoint: "localhost:9000", Bucket: "b"}.Enabled())
}
