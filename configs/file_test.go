package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
redis:
  addr: redis.internal:6380
  db: 3
  enable_tls: true
pubsub:
  project_id: loans-prod
  topic: loan-decisions
  enabled: true
`), 0o644))

	fc, err := LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", fc.Redis.Addr)
	assert.Equal(t, 3, fc.Redis.DB)
	assert.True(t, fc.Redis.EnableTLS)
	assert.Equal(t, "loans-prod", fc.PubSub.ProjectID)
	assert.True(t, fc.PubSub.Enabled)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyConfigFileKeepsEnvForEmptyFields(t *testing.T) {
	LoadEnvValues()
	t.Cleanup(LoadEnvValues)

	before := REDIS_ADDR
	applyConfigFile(&FileConfig{
		PubSub: PubSubConfig{ProjectID: "overridden"},
	})

	assert.Equal(t, before, REDIS_ADDR)
	assert.Equal(t, "overridden", PROJECT_ID)
}
