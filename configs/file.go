package configs

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML overlay pointed at by CONFIG_FILE.
// Deployments that mount secrets as files use it instead of raw env vars;
// anything left empty keeps the env-derived value.
type FileConfig struct {
	Redis  RedisConfig  `yaml:"redis"`
	PubSub PubSubConfig `yaml:"pubsub"`
}

func LoadConfigFile(path string) (*FileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

func applyConfigFile(fc *FileConfig) {
	if fc == nil {
		return
	}

	if fc.Redis.Addr != "" {
		REDIS_ADDR = fc.Redis.Addr
	}
	if fc.Redis.Password != "" {
		REDIS_PASSWORD = fc.Redis.Password
	}
	if fc.Redis.DB != 0 {
		REDIS_DB = fc.Redis.DB
	}
	if fc.Redis.EnableTLS {
		REDIS_ENABLE_TLS = true
	}
	if fc.Redis.CertContent != "" {
		REDIS_CERT_CONTENT = fc.Redis.CertContent
	}

	if fc.PubSub.ProjectID != "" {
		PROJECT_ID = fc.PubSub.ProjectID
	}
	if fc.PubSub.Topic != "" {
		PUBSUB_TOPIC = fc.PubSub.Topic
	}
	if fc.PubSub.Enabled {
		PUBSUB_ENABLED = true
	}
}
