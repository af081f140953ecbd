package redis

import (
	"context"
	"crypto/tls"
	"testing"
	"time"

	"globe/dodrio_loan_eligibility/configs"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() configs.RedisConfig {
	return configs.RedisConfig{
		Addr:           "localhost:6379",
		DB:             0,
		ConnectTimeout: time.Second,
	}
}

func TestConnectToRedisSuccess(t *testing.T) {
	db, mockClient := redismock.NewClientMock()
	mockClient.ExpectPing().SetVal("PONG")

	client, err := ConnectToRedis(context.Background(), testConfig(),
		func(opt *redis.Options) *redis.Client { return db })

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, db, client.Client)
	assert.NoError(t, mockClient.ExpectationsWereMet())
}

func TestConnectToRedisPingFailure(t *testing.T) {
	db, mockClient := redismock.NewClientMock()
	mockClient.ExpectPing().SetErr(redis.ErrClosed)

	client, err := ConnectToRedis(context.Background(), testConfig(),
		func(opt *redis.Options) *redis.Client { return db })

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestBuildTLSConfigWithoutCert(t *testing.T) {
	cfg := testConfig()
	cfg.EnableTLS = true

	tlsConfig, err := buildTLSConfig(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, uint16(tls.VersionTLS12), tlsConfig.MinVersion)
	assert.Empty(t, tlsConfig.Certificates)
}

func TestBuildTLSConfigRejectsGarbagePEM(t *testing.T) {
	cfg := testConfig()
	cfg.EnableTLS = true
	cfg.CertContent = "not a pem block"

	_, err := buildTLSConfig(context.Background(), cfg)

	assert.Error(t, err)
}
