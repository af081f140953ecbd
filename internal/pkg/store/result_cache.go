package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"globe/dodrio_loan_eligibility/internal/pkg/consts"
	"globe/dodrio_loan_eligibility/internal/pkg/logger"
	"globe/dodrio_loan_eligibility/internal/pkg/models"

	"github.com/redis/go-redis/v9"
)

// ResultCache keeps recent prediction results keyed by a digest of the
// applicant payload. The pipeline is deterministic, so identical payloads
// within the TTL can be answered without rescoring.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

// CacheKey digests the applicant record. json.Marshal sorts map keys, so the
// digest is stable across field order.
func CacheKey(applicant models.Applicant) string {
	raw, err := json.Marshal(applicant)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return consts.ResultCacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached result for a key, or nil on miss. Redis failures
// log and report a miss so the caller falls through to the predictor.
func (c *ResultCache) Get(ctx context.Context, key string) *models.PredictionResult {
	if c == nil || c.client == nil || key == "" {
		return nil
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		logger.Warn(ctx, "Result cache read failed: %v", err)
		return nil
	}

	var result models.PredictionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		logger.Warn(ctx, "Result cache entry is corrupt, dropping key %s: %v", key, err)
		c.client.Del(ctx, key)
		return nil
	}
	return &result
}

// Set stores a result under the key for the configured TTL. Failures log only.
func (c *ResultCache) Set(ctx context.Context, key string, result *models.PredictionResult) {
	if c == nil || c.client == nil || key == "" || result == nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		logger.Warn(ctx, "Result cache serialize failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warn(ctx, "Result cache write failed: %v", err)
	}
}
