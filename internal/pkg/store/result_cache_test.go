package store

import (
	"context"
	"testing"
	"time"

	"globe/dodrio_loan_eligibility/internal/pkg/consts"
	"globe/dodrio_loan_eligibility/internal/pkg/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func sampleApplicant() models.Applicant {
	return models.Applicant{
		"loan_type":      "personalLoan",
		"age":            float64(30),
		"monthly_income": float64(50000),
	}
}

func TestCacheKeyIsStable(t *testing.T) {
	first := CacheKey(sampleApplicant())
	second := CacheKey(sampleApplicant())

	assert.Equal(t, first, second)
	assert.Contains(t, first, consts.ResultCacheKeyPrefix)
}

func TestCacheKeyChangesWithPayload(t *testing.T) {
	a := sampleApplicant()
	b := sampleApplicant()
	b["age"] = float64(31)

	assert.NotEqual(t, CacheKey(a), CacheKey(b))
}

func TestResultCacheRoundTrip(t *testing.T) {
	cache := NewResultCache(testRedis(t), time.Minute)
	ctx := context.Background()
	key := CacheKey(sampleApplicant())

	result := &models.PredictionResult{
		Status:              "success",
		LoanType:            "personalLoan",
		Approved:            true,
		ApprovalProbability: 82.0,
		LoanGrade:           "A (Very Good)",
		SanctionedAmount:    400000,
		RejectionReasons:    []string{},
	}

	assert.Nil(t, cache.Get(ctx, key))
	cache.Set(ctx, key, result)

	cached := cache.Get(ctx, key)
	require.NotNil(t, cached)
	assert.Equal(t, result.LoanGrade, cached.LoanGrade)
	assert.Equal(t, result.SanctionedAmount, cached.SanctionedAmount)
	assert.True(t, cached.Approved)
}

func TestResultCacheDropsCorruptEntry(t *testing.T) {
	client := testRedis(t)
	cache := NewResultCache(client, time.Minute)
	ctx := context.Background()
	key := CacheKey(sampleApplicant())

	require.NoError(t, client.Set(ctx, key, "{not json", time.Minute).Err())

	assert.Nil(t, cache.Get(ctx, key))
	// the bad entry was evicted
	err := client.Get(ctx, key).Err()
	assert.ErrorIs(t, err, redis.Nil)
}

func TestResultCacheNilSafety(t *testing.T) {
	var cache *ResultCache
	ctx := context.Background()

	assert.Nil(t, cache.Get(ctx, "anything"))
	cache.Set(ctx, "anything", &models.PredictionResult{})
}
