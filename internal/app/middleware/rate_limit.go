package middleware

import (
	"fmt"
	"net/http"
	"time"

	"globe/dodrio_loan_eligibility/internal/pkg/common"
	"globe/dodrio_loan_eligibility/internal/pkg/consts"
	"globe/dodrio_loan_eligibility/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit enforces a fixed per-minute window per client IP backed by Redis
// INCR/EXPIRE. Redis being down fails open so an infra hiccup never blocks
// predictions.
func RateLimit(client *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || perMinute <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		window := time.Now().UTC().Format("200601021504")
		key := fmt.Sprintf("%s%s:%s", consts.RateLimitKeyPrefix, c.ClientIP(), window)

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn(ctx, "Rate limiter unavailable, allowing request: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, time.Minute)
		}

		if count > int64(perMinute) {
			logger.Warn(ctx, "Rate limit exceeded for %s (%d/%d)", c.ClientIP(), count, perMinute)
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				common.SerializeErrorResponse(consts.ErrorRateLimitExceeded.Message, nil))
			return
		}

		c.Next()
	}
}
