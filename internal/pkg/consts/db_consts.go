package consts

const (
	PredictionsCollection = "predictions"
)

// ResultCacheKeyPrefix namespaces cached prediction results in Redis.
const ResultCacheKeyPrefix = "loaneligibility:result:"

// RateLimitKeyPrefix namespaces per-client rate-limit windows in Redis.
const RateLimitKeyPrefix = "loaneligibility:ratelimit:"

// SensitiveKeys are masked before request headers are logged.
var SensitiveKeys = []string{"Authorization", "X-Api-Key", "Cookie", "Proxy-Authorization"}
