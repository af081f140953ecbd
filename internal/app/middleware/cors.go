package middleware

import (
	"net/http"

	"globe/dodrio_loan_eligibility/internal/pkg/common"
	"globe/dodrio_loan_eligibility/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// Cors reflects the origin back for allow-listed origins and answers
// preflight requests. Requests without an Origin header (curl, server to
// server) pass through untouched.
func Cors(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && contains(allowedOrigins, origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Correlation-ID")
			c.Writer.Header().Set("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// EnforceTrustedOrigin rejects mutating browser requests from origins
// outside the allow list. Reads and requests without an Origin header are
// let through.
func EnforceTrustedOrigin(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" || contains(allowedOrigins, origin) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			common.SerializeErrorResponse(consts.ErrorOriginNotTrusted.Message, nil))
	}
}
