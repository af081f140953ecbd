package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"globe/dodrio_loan_eligibility/internal/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachRequestDetailsGeneratesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachRequestDetails())

	var captured models.RequestDetails
	r.GET("/health", func(c *gin.Context) {
		captured, _ = c.Request.Context().Value(models.LogDetailsKey).(models.RequestDetails)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, captured.RequestID)
	_, err := uuid.Parse(captured.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, captured.RequestID, w.Header().Get("X-Correlation-ID"))
	assert.Equal(t, http.MethodGet, captured.HTTPMethod)
}

func TestAttachRequestDetailsHonorsCallerCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachRequestDetails())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Correlation-ID", "upstream-id-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-id-42", w.Header().Get("X-Correlation-ID"))
}

func TestMaskSensitiveData(t *testing.T) {
	masked := maskSensitiveData(map[string]interface{}{
		"Authorization": "Bearer secret",
		"Content-Type":  "application/json",
		"nested": map[string]interface{}{
			"Cookie": "session=abc",
			"safe":   "value",
		},
	}, []string{"Authorization", "Cookie"})

	assert.Equal(t, "*****", masked["Authorization"])
	assert.Equal(t, "application/json", masked["Content-Type"])
	nested := masked["nested"].(map[string]interface{})
	assert.Equal(t, "*****", nested["Cookie"])
	assert.Equal(t, "value", nested["safe"])
}
