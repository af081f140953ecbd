package handlers

import (
	"net/http"

	"globe/dodrio_loan_eligibility/configs"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	modelLoaded bool
}

func NewHealthHandler(modelLoaded bool) *HealthHandler {
	return &HealthHandler{modelLoaded: modelLoaded}
}

// Root reports the service banner. Always 200; the front end uses it as a
// reachability probe.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": configs.SERVICE_NAME,
		"version": configs.SERVICE_VERSION,
		"status":  "running",
	})
}

// Health reports readiness. Degraded startup (artifacts missing) answers 503
// so load balancers stop routing prediction traffic here.
func (h *HealthHandler) Health(c *gin.Context) {
	if !h.modelLoaded {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":       "degraded",
			"model_loaded": false,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"model_loaded": true,
	})
}
