package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"globe/dodrio_loan_eligibility/internal/pkg/audit"
	"globe/dodrio_loan_eligibility/internal/pkg/common"
	"globe/dodrio_loan_eligibility/internal/pkg/consts"
	"globe/dodrio_loan_eligibility/internal/pkg/logger"
	"globe/dodrio_loan_eligibility/internal/pkg/models"
	"globe/dodrio_loan_eligibility/internal/pkg/store"

	"github.com/gin-gonic/gin"
)

// PredictorService is the prediction pipeline as the handler sees it.
type PredictorService interface {
	Predict(ctx context.Context, applicant models.Applicant) (*models.PredictionResult, error)
}

// PredictionStore reads back, aggregates and erases persisted prediction
// records.
type PredictionStore interface {
	FindByRequestID(ctx context.Context, requestID string) (models.PredictionRecord, error)
	DeleteByRequestID(ctx context.Context, requestID string) error
	CountSince(ctx context.Context, since time.Time, approvedOnly bool) (int64, error)
	FindSince(ctx context.Context, since time.Time) ([]models.PredictionRecord, error)
}

// summaryWindow is how far back the decisions summary looks.
const summaryWindow = 24 * time.Hour

type PredictionHandler struct {
	service     PredictorService
	cache       *store.ResultCache
	audit       *audit.AuditService
	predictions PredictionStore
}

func NewPredictionHandler(service PredictorService, cache *store.ResultCache, auditService *audit.AuditService, predictions PredictionStore) *PredictionHandler {
	return &PredictionHandler{service: service, cache: cache, audit: auditService, predictions: predictions}
}

// Predict scores one application. 400 covers schema violations, 422 covers
// records the pipeline's own validator rejected, 503 means the model never
// loaded, 500 means the pipeline broke mid-flight.
func (h *PredictionHandler) Predict(c *gin.Context) {
	ctx := c.Request.Context()

	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable,
			common.SerializeErrorResponse(consts.ErrorModelNotLoaded.Message, nil))
		return
	}

	var body models.PredictRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest,
			common.SerializeErrorResponse("Invalid request payload", []string{err.Error()}))
		return
	}
	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest,
			common.SerializeErrorResponse("Invalid request payload", []string{err.Error()}))
		return
	}

	applicant := body.ToApplicant()

	cacheKey := store.CacheKey(applicant)
	if cached := h.cache.Get(ctx, cacheKey); cached != nil {
		logger.Info(ctx, "Serving prediction from result cache")
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.service.Predict(ctx, applicant)
	if err != nil {
		if errors.Is(err, consts.ErrorInferenceFailed) {
			c.JSON(http.StatusInternalServerError,
				common.SerializeErrorResponse(consts.ErrorInferenceFailed.Message, nil))
			return
		}
		c.JSON(http.StatusInternalServerError,
			common.SerializeErrorResponse("Unexpected error", nil))
		return
	}

	if result.Status != "success" {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	h.cache.Set(ctx, cacheKey, result)

	requestID := ""
	if details, ok := ctx.Value(models.LogDetailsKey).(models.RequestDetails); ok {
		requestID = details.RequestID
	}
	h.audit.Record(ctx, requestID, result)

	c.JSON(http.StatusOK, result)
}

// GetPrediction returns the stored audit record for a past request id.
func (h *PredictionHandler) GetPrediction(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := c.Param("requestId")

	repo := h.predictions
	if repo == nil {
		c.JSON(http.StatusServiceUnavailable,
			common.SerializeErrorResponse("Prediction history is unavailable", nil))
		return
	}

	record, err := repo.FindByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, consts.ErrorPredictionNotFound) {
			c.JSON(http.StatusNotFound,
				common.SerializeErrorResponse(consts.ErrorPredictionNotFound.Message, nil))
			return
		}
		logger.Error(ctx, "Failed to look up prediction %s: %v", requestID, err)
		c.JSON(http.StatusInternalServerError,
			common.SerializeErrorResponse("Unexpected error", nil))
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeletePrediction erases the stored audit record for a request id, honoring
// applicant data-erasure requests.
func (h *PredictionHandler) DeletePrediction(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := c.Param("requestId")

	repo := h.predictions
	if repo == nil {
		c.JSON(http.StatusServiceUnavailable,
			common.SerializeErrorResponse("Prediction history is unavailable", nil))
		return
	}

	if err := repo.DeleteByRequestID(ctx, requestID); err != nil {
		if errors.Is(err, consts.ErrorPredictionNotFound) {
			c.JSON(http.StatusNotFound,
				common.SerializeErrorResponse(consts.ErrorPredictionNotFound.Message, nil))
			return
		}
		logger.Error(ctx, "Failed to delete prediction %s: %v", requestID, err)
		c.JSON(http.StatusInternalServerError,
			common.SerializeErrorResponse("Unexpected error", nil))
		return
	}

	logger.Info(ctx, "Prediction record %s erased", requestID)
	c.JSON(http.StatusOK, common.SerializeSuccessResponse("Prediction record erased"))
}

// GetSummary aggregates the last day of decisions from the audit trail.
func (h *PredictionHandler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	repo := h.predictions
	if repo == nil {
		c.JSON(http.StatusServiceUnavailable,
			common.SerializeErrorResponse("Prediction history is unavailable", nil))
		return
	}

	since := time.Now().UTC().Add(-summaryWindow)

	total, err := repo.CountSince(ctx, since, false)
	if err != nil {
		logger.Error(ctx, "Failed to count predictions: %v", err)
		c.JSON(http.StatusInternalServerError,
			common.SerializeErrorResponse("Unexpected error", nil))
		return
	}
	approved, err := repo.CountSince(ctx, since, true)
	if err != nil {
		logger.Error(ctx, "Failed to count approved predictions: %v", err)
		c.JSON(http.StatusInternalServerError,
			common.SerializeErrorResponse("Unexpected error", nil))
		return
	}
	records, err := repo.FindSince(ctx, since)
	if err != nil {
		logger.Error(ctx, "Failed to list predictions: %v", err)
		c.JSON(http.StatusInternalServerError,
			common.SerializeErrorResponse("Unexpected error", nil))
		return
	}

	byLoanType := map[string]int64{}
	for _, record := range records {
		byLoanType[record.LoanType]++
	}

	c.JSON(http.StatusOK, models.PredictionSummary{
		Since:      since,
		Total:      total,
		Approved:   approved,
		Rejected:   total - approved,
		ByLoanType: byLoanType,
	})
}
