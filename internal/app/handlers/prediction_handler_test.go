package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"globe/dodrio_loan_eligibility/internal/pkg/consts"
	"globe/dodrio_loan_eligibility/internal/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPredictor struct {
	result *models.PredictionResult
	err    error
}

func (s *stubPredictor) Predict(ctx context.Context, applicant models.Applicant) (*models.PredictionResult, error) {
	return s.result, s.err
}

type stubPredictionStore struct {
	record  models.PredictionRecord
	records []models.PredictionRecord
	err     error
	deleted []string
}

func (s *stubPredictionStore) FindByRequestID(ctx context.Context, requestID string) (models.PredictionRecord, error) {
	return s.record, s.err
}

func (s *stubPredictionStore) DeleteByRequestID(ctx context.Context, requestID string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, requestID)
	return nil
}

func (s *stubPredictionStore) CountSince(ctx context.Context, since time.Time, approvedOnly bool) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var count int64
	for _, record := range s.records {
		if !approvedOnly || record.Approved {
			count++
		}
	}
	return count, nil
}

func (s *stubPredictionStore) FindSince(ctx context.Context, since time.Time) ([]models.PredictionRecord, error) {
	return s.records, s.err
}

func predictRouter(service PredictorService, predictions PredictionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewPredictionHandler(service, nil, nil, predictions)
	r.POST("/predict", handler.Predict)
	r.GET("/predictions/:requestId", handler.GetPrediction)
	r.DELETE("/predictions/:requestId", handler.DeletePrediction)
	r.GET("/summary", handler.GetSummary)
	return r
}

const validPredictBody = `{
	"loan_type": "personalLoan",
	"name": "Priya Sharma",
	"age": 30,
	"gender": "Female",
	"marital_status": "Single",
	"dependents": 0,
	"education": "Graduate",
	"employment_type": "Salaried",
	"years_of_experience": 5,
	"property_area": "Urban",
	"monthly_income": 50000,
	"coapplicant_income": 10000,
	"credit_score": 720,
	"existing_emis": 10000,
	"existing_loans_count": 1,
	"loan_amount_requested": 500000,
	"loan_tenure_months": 60
}`

func postPredict(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPredictWithoutModelAnswers503(t *testing.T) {
	r := predictRouter(nil, nil)

	w := postPredict(r, validPredictBody)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Model not loaded")
}

func TestPredictRejectsMalformedBody(t *testing.T) {
	r := predictRouter(&stubPredictor{}, nil)

	w := postPredict(r, `{"loan_type": "spaceLoan"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request payload")
}

func TestPredictRejectsMissingConditionalField(t *testing.T) {
	r := predictRouter(&stubPredictor{}, nil)
	body := strings.Replace(validPredictBody, `"personalLoan"`, `"homeLoan"`, 1)

	w := postPredict(r, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "property_value")
}

func TestPredictPipelineValidationAnswers422(t *testing.T) {
	service := &stubPredictor{result: &models.PredictionResult{
		Status: "error",
		Errors: []string{"'age' must be between 18 and 70, got 75"},
	}}
	r := predictRouter(service, nil)

	w := postPredict(r, validPredictBody)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "'age' must be between")
}

func TestPredictInferenceFailureAnswers500(t *testing.T) {
	service := &stubPredictor{err: fmt.Errorf("%w: boom", consts.ErrorInferenceFailed)}
	r := predictRouter(service, nil)

	w := postPredict(r, validPredictBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), consts.ErrorInferenceFailed.Message)
}

func TestPredictSuccess(t *testing.T) {
	service := &stubPredictor{result: &models.PredictionResult{
		Status:              "success",
		LoanType:            "personalLoan",
		ApplicantName:       "Priya Sharma",
		Approved:            true,
		ApprovalProbability: 88.0,
		LoanGrade:           "A (Very Good)",
		SanctionedAmount:    450000,
		RejectionReasons:    []string{},
	}}
	r := predictRouter(service, nil)

	w := postPredict(r, validPredictBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"approved":true`)
	assert.Contains(t, w.Body.String(), `"loan_grade":"A (Very Good)"`)
}

func TestGetPredictionWithoutStoreAnswers503(t *testing.T) {
	r := predictRouter(&stubPredictor{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/predictions/abc", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetPredictionNotFound(t *testing.T) {
	store := &stubPredictionStore{err: fmt.Errorf("%w: abc", consts.ErrorPredictionNotFound)}
	r := predictRouter(&stubPredictor{}, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/predictions/abc", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPredictionLookupFailure(t *testing.T) {
	store := &stubPredictionStore{err: errors.New("mongo down")}
	r := predictRouter(&stubPredictor{}, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/predictions/abc", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetPredictionFound(t *testing.T) {
	store := &stubPredictionStore{record: models.PredictionRecord{
		RequestID: "abc",
		LoanType:  "homeLoan",
		Approved:  true,
		LoanGrade: "B (Good)",
	}}
	r := predictRouter(&stubPredictor{}, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/predictions/abc", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"request_id":"abc"`)
	assert.Contains(t, w.Body.String(), `"loan_grade":"B (Good)"`)
}

func TestDeletePredictionWithoutStoreAnswers503(t *testing.T) {
	r := predictRouter(&stubPredictor{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/predictions/abc", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDeletePredictionNotFound(t *testing.T) {
	store := &stubPredictionStore{err: fmt.Errorf("%w: abc", consts.ErrorPredictionNotFound)}
	r := predictRouter(&stubPredictor{}, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/predictions/abc", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, store.deleted)
}

func TestDeletePredictionErasesRecord(t *testing.T) {
	store := &stubPredictionStore{}
	r := predictRouter(&stubPredictor{}, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/predictions/abc", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Prediction record erased")
	assert.Equal(t, []string{"abc"}, store.deleted)
}

func TestGetSummaryWithoutStoreAnswers503(t *testing.T) {
	r := predictRouter(&stubPredictor{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/summary", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetSummaryAggregatesDecisions(t *testing.T) {
	store := &stubPredictionStore{records: []models.PredictionRecord{
		{RequestID: "a", LoanType: "personalLoan", Approved: true},
		{RequestID: "b", LoanType: "personalLoan", Approved: false},
		{RequestID: "c", LoanType: "homeLoan", Approved: true},
	}}
	r := predictRouter(&stubPredictor{}, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/summary", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":3`)
	assert.Contains(t, w.Body.String(), `"approved":2`)
	assert.Contains(t, w.Body.String(), `"rejected":1`)
	assert.Contains(t, w.Body.String(), `"personalLoan":2`)
	assert.Contains(t, w.Body.String(), `"homeLoan":1`)
}

func TestGetSummaryStoreFailure(t *testing.T) {
	store := &stubPredictionStore{err: errors.New("mongo down")}
	r := predictRouter(&stubPredictor{}, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/summary", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
