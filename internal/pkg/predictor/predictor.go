package predictor

import (
	"context"
	"fmt"
	"math"
	"time"

	"globe/dodrio_loan_eligibility/internal/pkg/consts"
	"globe/dodrio_loan_eligibility/internal/pkg/logger"
	"globe/dodrio_loan_eligibility/internal/pkg/models"
)

// LoanPredictor runs the full pipeline: validate, build features, score,
// compose the decision. Safe for concurrent use; the artifact bundle is
// read-only after construction.
type LoanPredictor struct {
	artifacts *ModelArtifacts
}

func NewLoanPredictor(artifactsPath string) (*LoanPredictor, error) {
	artifacts, err := LoadArtifacts(artifactsPath)
	if err != nil {
		return nil, err
	}
	return &LoanPredictor{artifacts: artifacts}, nil
}

// NewLoanPredictorFromArtifacts wires an already-loaded bundle, used by tests
// and by callers that fetch artifacts from elsewhere.
func NewLoanPredictorFromArtifacts(artifacts *ModelArtifacts) *LoanPredictor {
	return &LoanPredictor{artifacts: artifacts}
}

// Predict scores one applicant record. Validation failures come back as an
// error-status result, not a Go error; a Go error means the pipeline itself
// broke.
func (p *LoanPredictor) Predict(ctx context.Context, applicant models.Applicant) (result *models.PredictionResult, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "Prediction pipeline panicked: %v", r)
			result = nil
			err = fmt.Errorf("%w: %v", consts.ErrorInferenceFailed, r)
		}
	}()

	if validationErrors := Validate(applicant); len(validationErrors) > 0 {
		logger.Info(ctx, "Applicant rejected by validation with %d errors", len(validationErrors))
		return &models.PredictionResult{
			Status: "error",
			Errors: validationErrors,
		}, nil
	}

	result, err = p.runPrediction(ctx, applicant)
	if err != nil {
		logger.Error(ctx, "Prediction pipeline failed: %v", err)
		return nil, fmt.Errorf("%w: %v", consts.ErrorInferenceFailed, err)
	}

	elapsed := time.Since(start).Seconds() * 1000
	result.ProcessingTimeMs = math.Round(elapsed*100) / 100

	logger.Info(ctx, "Prediction completed: approved=%t grade=%s sanctioned=%d in %.2fms",
		result.Approved, result.LoanGrade, result.SanctionedAmount, result.ProcessingTimeMs)

	return result, nil
}

func (p *LoanPredictor) runPrediction(ctx context.Context, a models.Applicant) (*models.PredictionResult, error) {
	row := BuildFeatures(a, p.artifacts.LabelEncoders)

	vector, err := p.projectRow(row)
	if err != nil {
		return nil, err
	}

	_, probability := p.artifacts.Classifier.PredictProba(vector)
	approved := p.artifacts.Classifier.Predict(vector) == 1

	requested := asFloat(a["loan_amount_requested"])

	var sanctioned int64
	if approved {
		estimate := p.artifacts.Regressor.Predict(vector)
		estimate = math.Max(0, math.Min(estimate, requested))
		sanctioned = int64(estimate)
	}

	sanctionRatio := 0.0
	if requested > 0 {
		sanctionRatio = math.Round(float64(sanctioned)/requested*1000) / 10
	}

	tenure := math.Max(asFloat(a["loan_tenure_months"]), 1)
	monthlyEmi := 0.0
	if sanctioned > 0 {
		monthlyEmi = math.Round(float64(sanctioned) / tenure)
	}

	rejectionReasons := []string{}
	if !approved {
		rejectionReasons = RejectionReasons(row, a)
	}

	name := "Applicant"
	if s, ok := a["name"].(string); ok && s != "" {
		name = s
	}

	return &models.PredictionResult{
		Status:              "success",
		LoanType:            stringOr(a["loan_type"], ""),
		ApplicantName:       name,
		Approved:            approved,
		ApprovalProbability: math.Round(probability*1e4) / 1e2,
		LoanGrade:           LoanGrade(probability),
		LoanAmountRequested: requested,
		SanctionedAmount:    sanctioned,
		SanctionRatio:       sanctionRatio,
		MonthlyEmi:          monthlyEmi,
		RejectionReasons:    rejectionReasons,
		Breakdown:           BuildBreakdown(row, a, probability, sanctioned),
	}, nil
}

// projectRow orders the feature row into the artifact's column order. Every
// column must be present; a gap means the bundle and the feature builder have
// drifted apart.
func (p *LoanPredictor) projectRow(row FeatureRow) ([]float64, error) {
	vector := make([]float64, len(p.artifacts.FeatureColumns))
	for i, column := range p.artifacts.FeatureColumns {
		value, ok := row[column]
		if !ok {
			return nil, fmt.Errorf("feature column %q is not produced by the feature builder", column)
		}
		vector[i] = value
	}
	return vector, nil
}
