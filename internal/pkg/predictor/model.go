package predictor

import (
	"math"

	"globe/dodrio_loan_eligibility/internal/pkg/consts"
	"globe/dodrio_loan_eligibility/internal/pkg/logger"
)

// Classifier scores a fixed-order feature vector. PredictProba returns the
// (reject, approve) probability pair; Predict returns 0 or 1.
type Classifier interface {
	PredictProba(features []float64) (float64, float64)
	Predict(features []float64) int
}

// Regressor estimates the sanctioned amount for a fixed-order feature vector.
type Regressor interface {
	Predict(features []float64) float64
}

// StandardScaler holds per-column mean and scale aligned to the artifact's
// feature_columns order.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform standardizes a vector. Zero-scale columns pass through centred
// only, mirroring sklearn's behavior for constant features.
func (s *StandardScaler) Transform(features []float64) []float64 {
	scaled := make([]float64, len(features))
	for i, v := range features {
		scaled[i] = v - s.Mean[i]
		if s.Scale[i] != 0 {
			scaled[i] /= s.Scale[i]
		}
	}
	return scaled
}

// LinearCoefficients are the weights of a trained linear/logistic model.
type LinearCoefficients struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func (c *LinearCoefficients) dot(features []float64) float64 {
	sum := c.Intercept
	for i, w := range c.Weights {
		sum += w * features[i]
	}
	return sum
}

type logisticClassifier struct {
	coef   LinearCoefficients
	scaler *StandardScaler
}

func (m *logisticClassifier) PredictProba(features []float64) (float64, float64) {
	z := m.coef.dot(m.scaler.Transform(features))
	pApprove := 1.0 / (1.0 + math.Exp(-z))
	return 1.0 - pApprove, pApprove
}

func (m *logisticClassifier) Predict(features []float64) int {
	_, pApprove := m.PredictProba(features)
	if pApprove >= 0.5 {
		return 1
	}
	return 0
}

type linearRegressor struct {
	coef   LinearCoefficients
	scaler *StandardScaler
}

func (m *linearRegressor) Predict(features []float64) float64 {
	return m.coef.dot(m.scaler.Transform(features))
}

// LabelEncoder maps category strings to the integer codes the models were
// trained with. Class order is the artifact's, so codes stay stable.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

func NewLabelEncoder(classes []string) *LabelEncoder {
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	return &LabelEncoder{classes: classes, index: index}
}

// Transform encodes a value, substituting the Unknown sentinel for unseen
// categories first.
func (e *LabelEncoder) Transform(value string) int {
	if code, ok := e.index[value]; ok {
		return code
	}
	if code, ok := e.index[consts.UnknownCategory]; ok {
		return code
	}
	return 0
}

// LabelEncoderSet is the per-column encoder collection from the artifact
// bundle.
type LabelEncoderSet map[string]*LabelEncoder

// Encode looks up the column's encoder. A missing encoder degrades to 0 with
// a warning rather than failing the prediction.
func (s LabelEncoderSet) Encode(column, value string) float64 {
	encoder, ok := s[column]
	if !ok {
		logger.Warn("No label encoder found for column '%s'; defaulting to 0", column)
		return 0
	}
	return float64(encoder.Transform(value))
}
